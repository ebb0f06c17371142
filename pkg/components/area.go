package components

import (
	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
	"github.com/goliatone/go-shapegen/pkg/shape"
)

// AreaArgs is passed to an Area Children callback.
type AreaArgs[D any] struct {
	Path *shape.Area[D]
}

// AreaProps configures Area. Field semantics follow shape.AreaConfig.
type AreaProps[D any] struct {
	ClassName string
	Data      []D
	X         accessor.Value[D]
	X0        accessor.Value[D]
	X1        accessor.Value[D]
	Y         accessor.Value[D]
	Y0        accessor.Value[D]
	Y1        accessor.Value[D]
	Defined   accessor.Predicate[D]
	Curve     curve.Factory
	// Fill is omitted from the element when empty.
	Fill     string
	Encoder  *pathdata.Encoder
	Attrs    markup.Attributes
	Children func(AreaArgs[D]) markup.Node
}

// Area renders a filled area between a baseline and a topline.
func Area[D any](p AreaProps[D]) markup.Node {
	path := shape.NewArea(shape.AreaConfig[D]{
		X:       p.X,
		X0:      p.X0,
		X1:      p.X1,
		Y:       p.Y,
		Y0:      p.Y0,
		Y1:      p.Y1,
		Defined: p.Defined,
		Curve:   p.Curve,
		Encoder: p.Encoder,
	})
	if p.Children != nil {
		return p.Children(AreaArgs[D]{Path: path})
	}
	attrs := markup.Attributes{"class": markup.ClassNames(ClassArea, p.ClassName)}
	if p.Fill != "" {
		attrs["fill"] = p.Fill
	}
	return pathElement(p.Encoder, path.Path(p.Data), attrs, p.Attrs)
}
