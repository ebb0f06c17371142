package components

import (
	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
	"github.com/goliatone/go-shapegen/pkg/shape"
)

// LinePathArgs is passed to a LinePath Children callback.
type LinePathArgs[D any] struct {
	Path *shape.Line[D]
}

// LinePathProps configures LinePath.
type LinePathProps[D any] struct {
	ClassName string
	Data      []D
	X         accessor.Value[D]
	Y         accessor.Value[D]
	Defined   accessor.Predicate[D]
	Curve     curve.Factory
	Fill      string
	Encoder   *pathdata.Encoder
	Attrs     markup.Attributes
	Children  func(LinePathArgs[D]) markup.Node
}

// LinePath renders a Cartesian line.
func LinePath[D any](p LinePathProps[D]) markup.Node {
	path := shape.NewLine(shape.LineConfig[D]{
		X:       p.X,
		Y:       p.Y,
		Defined: p.Defined,
		Curve:   p.Curve,
		Encoder: p.Encoder,
	})
	if p.Children != nil {
		return p.Children(LinePathArgs[D]{Path: path})
	}
	return pathElement(p.Encoder, path.Path(p.Data), markup.Attributes{
		"class": markup.ClassNames(ClassLinePath, p.ClassName),
		"fill":  fillOr(p.Fill, DefaultFill),
	}, p.Attrs)
}
