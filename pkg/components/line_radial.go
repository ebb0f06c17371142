package components

import (
	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
	"github.com/goliatone/go-shapegen/pkg/shape"
)

// LineRadialArgs is passed to a LineRadial Children callback.
type LineRadialArgs[D any] struct {
	Path *shape.RadialLine[D]
}

// LineRadialProps configures LineRadial.
type LineRadialProps[D any] struct {
	ClassName string
	Data      []D
	// Angle in radians, 0 at twelve o'clock, increasing clockwise.
	Angle   accessor.Value[D]
	Radius  accessor.Value[D]
	Defined accessor.Predicate[D]
	Curve   curve.Factory
	// Fill defaults to DefaultFill.
	Fill    string
	Encoder *pathdata.Encoder
	// Attrs are copied onto the path and override computed attributes.
	Attrs    markup.Attributes
	Children func(LineRadialArgs[D]) markup.Node
}

// LineRadial renders a radial line as a single path element, or returns the
// result of Children when set.
func LineRadial[D any](p LineRadialProps[D]) markup.Node {
	path := shape.NewRadialLine(shape.RadialLineConfig[D]{
		Angle:   p.Angle,
		Radius:  p.Radius,
		Defined: p.Defined,
		Curve:   p.Curve,
		Encoder: p.Encoder,
	})
	if p.Children != nil {
		return p.Children(LineRadialArgs[D]{Path: path})
	}

	return pathElement(p.Encoder, path.Path(p.Data), markup.Attributes{
		"class": markup.ClassNames(ClassLineRadial, p.ClassName),
		"fill":  fillOr(p.Fill, DefaultFill),
	}, p.Attrs)
}
