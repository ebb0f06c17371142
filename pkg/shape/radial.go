package shape

import (
	"github.com/gogpu/gg"

	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
)

// RadialLineConfig configures a radial line generator. Angle is in radians
// with 0 at twelve o'clock; Radius is the distance from the origin.
type RadialLineConfig[D any] struct {
	Angle   accessor.Value[D]
	Radius  accessor.Value[D]
	Defined accessor.Predicate[D]
	Curve   curve.Factory
	Encoder *pathdata.Encoder
}

// RadialLine is a line in polar coordinates centred on the origin.
type RadialLine[D any] struct {
	line  *Line[D]
	curve curve.Factory
}

var _ Generator[[2]float64] = (*RadialLine[[2]float64])(nil)

// NewRadialLine constructs a radial line generator.
func NewRadialLine[D any](cfg RadialLineConfig[D]) *RadialLine[D] {
	base := curveOrDefault(cfg.Curve)
	return &RadialLine[D]{
		line: NewLine(LineConfig[D]{
			X:       cfg.Angle,
			Y:       cfg.Radius,
			Defined: cfg.Defined,
			Curve:   curve.Radial(base),
			Encoder: cfg.Encoder,
		}),
		curve: base,
	}
}

// Angle returns the configured angle accessor.
func (r *RadialLine[D]) Angle() accessor.Func[D] { return r.line.x }

// Radius returns the configured radius accessor.
func (r *RadialLine[D]) Radius() accessor.Func[D] { return r.line.y }

// Defined returns the configured defined predicate.
func (r *RadialLine[D]) Defined() accessor.Predicate[D] { return r.line.defined }

// Curve returns the unwrapped curve factory.
func (r *RadialLine[D]) Curve() curve.Factory { return r.curve }

// Draw feeds the data into ctx in Cartesian coordinates.
func (r *RadialLine[D]) Draw(ctx curve.Context, data []D) {
	r.line.Draw(ctx, data)
}

// Path implements Generator.
func (r *RadialLine[D]) Path(data []D) *gg.Path {
	return r.line.Path(data)
}

// D implements Generator.
func (r *RadialLine[D]) D(data []D) (string, bool) {
	return r.line.D(data)
}
