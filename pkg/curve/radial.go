package curve

import "math"

type radial struct {
	curve Curve
}

// Radial wraps a factory so that points are interpreted as (angle, radius)
// pairs in polar coordinates. Angles are in radians, with 0 at twelve o'clock
// increasing clockwise.
func Radial(f Factory) Factory {
	if f == nil {
		f = Linear
	}
	return func(ctx Context) Curve {
		return &radial{curve: f(ctx)}
	}
}

func (r *radial) AreaStart() { r.curve.AreaStart() }
func (r *radial) AreaEnd()   { r.curve.AreaEnd() }
func (r *radial) LineStart() { r.curve.LineStart() }
func (r *radial) LineEnd()   { r.curve.LineEnd() }

func (r *radial) Point(angle, radius float64) {
	r.curve.Point(radius*math.Sin(angle), radius*-math.Cos(angle))
}
