package curve

import "math"

type basis struct {
	ctx            Context
	line           lineState
	points         int
	x0, x1, y0, y1 float64
}

// Basis produces a cubic B-spline through the control points. The first and
// last points are repeated so the curve touches the ends.
func Basis(ctx Context) Curve {
	return &basis{ctx: ctx, line: lineNone}
}

func (c *basis) AreaStart() { c.line = lineTop }
func (c *basis) AreaEnd()   { c.line = lineNone }

func (c *basis) LineStart() {
	c.x0, c.x1 = math.NaN(), math.NaN()
	c.y0, c.y1 = math.NaN(), math.NaN()
	c.points = 0
}

func (c *basis) LineEnd() {
	switch c.points {
	case 3:
		c.bezier(c.x1, c.y1)
		c.ctx.LineTo(c.x1, c.y1)
	case 2:
		c.ctx.LineTo(c.x1, c.y1)
	}
	if c.line.closes(c.points) {
		c.ctx.Close()
	}
	c.line = c.line.next()
}

func (c *basis) Point(x, y float64) {
	switch c.points {
	case 0:
		c.points = 1
		if c.line.active() {
			c.ctx.LineTo(x, y)
		} else {
			c.ctx.MoveTo(x, y)
		}
	case 1:
		c.points = 2
	case 2:
		c.points = 3
		c.ctx.LineTo((5*c.x0+c.x1)/6, (5*c.y0+c.y1)/6)
		c.bezier(x, y)
	default:
		c.bezier(x, y)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
}

func (c *basis) bezier(x, y float64) {
	c.ctx.CubicTo(
		(2*c.x0+c.x1)/3, (2*c.y0+c.y1)/3,
		(c.x0+2*c.x1)/3, (c.y0+2*c.y1)/3,
		(c.x0+4*c.x1+x)/6, (c.y0+4*c.y1+y)/6,
	)
}
