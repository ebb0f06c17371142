package curve

import "math"

type cardinal struct {
	ctx                    Context
	k                      float64
	line                   lineState
	points                 int
	x0, x1, x2, y0, y1, y2 float64
}

// Cardinal returns a cardinal spline factory. Tension 0 yields a Catmull-Rom
// shaped spline with uniform parameterisation; tension 1 yields straight
// segments.
func Cardinal(tension float64) Factory {
	k := (1 - tension) / 6
	return func(ctx Context) Curve {
		return &cardinal{ctx: ctx, k: k, line: lineNone}
	}
}

func (c *cardinal) AreaStart() { c.line = lineTop }
func (c *cardinal) AreaEnd()   { c.line = lineNone }

func (c *cardinal) LineStart() {
	c.x0, c.x1, c.x2 = math.NaN(), math.NaN(), math.NaN()
	c.y0, c.y1, c.y2 = math.NaN(), math.NaN(), math.NaN()
	c.points = 0
}

func (c *cardinal) LineEnd() {
	switch c.points {
	case 2:
		c.ctx.LineTo(c.x2, c.y2)
	case 3:
		c.bezier(c.x1, c.y1)
	}
	if c.line.closes(c.points) {
		c.ctx.Close()
	}
	c.line = c.line.next()
}

func (c *cardinal) Point(x, y float64) {
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
		c.x1, c.y1 = x, y
	case 2:
		c.points = 3
		c.bezier(x, y)
	default:
		c.bezier(x, y)
	}
	c.x0, c.x1, c.x2 = c.x1, c.x2, x
	c.y0, c.y1, c.y2 = c.y1, c.y2, y
}

func (c *cardinal) bezier(x, y float64) {
	c.ctx.CubicTo(
		c.x1+c.k*(c.x2-c.x0), c.y1+c.k*(c.y2-c.y0),
		c.x2+c.k*(c.x1-x), c.y2+c.k*(c.y1-y),
		c.x2, c.y2,
	)
}
