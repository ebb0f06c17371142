package curve

import "math"

type step struct {
	ctx    Context
	t      float64
	line   lineState
	points int
	x, y   float64
}

// Step draws a piecewise constant function, changing y at the midpoint
// between consecutive x values.
func Step(ctx Context) Curve { return newStep(ctx, 0.5) }

// StepBefore changes y at the start of each step.
func StepBefore(ctx Context) Curve { return newStep(ctx, 0) }

// StepAfter changes y at the end of each step.
func StepAfter(ctx Context) Curve { return newStep(ctx, 1) }

func newStep(ctx Context, t float64) Curve {
	return &step{ctx: ctx, t: t, line: lineNone}
}

func (c *step) AreaStart() { c.line = lineTop }
func (c *step) AreaEnd()   { c.line = lineNone }

func (c *step) LineStart() {
	c.x, c.y = math.NaN(), math.NaN()
	c.points = 0
}

func (c *step) LineEnd() {
	if c.t > 0 && c.t < 1 && c.points == 2 {
		c.ctx.LineTo(c.x, c.y)
	}
	if c.line.closes(c.points) {
		c.ctx.Close()
	}
	// The baseline of an area is walked in reverse, so the step position
	// mirrors to keep both lines aligned.
	if c.line != lineNone {
		c.t = 1 - c.t
		c.line = c.line.next()
	}
}

func (c *step) Point(x, y float64) {
	switch c.points {
	case 0:
		c.points = 1
		if c.line.active() {
			c.ctx.LineTo(x, y)
		} else {
			c.ctx.MoveTo(x, y)
		}
	default:
		if c.points == 1 {
			c.points = 2
		}
		if c.t <= 0 {
			c.ctx.LineTo(c.x, y)
			c.ctx.LineTo(x, y)
		} else {
			x1 := c.x*(1-c.t) + x*c.t
			c.ctx.LineTo(x1, c.y)
			c.ctx.LineTo(x1, y)
		}
	}
	c.x, c.y = x, y
}
