package curve

import "math"

type monotoneX struct {
	ctx            Context
	line           lineState
	points         int
	x0, x1, y0, y1 float64
	t0             float64
}

// MonotoneX produces a cubic spline that preserves monotonicity in y,
// assuming the points are monotonic in x.
func MonotoneX(ctx Context) Curve {
	return &monotoneX{ctx: ctx, line: lineNone}
}

// MonotoneY produces a cubic spline that preserves monotonicity in x,
// assuming the points are monotonic in y.
func MonotoneY(ctx Context) Curve {
	return &monotoneY{inner: monotoneX{ctx: reflect{ctx}, line: lineNone}}
}

func (c *monotoneX) AreaStart() { c.line = lineTop }
func (c *monotoneX) AreaEnd()   { c.line = lineNone }

func (c *monotoneX) LineStart() {
	c.x0, c.x1 = math.NaN(), math.NaN()
	c.y0, c.y1 = math.NaN(), math.NaN()
	c.t0 = math.NaN()
	c.points = 0
}

func (c *monotoneX) LineEnd() {
	switch c.points {
	case 2:
		c.ctx.LineTo(c.x1, c.y1)
	case 3:
		c.bezier(c.t0, c.slope2(c.t0))
	}
	if c.line.closes(c.points) {
		c.ctx.Close()
	}
	c.line = c.line.next()
}

func (c *monotoneX) Point(x, y float64) {
	// Coincident points carry no tangent information.
	if x == c.x1 && y == c.y1 {
		return
	}
	t1 := math.NaN()
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
		t1 = c.slope3(x, y)
		c.bezier(c.slope2(t1), t1)
	default:
		t1 = c.slope3(x, y)
		c.bezier(c.t0, t1)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
	c.t0 = t1
}

// slope3 computes the tangent at the middle point using the Steffen method.
func (c *monotoneX) slope3(x2, y2 float64) float64 {
	h0 := c.x1 - c.x0
	h1 := x2 - c.x1
	s0 := (c.y1 - c.y0) / spacing(h0, h1)
	s1 := (y2 - c.y1) / spacing(h1, h0)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	slope := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	return orZero(slope)
}

// slope2 computes a one-sided tangent from the known tangent t.
func (c *monotoneX) slope2(t float64) float64 {
	h := c.x1 - c.x0
	if h != 0 && !math.IsNaN(h) {
		return (3*(c.y1-c.y0)/h - t) / 2
	}
	return t
}

func (c *monotoneX) bezier(t0, t1 float64) {
	dx := (c.x1 - c.x0) / 3
	c.ctx.CubicTo(c.x0+dx, c.y0+dx*t0, c.x1-dx, c.y1-dx*t1, c.x1, c.y1)
}

// spacing returns h, or a signed zero taken from other when h is zero so the
// resulting slope becomes a signed infinity.
func spacing(h, other float64) float64 {
	if h != 0 && !math.IsNaN(h) {
		return h
	}
	if other < 0 {
		return math.Copysign(0, -1)
	}
	return 0
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

type monotoneY struct {
	inner monotoneX
}

func (c *monotoneY) AreaStart()         { c.inner.AreaStart() }
func (c *monotoneY) AreaEnd()           { c.inner.AreaEnd() }
func (c *monotoneY) LineStart()         { c.inner.LineStart() }
func (c *monotoneY) LineEnd()           { c.inner.LineEnd() }
func (c *monotoneY) Point(x, y float64) { c.inner.Point(y, x) }

// reflect swaps x and y on the way to the wrapped context.
type reflect struct {
	ctx Context
}

func (r reflect) MoveTo(x, y float64)              { r.ctx.MoveTo(y, x) }
func (r reflect) LineTo(x, y float64)              { r.ctx.LineTo(y, x) }
func (r reflect) QuadraticTo(cx, cy, x, y float64) { r.ctx.QuadraticTo(cy, cx, y, x) }
func (r reflect) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.ctx.CubicTo(c1y, c1x, c2y, c2x, y, x)
}
func (r reflect) Close() { r.ctx.Close() }
