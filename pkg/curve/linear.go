package curve

type linear struct {
	ctx    Context
	line   lineState
	points int
}

// Linear joins points with straight segments.
func Linear(ctx Context) Curve {
	return &linear{ctx: ctx, line: lineNone}
}

func (c *linear) AreaStart() { c.line = lineTop }
func (c *linear) AreaEnd()   { c.line = lineNone }
func (c *linear) LineStart() { c.points = 0 }

func (c *linear) LineEnd() {
	if c.line.closes(c.points) {
		c.ctx.Close()
	}
	c.line = c.line.next()
}

func (c *linear) Point(x, y float64) {
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
		c.ctx.LineTo(x, y)
	default:
		c.ctx.LineTo(x, y)
	}
}

type linearClosed struct {
	ctx     Context
	started bool
}

// LinearClosed joins points with straight segments and closes each segment
// back to its first point. Area brackets are ignored.
func LinearClosed(ctx Context) Curve {
	return &linearClosed{ctx: ctx}
}

func (c *linearClosed) AreaStart() {}
func (c *linearClosed) AreaEnd()   {}
func (c *linearClosed) LineStart() { c.started = false }

func (c *linearClosed) LineEnd() {
	if c.started {
		c.ctx.Close()
	}
}

func (c *linearClosed) Point(x, y float64) {
	if c.started {
		c.ctx.LineTo(x, y)
		return
	}
	c.started = true
	c.ctx.MoveTo(x, y)
}
