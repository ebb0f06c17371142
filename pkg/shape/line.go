package shape

import (
	"github.com/gogpu/gg"

	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
)

// LineConfig configures a line generator. Unset fields fall back to reading
// pair-shaped data, treating every datum as defined and joining points with
// straight segments.
type LineConfig[D any] struct {
	X       accessor.Value[D]
	Y       accessor.Value[D]
	Defined accessor.Predicate[D]
	Curve   curve.Factory
	Encoder *pathdata.Encoder
}

// Line generates open paths through (x, y) points.
type Line[D any] struct {
	x       accessor.Func[D]
	y       accessor.Func[D]
	defined accessor.Predicate[D]
	curve   curve.Factory
	encoder *pathdata.Encoder
}

var _ Generator[[2]float64] = (*Line[[2]float64])(nil)

// NewLine constructs a line generator.
func NewLine[D any](cfg LineConfig[D]) *Line[D] {
	l := &Line[D]{
		x:       cfg.X.Or(accessor.PointX[D]),
		y:       cfg.Y.Or(accessor.PointY[D]),
		defined: cfg.Defined,
		curve:   curveOrDefault(cfg.Curve),
		encoder: cfg.Encoder,
	}
	if l.defined == nil {
		l.defined = accessor.Always[D]
	}
	return l
}

// X returns the configured x accessor.
func (l *Line[D]) X() accessor.Func[D] { return l.x }

// Y returns the configured y accessor.
func (l *Line[D]) Y() accessor.Func[D] { return l.y }

// Defined returns the configured defined predicate.
func (l *Line[D]) Defined() accessor.Predicate[D] { return l.defined }

// Curve returns the configured curve factory.
func (l *Line[D]) Curve() curve.Factory { return l.curve }

// Draw feeds the data through the curve into ctx. Runs of undefined data
// split the line into separate segments.
func (l *Line[D]) Draw(ctx curve.Context, data []D) {
	out := l.curve(ctx)
	inside := false
	for i := 0; i <= len(data); i++ {
		defined := i < len(data) && l.defined(data[i], i, data)
		if defined != inside {
			inside = defined
			if inside {
				out.LineStart()
			} else {
				out.LineEnd()
			}
		}
		if inside {
			d := data[i]
			out.Point(l.x(d, i, data), l.y(d, i, data))
		}
	}
}

// Path implements Generator.
func (l *Line[D]) Path(data []D) *gg.Path {
	p := gg.NewPath()
	l.Draw(p, data)
	return p
}

// D implements Generator.
func (l *Line[D]) D(data []D) (string, bool) {
	return describe(l.encoder, l.Path(data))
}
