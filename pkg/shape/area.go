package shape

import (
	"github.com/gogpu/gg"

	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
)

// AreaConfig configures an area generator. X sets x0 and clears x1; Y sets
// y0 and clears y1. The explicit X0/X1/Y0/Y1 fields win over X and Y.
//
// Defaults: x0 reads the first pair component, x1 mirrors x0, y0 is the
// constant 0 and y1 reads the second pair component.
type AreaConfig[D any] struct {
	X       accessor.Value[D]
	X0      accessor.Value[D]
	X1      accessor.Value[D]
	Y       accessor.Value[D]
	Y0      accessor.Value[D]
	Y1      accessor.Value[D]
	Defined accessor.Predicate[D]
	Curve   curve.Factory
	Encoder *pathdata.Encoder
}

// Area generates closed shapes bounded by a topline (x1, y1) and a baseline
// (x0, y0).
type Area[D any] struct {
	x0, x1  accessor.Func[D]
	y0, y1  accessor.Func[D]
	defined accessor.Predicate[D]
	curve   curve.Factory
	encoder *pathdata.Encoder
}

var _ Generator[[2]float64] = (*Area[[2]float64])(nil)

// NewArea constructs an area generator.
func NewArea[D any](cfg AreaConfig[D]) *Area[D] {
	a := &Area[D]{
		x0:      accessor.PointX[D],
		y0:      accessor.Constant[D](0),
		y1:      accessor.PointY[D],
		defined: cfg.Defined,
		curve:   curveOrDefault(cfg.Curve),
		encoder: cfg.Encoder,
	}
	if cfg.X.IsSet() {
		a.x0, a.x1 = cfg.X.Accessor(), nil
	}
	if cfg.X0.IsSet() {
		a.x0 = cfg.X0.Accessor()
	}
	if cfg.X1.IsSet() {
		a.x1 = cfg.X1.Accessor()
	}
	if cfg.Y.IsSet() {
		a.y0, a.y1 = cfg.Y.Accessor(), nil
	}
	if cfg.Y0.IsSet() {
		a.y0 = cfg.Y0.Accessor()
	}
	if cfg.Y1.IsSet() {
		a.y1 = cfg.Y1.Accessor()
	}
	if a.defined == nil {
		a.defined = accessor.Always[D]
	}
	return a
}

// X0 returns the baseline x accessor.
func (a *Area[D]) X0() accessor.Func[D] { return a.x0 }

// X1 returns the topline x accessor, or nil when it mirrors x0.
func (a *Area[D]) X1() accessor.Func[D] { return a.x1 }

// Y0 returns the baseline y accessor.
func (a *Area[D]) Y0() accessor.Func[D] { return a.y0 }

// Y1 returns the topline y accessor, or nil when it mirrors y0.
func (a *Area[D]) Y1() accessor.Func[D] { return a.y1 }

// Defined returns the configured defined predicate.
func (a *Area[D]) Defined() accessor.Predicate[D] { return a.defined }

// Curve returns the configured curve factory.
func (a *Area[D]) Curve() curve.Factory { return a.curve }

// Draw feeds each defined run of data through the curve as a topline
// followed by the reversed baseline.
func (a *Area[D]) Draw(ctx curve.Context, data []D) {
	out := a.curve(ctx)
	n := len(data)
	x0s := make([]float64, n)
	y0s := make([]float64, n)

	inside := false
	start := 0
	for i := 0; i <= n; i++ {
		defined := i < n && a.defined(data[i], i, data)
		if defined != inside {
			inside = defined
			if inside {
				start = i
				out.AreaStart()
				out.LineStart()
			} else {
				out.LineEnd()
				out.LineStart()
				for k := i - 1; k >= start; k-- {
					out.Point(x0s[k], y0s[k])
				}
				out.LineEnd()
				out.AreaEnd()
			}
		}
		if inside {
			d := data[i]
			x0s[i] = a.x0(d, i, data)
			y0s[i] = a.y0(d, i, data)
			x, y := x0s[i], y0s[i]
			if a.x1 != nil {
				x = a.x1(d, i, data)
			}
			if a.y1 != nil {
				y = a.y1(d, i, data)
			}
			out.Point(x, y)
		}
	}
}

// Path implements Generator.
func (a *Area[D]) Path(data []D) *gg.Path {
	p := gg.NewPath()
	a.Draw(p, data)
	return p
}

// D implements Generator.
func (a *Area[D]) D(data []D) (string, bool) {
	return describe(a.encoder, a.Path(data))
}
