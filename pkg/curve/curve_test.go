package curve_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-shapegen/pkg/curve"
)

type recorder struct {
	ops []string
}

func (r *recorder) MoveTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("M%g,%g", x, y)) }
func (r *recorder) LineTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("L%g,%g", x, y)) }
func (r *recorder) QuadraticTo(cx, cy, x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("Q%g,%g,%g,%g", cx, cy, x, y))
}
func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("C%g,%g,%g,%g,%g,%g", c1x, c1y, c2x, c2y, x, y))
}
func (r *recorder) Close() { r.ops = append(r.ops, "Z") }

func (r *recorder) String() string { return strings.Join(r.ops, "") }

func drawLine(f curve.Factory, pts ...[2]float64) string {
	rec := &recorder{}
	c := f(rec)
	c.LineStart()
	for _, p := range pts {
		c.Point(p[0], p[1])
	}
	c.LineEnd()
	return rec.String()
}

func drawArea(f curve.Factory, top, bottom [][2]float64) string {
	rec := &recorder{}
	c := f(rec)
	c.AreaStart()
	c.LineStart()
	for _, p := range top {
		c.Point(p[0], p[1])
	}
	c.LineEnd()
	c.LineStart()
	for _, p := range bottom {
		c.Point(p[0], p[1])
	}
	c.LineEnd()
	c.AreaEnd()
	return rec.String()
}

func TestLinear(t *testing.T) {
	assert.Equal(t, "M0,0L1,1L2,0", drawLine(curve.Linear, [2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 0}))
	assert.Equal(t, "M3,4Z", drawLine(curve.Linear, [2]float64{3, 4}))
	assert.Equal(t, "", drawLine(curve.Linear))
}

func TestLinearArea(t *testing.T) {
	got := drawArea(curve.Linear,
		[][2]float64{{0, 1}, {1, 3}},
		[][2]float64{{1, 0}, {0, 0}},
	)
	assert.Equal(t, "M0,1L1,3L1,0L0,0Z", got)
}

func TestLinearClosed(t *testing.T) {
	assert.Equal(t, "M0,0L1,1L2,0Z", drawLine(curve.LinearClosed, [2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 0}))
}

func TestSteps(t *testing.T) {
	a, b := [2]float64{0, 0}, [2]float64{2, 2}
	assert.Equal(t, "M0,0L1,0L1,2L2,2", drawLine(curve.Step, a, b))
	assert.Equal(t, "M0,0L0,2L2,2", drawLine(curve.StepBefore, a, b))
	assert.Equal(t, "M0,0L2,0L2,2", drawLine(curve.StepAfter, a, b))
}

func TestStepAreaMirrorsBaseline(t *testing.T) {
	got := drawArea(curve.StepAfter,
		[][2]float64{{0, 1}, {2, 3}},
		[][2]float64{{2, 0}, {0, 0}},
	)
	assert.Equal(t, "M0,1L2,1L2,3L2,0L2,0L0,0Z", got)
}

func TestBasis(t *testing.T) {
	got := drawLine(curve.Basis, [2]float64{0, 0}, [2]float64{3, 3}, [2]float64{6, 0})
	assert.Equal(t, "M0,0L0.5,0.5C1,1,2,2,3,2C4,2,5,1,5.5,0.5L6,0", got)
	assert.Equal(t, "M0,0L3,3", drawLine(curve.Basis, [2]float64{0, 0}, [2]float64{3, 3}))
}

func TestCardinalTensionOneIsStraight(t *testing.T) {
	got := drawLine(curve.Cardinal(1), [2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 0})
	assert.Equal(t, "M0,0C0,0,1,1,1,1C1,1,2,0,2,0", got)
}

func TestNaturalEndpoints(t *testing.T) {
	rec := &recorder{}
	c := curve.Natural(rec)
	c.LineStart()
	c.Point(0, 0)
	c.Point(1, 2)
	c.Point(2, 0)
	c.LineEnd()

	require.Len(t, rec.ops, 3)
	assert.Equal(t, "M0,0", rec.ops[0])
	assert.True(t, strings.HasPrefix(rec.ops[1], "C"))
	assert.True(t, strings.HasSuffix(rec.ops[1], ",1,2"))
	assert.True(t, strings.HasSuffix(rec.ops[2], ",2,0"))

	assert.Equal(t, "M0,0L1,1", drawLine(curve.Natural, [2]float64{0, 0}, [2]float64{1, 1}))
}

func TestMonotoneXSkipsCoincidentPoints(t *testing.T) {
	got := drawLine(curve.MonotoneX, [2]float64{0, 0}, [2]float64{0, 0}, [2]float64{1, 1})
	assert.Equal(t, "M0,0L1,1", got)
}

func TestMonotoneXLinearData(t *testing.T) {
	rec := &recorder{}
	c := curve.MonotoneX(rec)
	c.LineStart()
	for i := 0; i < 4; i++ {
		c.Point(float64(i*3), float64(i*3))
	}
	c.LineEnd()

	require.Len(t, rec.ops, 4)
	assert.Equal(t, "M0,0", rec.ops[0])
	assert.Equal(t, "C1,1,2,2,3,3", rec.ops[1])
	assert.Equal(t, "C4,4,5,5,6,6", rec.ops[2])
	assert.Equal(t, "C7,7,8,8,9,9", rec.ops[3])
}

func TestMonotoneYReflects(t *testing.T) {
	rec := &recorder{}
	c := curve.MonotoneY(rec)
	c.LineStart()
	c.Point(5, 0)
	c.Point(7, 1)
	c.LineEnd()
	assert.Equal(t, "M5,0L7,1", rec.String())
}

func TestRadial(t *testing.T) {
	path := gg.NewPath()
	c := curve.Radial(curve.Linear)(path)
	c.LineStart()
	c.Point(0, 10)
	c.Point(math.Pi/2, 10)
	c.LineEnd()

	elems := path.Elements()
	require.Len(t, elems, 2)
	move, ok := elems[0].(gg.MoveTo)
	require.True(t, ok)
	assert.InDelta(t, 0, move.Point.X, 1e-9)
	assert.InDelta(t, -10, move.Point.Y, 1e-9)
	line, ok := elems[1].(gg.LineTo)
	require.True(t, ok)
	assert.InDelta(t, 10, line.Point.X, 1e-9)
	assert.InDelta(t, 0, line.Point.Y, 1e-9)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"", "linear", "monotoneX", "curveMonotoneX", "step-before", "cardinal", "natural", "basis"} {
		f, err := curve.Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, f, name)
	}

	_, err := curve.Lookup("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, curve.ErrUnknown))

	assert.Contains(t, curve.Names(), "monotonex")
}

func TestRegister(t *testing.T) {
	require.NoError(t, curve.Register("test-straight", curve.Linear))
	f, err := curve.Lookup("testStraight")
	require.NoError(t, err)
	assert.Equal(t, "M0,0L1,1", drawLine(f, [2]float64{0, 0}, [2]float64{1, 1}))

	assert.Error(t, curve.Register(" ", curve.Linear))
	assert.Error(t, curve.Register("nil-factory", nil))
}
