package shape_test

import (
	"math"
	"testing"

	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
	"github.com/goliatone/go-shapegen/pkg/shape"
)

type sample struct {
	x, y float64
	ok   bool
}

func TestLineDefaults(t *testing.T) {
	line := shape.NewLine(shape.LineConfig[[2]float64]{})
	d, ok := line.D([][2]float64{{0, 0}, {1, 2}, {3, 1}})
	if !ok {
		t.Fatalf("expected path for non-empty data")
	}
	if want := "M0,0L1,2L3,1"; d != want {
		t.Fatalf("line mismatch: want %q, got %q", want, d)
	}
}

func TestGeneratorsEmptyData(t *testing.T) {
	gens := map[string]shape.Generator[[2]float64]{
		"line":   shape.NewLine(shape.LineConfig[[2]float64]{}),
		"area":   shape.NewArea(shape.AreaConfig[[2]float64]{}),
		"radial": shape.NewRadialLine(shape.RadialLineConfig[[2]float64]{}),
	}
	for name, gen := range gens {
		d, ok := gen.D(nil)
		if ok || d != "" {
			t.Fatalf("%s: empty data should produce no path, got %q", name, d)
		}
		d, ok = gen.D([][2]float64{})
		if ok || d != "" {
			t.Fatalf("%s: empty slice should produce no path, got %q", name, d)
		}
	}
}

func TestLineDefinedSplitsSegments(t *testing.T) {
	line := shape.NewLine(shape.LineConfig[sample]{
		X:       accessor.Of[sample](func(d sample, _ int, _ []sample) float64 { return d.x }),
		Y:       accessor.Of[sample](func(d sample, _ int, _ []sample) float64 { return d.y }),
		Defined: func(d sample, _ int, _ []sample) bool { return d.ok },
	})
	data := []sample{{0, 0, true}, {1, 1, true}, {2, 2, false}, {3, 3, true}, {4, 4, true}}
	d, _ := line.D(data)
	if want := "M0,0L1,1M3,3L4,4"; d != want {
		t.Fatalf("segments mismatch: want %q, got %q", want, d)
	}

	allUndefined := []sample{{0, 0, false}, {1, 1, false}}
	if d, ok := line.D(allUndefined); ok || d != "" {
		t.Fatalf("all-undefined data should produce no path, got %q", d)
	}
}

func TestLineConstantAccessor(t *testing.T) {
	data := []sample{{0, 5, true}, {1, 7, true}}
	byNumber := shape.NewLine(shape.LineConfig[sample]{
		X: accessor.Of[sample](func(d sample, _ int, _ []sample) float64 { return d.x }),
		Y: accessor.Number[sample](3),
	})
	byFunc := shape.NewLine(shape.LineConfig[sample]{
		X: accessor.Of[sample](func(d sample, _ int, _ []sample) float64 { return d.x }),
		Y: accessor.Of[sample](func(sample, int, []sample) float64 { return 3 }),
	})
	a, _ := byNumber.D(data)
	b, _ := byFunc.D(data)
	if a != b {
		t.Fatalf("constant number and constant accessor differ: %q vs %q", a, b)
	}
	if want := "M0,3L1,3"; a != want {
		t.Fatalf("want %q, got %q", want, a)
	}
}

func TestAreaDefaults(t *testing.T) {
	area := shape.NewArea(shape.AreaConfig[[2]float64]{})
	d, ok := area.D([][2]float64{{0, 1}, {1, 3}})
	if !ok {
		t.Fatalf("expected area path")
	}
	if want := "M0,1L1,3L1,0L0,0Z"; d != want {
		t.Fatalf("area mismatch: want %q, got %q", want, d)
	}
}

func TestAreaXAndYOverrides(t *testing.T) {
	area := shape.NewArea(shape.AreaConfig[[2]float64]{
		X:  accessor.Of[[2]float64](func(d [2]float64, i int, _ [][2]float64) float64 { return float64(i * 10) }),
		Y0: accessor.Number[[2]float64](100),
		Y1: accessor.Of[[2]float64](func(d [2]float64, _ int, _ [][2]float64) float64 { return d[1] }),
	})
	if area.X1() != nil {
		t.Fatalf("X should clear x1")
	}
	d, _ := area.D([][2]float64{{0, 40}, {0, 60}})
	if want := "M0,40L10,60L10,100L0,100Z"; d != want {
		t.Fatalf("area mismatch: want %q, got %q", want, d)
	}
}

func TestAreaDefinedSplits(t *testing.T) {
	area := shape.NewArea(shape.AreaConfig[[2]float64]{
		Defined: func(d [2]float64, _ int, _ [][2]float64) bool { return !math.IsNaN(d[1]) },
	})
	d, _ := area.D([][2]float64{{0, 1}, {1, math.NaN()}, {2, 2}, {3, 2}})
	if want := "M0,1L0,0ZM2,2L3,2L3,0L2,0Z"; d != want {
		t.Fatalf("area mismatch: want %q, got %q", want, d)
	}
}

func TestRadialLine(t *testing.T) {
	radial := shape.NewRadialLine(shape.RadialLineConfig[float64]{
		Angle:   accessor.Of[float64](func(d float64, _ int, _ []float64) float64 { return d }),
		Radius:  accessor.Number[float64](10),
		Encoder: pathdata.NewEncoder(pathdata.WithDigits(3)),
	})
	d, ok := radial.D([]float64{0, math.Pi / 2, math.Pi})
	if !ok {
		t.Fatalf("expected radial path")
	}
	if want := "M0,-10L10,0L0,10"; d != want {
		t.Fatalf("radial mismatch: want %q, got %q", want, d)
	}
	if radial.Radius()(0, 0, nil) != 10 {
		t.Fatalf("radius accessor not exposed")
	}
}

func TestDeterministic(t *testing.T) {
	gen := shape.NewLine(shape.LineConfig[[2]float64]{Curve: curve.MonotoneX})
	data := [][2]float64{{0, 3}, {1, 1}, {2, 4}, {3, 1}, {4, 5}}
	first, _ := gen.D(data)
	for i := 0; i < 5; i++ {
		again, _ := gen.D(data)
		if again != first {
			t.Fatalf("run %d differs: %q vs %q", i, again, first)
		}
	}
}
