package pathdata_test

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/goliatone/go-shapegen/pkg/pathdata"
)

func TestEncode(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 5.5)
	p.QuadraticTo(1, 2, 3, 4)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.Close()

	got := pathdata.Encode(p)
	want := "M0,0L10,5.5Q1,2,3,4C1,2,3,4,5,6Z"
	if got != want {
		t.Fatalf("encode mismatch: want %q, got %q", want, got)
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := pathdata.Encode(nil); got != "" {
		t.Fatalf("nil path: want empty, got %q", got)
	}
	if got := pathdata.Encode(gg.NewPath()); got != "" {
		t.Fatalf("empty path: want empty, got %q", got)
	}

	closeOnly := gg.NewPath()
	closeOnly.Close()
	if got := pathdata.Encode(closeOnly); got != "" {
		t.Fatalf("close without subpath: want empty, got %q", got)
	}
}

func TestEncoderDigits(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(1.23456, -0.0001)
	p.LineTo(2.5, 3)

	enc := pathdata.NewEncoder(pathdata.WithDigits(2))
	if got, want := enc.Encode(p), "M1.23,0L2.5,3"; got != want {
		t.Fatalf("digits mismatch: want %q, got %q", want, got)
	}
}

func TestNumber(t *testing.T) {
	enc := pathdata.NewEncoder()
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1.5, "1.5"},
		{-3, "-3"},
		{1e6, "1000000"},
	}
	for _, tc := range cases {
		if got := enc.Number(tc.in); got != tc.want {
			t.Fatalf("Number(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
	if got := enc.Number(math.NaN()); got != "NaN" {
		t.Fatalf("NaN: got %q", got)
	}
	if got := enc.Number(math.Inf(-1)); got != "-Infinity" {
		t.Fatalf("-Inf: got %q", got)
	}
}
