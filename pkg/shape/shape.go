// Package shape builds path generators for lines, areas and radial lines.
// Generators are configured once from accessors and a curve strategy and can
// then be applied to any number of data slices; they hold no per-call state.
package shape

import (
	"github.com/gogpu/gg"

	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
)

// Generator maps an ordered data slice to a vector path.
type Generator[D any] interface {
	// Path draws the data into a new path.
	Path(data []D) *gg.Path
	// D returns the SVG path description. The boolean is false when the data
	// produce no path, for example when data is empty or fully undefined.
	D(data []D) (string, bool)
}

func describe(enc *pathdata.Encoder, p *gg.Path) (string, bool) {
	if enc == nil {
		enc = pathdata.NewEncoder()
	}
	d := enc.Encode(p)
	return d, d != ""
}

func curveOrDefault(f curve.Factory) curve.Factory {
	if f == nil {
		return curve.Linear
	}
	return f
}
