// Package components turns path generator configuration into markup. Each
// component builds its generator from props on every call, then either hands
// the generator to a Children callback or emits path elements.
package components

import (
	"github.com/gogpu/gg"

	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
)

// Class names applied to emitted elements.
const (
	ClassLineRadial = "vx-line-radial"
	ClassStack      = "vx-stack"
	ClassLinePath   = "vx-linepath"
	ClassArea       = "vx-area"
)

// DefaultFill is used by line components when no fill is given.
const DefaultFill = "transparent"

// ColorFunc returns the fill for a series key at a given index.
type ColorFunc func(key string, index int) string

func pathElement(enc *pathdata.Encoder, geom *gg.Path, base markup.Attributes, extra markup.Attributes) *markup.Element {
	if enc == nil {
		enc = pathdata.NewEncoder()
	}
	base["d"] = enc.Encode(geom)
	return markup.Path(markup.Merge(base, extra), geom)
}

func fillOr(fill, def string) string {
	if fill == "" {
		return def
	}
	return fill
}
