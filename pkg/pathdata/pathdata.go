// Package pathdata encodes vector paths as SVG path description strings.
package pathdata

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithDigits rounds coordinates to the given number of fraction digits.
// Negative values keep full precision.
func WithDigits(digits int) Option {
	return func(e *Encoder) {
		e.digits = digits
	}
}

// Encoder turns path elements into "d" attribute values.
type Encoder struct {
	digits int
}

// NewEncoder builds an encoder with full coordinate precision unless
// overridden.
func NewEncoder(options ...Option) *Encoder {
	enc := &Encoder{digits: -1}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(enc)
	}
	return enc
}

// Encode serialises p. Nil or empty paths produce an empty string.
func (e *Encoder) Encode(p *gg.Path) string {
	if p == nil {
		return ""
	}
	elems := p.Elements()
	if len(elems) == 0 {
		return ""
	}

	var b strings.Builder
	open := false
	for _, elem := range elems {
		switch el := elem.(type) {
		case gg.MoveTo:
			b.WriteByte('M')
			e.writePoints(&b, el.Point)
			open = true
		case gg.LineTo:
			b.WriteByte('L')
			e.writePoints(&b, el.Point)
			open = true
		case gg.QuadTo:
			b.WriteByte('Q')
			e.writePoints(&b, el.Control, el.Point)
			open = true
		case gg.CubicTo:
			b.WriteByte('C')
			e.writePoints(&b, el.Control1, el.Control2, el.Point)
			open = true
		case gg.Close:
			if open {
				b.WriteByte('Z')
			}
		}
	}
	return b.String()
}

// Number formats a single coordinate the way Encode does.
func (e *Encoder) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if e != nil && e.digits >= 0 {
		k := math.Pow(10, float64(e.digits))
		v = math.Round(v*k) / k
	}
	if v == 0 {
		// Drop the sign of negative zero.
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (e *Encoder) writePoints(b *strings.Builder, pts ...gg.Point) {
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.Number(pt.X))
		b.WriteByte(',')
		b.WriteString(e.Number(pt.Y))
	}
}

var defaultEncoder = NewEncoder()

// Encode serialises p with full precision.
func Encode(p *gg.Path) string {
	return defaultEncoder.Encode(p)
}

// Number formats v with full precision.
func Number(v float64) string {
	return defaultEncoder.Number(v)
}
