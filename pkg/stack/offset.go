package stack

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownOffset is returned by OffsetByName for unregistered names.
var ErrUnknownOffset = errors.New("stack: unknown offset")

// Offset assigns baselines to layers in place, visiting them in the given
// order.
type Offset func(layers []Layer, order []int)

// OffsetNone stacks each layer on the topline of the previous one, starting
// from zero. A NaN topline passes the baseline through.
func OffsetNone(layers []Layer, order []int) {
	if len(layers) < 2 || len(order) < 2 {
		return
	}
	s1 := layers[order[0]]
	for i := 1; i < len(order); i++ {
		s0 := s1
		s1 = layers[order[i]]
		for j := range s1 {
			base := s0[j][1]
			if math.IsNaN(base) {
				base = s0[j][0]
			}
			s1[j][0] = base
			s1[j][1] += base
		}
	}
}

// OffsetExpand normalises each point column to the [0, 1] range, then
// stacks with OffsetNone.
func OffsetExpand(layers []Layer, order []int) {
	if len(layers) == 0 {
		return
	}
	for j := range layers[0] {
		var y float64
		for i := range layers {
			y += orZero(layers[i][j][1])
		}
		if y != 0 {
			for i := range layers {
				layers[i][j][1] /= y
			}
		}
	}
	OffsetNone(layers, order)
}

// OffsetDiverging stacks positive values above zero and negative values
// below zero.
func OffsetDiverging(layers []Layer, order []int) {
	if len(layers) == 0 || len(order) == 0 {
		return
	}
	for j := range layers[order[0]] {
		var yp, yn float64
		for _, o := range order {
			d := &layers[o][j]
			dy := d[1] - d[0]
			switch {
			case dy > 0:
				d[0] = yp
				yp += dy
				d[1] = yp
			case dy < 0:
				d[1] = yn
				yn += dy
				d[0] = yn
			default:
				d[0] = 0
				d[1] = dy
			}
		}
	}
}

// OffsetSilhouette centres the stack around zero.
func OffsetSilhouette(layers []Layer, order []int) {
	if len(layers) == 0 || len(order) == 0 {
		return
	}
	s0 := layers[order[0]]
	for j := range s0 {
		var y float64
		for i := range layers {
			y += orZero(layers[i][j][1])
		}
		s0[j][0] = -y / 2
		s0[j][1] += s0[j][0]
	}
	OffsetNone(layers, order)
}

// OffsetWiggle shifts the baseline to minimise the weighted change in slope,
// as used by streamgraphs.
func OffsetWiggle(layers []Layer, order []int) {
	if len(layers) == 0 || len(order) == 0 {
		return
	}
	s0 := layers[order[0]]
	m := len(s0)
	if m == 0 {
		return
	}
	var y float64
	for j := 1; j < m; j++ {
		var s1, s2 float64
		for i, oi := range order {
			si := layers[oi]
			sij0 := orZero(si[j][1])
			sij1 := orZero(si[j-1][1])
			s3 := (sij0 - sij1) / 2
			for k := 0; k < i; k++ {
				sk := layers[order[k]]
				s3 += orZero(sk[j][1]) - orZero(sk[j-1][1])
			}
			s1 += sij0
			s2 += s3 * sij0
		}
		s0[j-1][0] = y
		s0[j-1][1] += y
		if s1 != 0 {
			y -= s2 / s1
		}
	}
	s0[m-1][0] = y
	s0[m-1][1] += y
	OffsetNone(layers, order)
}

var offsets = map[string]Offset{
	"none":       OffsetNone,
	"expand":     OffsetExpand,
	"diverging":  OffsetDiverging,
	"silhouette": OffsetSilhouette,
	"wiggle":     OffsetWiggle,
}

// OffsetByName resolves an offset strategy. Names are case-insensitive and
// an empty name resolves to OffsetNone.
func OffsetByName(name string) (Offset, error) {
	key := normalizeName(name, "stackoffset")
	if key == "" {
		return OffsetNone, nil
	}
	offset, ok := offsets[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOffset, name)
	}
	return offset, nil
}

// OffsetNames lists the built-in offset names, sorted.
func OffsetNames() []string {
	return sortedKeys(offsets)
}

func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
