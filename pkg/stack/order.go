package stack

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrUnknownOrder is returned by OrderByName for unregistered names.
var ErrUnknownOrder = errors.New("stack: unknown order")

// Layer holds the (baseline, topline) pairs of one series. Before offsetting
// the baseline is 0 and the topline is the raw value.
type Layer [][2]float64

// Order returns a permutation of series indexes giving the stacking order.
type Order func(layers []Layer) []int

// OrderNone keeps key order.
func OrderNone(layers []Layer) []int {
	order := make([]int, len(layers))
	for i := range order {
		order[i] = i
	}
	return order
}

// OrderReverse reverses key order.
func OrderReverse(layers []Layer) []int {
	order := OrderNone(layers)
	reverse(order)
	return order
}

// OrderAscending puts the series with the smallest sum at the bottom.
func OrderAscending(layers []Layer) []int {
	sums := make([]float64, len(layers))
	for i, layer := range layers {
		sums[i] = layerSum(layer)
	}
	order := OrderNone(layers)
	sort.SliceStable(order, func(a, b int) bool { return sums[order[a]] < sums[order[b]] })
	return order
}

// OrderDescending puts the series with the largest sum at the bottom.
func OrderDescending(layers []Layer) []int {
	order := OrderAscending(layers)
	reverse(order)
	return order
}

// OrderAppearance sorts series by the index of their peak value, so series
// that peak earlier sit at the bottom.
func OrderAppearance(layers []Layer) []int {
	peaks := make([]int, len(layers))
	for i, layer := range layers {
		peaks[i] = layerPeak(layer)
	}
	order := OrderNone(layers)
	sort.SliceStable(order, func(a, b int) bool { return peaks[order[a]] < peaks[order[b]] })
	return order
}

// OrderInsideOut places early-peaking series in the middle and late-peaking
// series on the outside. It suits streamgraphs combined with OffsetWiggle.
func OrderInsideOut(layers []Layer) []int {
	sums := make([]float64, len(layers))
	for i, layer := range layers {
		sums[i] = layerSum(layer)
	}
	var (
		top, bottom   float64
		tops, bottoms []int
	)
	for _, j := range OrderAppearance(layers) {
		if top < bottom {
			top += sums[j]
			tops = append(tops, j)
		} else {
			bottom += sums[j]
			bottoms = append(bottoms, j)
		}
	}
	reverse(bottoms)
	return append(bottoms, tops...)
}

var orders = map[string]Order{
	"none":       OrderNone,
	"reverse":    OrderReverse,
	"ascending":  OrderAscending,
	"descending": OrderDescending,
	"appearance": OrderAppearance,
	"insideout":  OrderInsideOut,
}

// OrderByName resolves an order strategy. Names are case-insensitive and an
// empty name resolves to OrderNone.
func OrderByName(name string) (Order, error) {
	key := normalizeName(name, "stackorder")
	if key == "" {
		return OrderNone, nil
	}
	order, ok := orders[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOrder, name)
	}
	return order, nil
}

// OrderNames lists the built-in order names, sorted.
func OrderNames() []string {
	return sortedKeys(orders)
}

func layerSum(layer Layer) float64 {
	var s float64
	for _, p := range layer {
		if v := p[1]; v != 0 && !math.IsNaN(v) {
			s += v
		}
	}
	return s
}

func layerPeak(layer Layer) int {
	peak, best := 0, math.Inf(-1)
	for i, p := range layer {
		if v := p[1]; v > best {
			best, peak = v, i
		}
	}
	return peak
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func normalizeName(name, prefix string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, prefix)
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
}
