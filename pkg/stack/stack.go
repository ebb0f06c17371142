// Package stack computes stacked series layouts: each key of the input data
// becomes a series of (baseline, topline) points, ordered and offset by
// pluggable strategies.
package stack

import (
	"sort"

	"github.com/goliatone/go-shapegen/pkg/accessor"
)

// SeriesPoint is a stacked point. Y0 is the baseline and Y1 the topline.
type SeriesPoint[D any] struct {
	Y0   float64
	Y1   float64
	Data D
}

// Pair exposes the point as (Y0, Y1) so pair-reading accessors work on it.
func (p SeriesPoint[D]) Pair() (float64, float64) {
	return p.Y0, p.Y1
}

// Series is the stacked layout for a single key. Index is the position of the
// series in the stacking order, which may differ from its position in the
// returned slice.
type Series[D any] struct {
	Key    string
	Index  int
	Points []SeriesPoint[D]
}

// ValueAccessor reads the value of key for datum d.
type ValueAccessor[D any] func(d D, key string, index int, data []D) float64

// Value is a number-or-accessor option for the stack value.
type Value[D any] struct {
	fn     ValueAccessor[D]
	num    float64
	number bool
}

// NumberValue makes every key of every datum stack the constant v.
func NumberValue[D any](v float64) Value[D] {
	return Value[D]{num: v, number: true}
}

// AccessorValue wraps a value accessor.
func AccessorValue[D any](fn ValueAccessor[D]) Value[D] {
	return Value[D]{fn: fn}
}

// IsSet reports whether a number or function was supplied.
func (v Value[D]) IsSet() bool {
	return v.number || v.fn != nil
}

// Accessor returns the accessor form of v, or nil when unset.
func (v Value[D]) Accessor() ValueAccessor[D] {
	if v.number {
		num := v.num
		return func(D, string, int, []D) float64 { return num }
	}
	return v.fn
}

// Keyed is implemented by data that list their own keys in order.
type Keyed interface {
	Keys() []string
}

// Config configures a Stack.
type Config[D any] struct {
	// Keys lists the series in order. When empty the keys present in the
	// data are used in first-seen order; map records contribute their keys
	// sorted.
	Keys []string
	// KeysFunc overrides key discovery when Keys is empty.
	KeysFunc func(data []D) []string
	// Value reads the value for a key. Defaults to a field lookup on record
	// data.
	Value Value[D]
	// Order permutes the series before offsetting. Defaults to OrderNone.
	Order Order
	// Offset assigns baselines. Defaults to OffsetNone.
	Offset Offset
}

// Stack is a configured stacking computation.
type Stack[D any] struct {
	keys     []string
	keysFunc func(data []D) []string
	value    ValueAccessor[D]
	order    Order
	offset   Offset
}

// New constructs a Stack from cfg.
func New[D any](cfg Config[D]) *Stack[D] {
	s := &Stack[D]{
		keys:     append([]string(nil), cfg.Keys...),
		keysFunc: cfg.KeysFunc,
		value:    cfg.Value.Accessor(),
		order:    cfg.Order,
		offset:   cfg.Offset,
	}
	if s.value == nil {
		s.value = fieldValue[D]
	}
	if s.order == nil {
		s.order = OrderNone
	}
	if s.offset == nil {
		s.offset = OffsetNone
	}
	return s
}

// Keys returns the keys the stack uses for data.
func (s *Stack[D]) Keys(data []D) []string {
	if len(s.keys) > 0 {
		return append([]string(nil), s.keys...)
	}
	if s.keysFunc != nil {
		return s.keysFunc(data)
	}
	return discoverKeys(data)
}

// Value returns the configured value accessor.
func (s *Stack[D]) Value() ValueAccessor[D] { return s.value }

// Order returns the configured order strategy.
func (s *Stack[D]) Order() Order { return s.order }

// Offset returns the configured offset strategy.
func (s *Stack[D]) Offset() Offset { return s.offset }

// Compute lays out data. The result holds one series per key in key order;
// each series has one point per datum.
func (s *Stack[D]) Compute(data []D) []Series[D] {
	keys := s.Keys(data)
	layers := make([]Layer, len(keys))
	for i, key := range keys {
		layer := make(Layer, len(data))
		for j, d := range data {
			layer[j] = [2]float64{0, s.value(d, key, j, data)}
		}
		layers[i] = layer
	}

	order := s.order(layers)
	if !isPermutation(order, len(layers)) {
		order = OrderNone(layers)
	}
	index := make([]int, len(layers))
	for i, o := range order {
		index[o] = i
	}
	s.offset(layers, order)

	out := make([]Series[D], len(keys))
	for i, key := range keys {
		points := make([]SeriesPoint[D], len(data))
		for j, d := range data {
			points[j] = SeriesPoint[D]{Y0: layers[i][j][0], Y1: layers[i][j][1], Data: d}
		}
		out[i] = Series[D]{Key: key, Index: index[i], Points: points}
	}
	return out
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, o := range order {
		if o < 0 || o >= n || seen[o] {
			return false
		}
		seen[o] = true
	}
	return true
}

func fieldValue[D any](d D, key string, _ int, _ []D) float64 {
	return accessor.FieldValue(d, key)
}

func discoverKeys[D any](data []D) []string {
	var keys []string
	seen := make(map[string]struct{})
	add := func(key string) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	for _, d := range data {
		for _, key := range keysOf(d) {
			add(key)
		}
	}
	return keys
}

func keysOf(d any) []string {
	switch rec := d.(type) {
	case Keyed:
		return rec.Keys()
	case map[string]any:
		return sortedKeys(rec)
	case map[string]float64:
		return sortedKeys(rec)
	case map[string]int:
		return sortedKeys(rec)
	default:
		return nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
