package accessor

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/spf13/cast"
)

// ErrUnsupported is returned by From when the supplied value is neither a
// number nor a recognised accessor function.
var ErrUnsupported = errors.New("accessor: unsupported accessor value")

// Func maps a datum, its index and the full data slice to a number.
type Func[D any] func(d D, index int, data []D) float64

// Predicate reports whether a datum is defined. Undefined data split paths
// into separate segments.
type Predicate[D any] func(d D, index int, data []D) bool

// Pair is implemented by data that carry an ordered pair of numbers, such as
// stacked series points.
type Pair interface {
	Pair() (float64, float64)
}

// Record is implemented by data that expose named fields.
type Record interface {
	Field(key string) (any, bool)
}

// Constant returns an accessor that yields v for every input.
func Constant[D any](v float64) Func[D] {
	return func(D, int, []D) float64 { return v }
}

// Always is the default defined predicate.
func Always[D any](D, int, []D) bool { return true }

// Value holds either a constant number or an accessor function. The zero value
// is unset, letting generators fall back to their defaults.
type Value[D any] struct {
	fn     Func[D]
	num    float64
	number bool
}

// Number wraps a constant.
func Number[D any](v float64) Value[D] {
	return Value[D]{num: v, number: true}
}

// Of wraps an accessor function. A nil function yields an unset value.
func Of[D any](fn Func[D]) Value[D] {
	return Value[D]{fn: fn}
}

// IsSet reports whether a number or a function was supplied.
func (v Value[D]) IsSet() bool {
	return v.number || v.fn != nil
}

// IsNumber reports whether the value was supplied as a constant.
func (v Value[D]) IsNumber() bool {
	return v.number
}

// Accessor returns the accessor form of the value, or nil when unset.
func (v Value[D]) Accessor() Func[D] {
	if v.number {
		return Constant[D](v.num)
	}
	return v.fn
}

// Or returns the accessor form of v, falling back to def when v is unset.
func (v Value[D]) Or(def Func[D]) Func[D] {
	if fn := v.Accessor(); fn != nil {
		return fn
	}
	return def
}

// From normalises a dynamically typed accessor option. Numbers (including
// numeric strings) become constant accessors; supported function shapes are
// adapted to Func.
func From[D any](v any) (Func[D], error) {
	switch fn := v.(type) {
	case nil:
		return nil, nil
	case Value[D]:
		return fn.Accessor(), nil
	case Func[D]:
		return fn, nil
	case func(D, int, []D) float64:
		return fn, nil
	case func(D, int) float64:
		return func(d D, i int, _ []D) float64 { return fn(d, i) }, nil
	case func(D) float64:
		return func(d D, _ int, _ []D) float64 { return fn(d) }, nil
	case bool:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}

	num, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
	return Constant[D](num), nil
}

// MustFrom mirrors From but panics on error.
func MustFrom[D any](v any) Func[D] {
	fn, err := From[D](v)
	if err != nil {
		panic(err)
	}
	return fn
}

// Field returns an accessor reading key from record data. Values are coerced
// to float64; missing or non-numeric values yield NaN.
func Field[D any](key string) Func[D] {
	return func(d D, _ int, _ []D) float64 {
		return FieldValue(d, key)
	}
}

// FieldValue looks up key on a record datum and coerces it to a number. It is
// the default value accessor of stack layouts.
func FieldValue(d any, key string) float64 {
	var raw any
	switch rec := d.(type) {
	case map[string]float64:
		v, ok := rec[key]
		if !ok {
			return math.NaN()
		}
		return v
	case map[string]int:
		v, ok := rec[key]
		if !ok {
			return math.NaN()
		}
		return float64(v)
	case map[string]any:
		v, ok := rec[key]
		if !ok {
			return math.NaN()
		}
		raw = v
	case Record:
		v, ok := rec.Field(key)
		if !ok {
			return math.NaN()
		}
		raw = v
	default:
		return math.NaN()
	}
	return toNumber(raw)
}

// PointX reads the first component of a pair-shaped datum.
func PointX[D any](d D, _ int, _ []D) float64 {
	x, _ := pair(d)
	return x
}

// PointY reads the second component of a pair-shaped datum.
func PointY[D any](d D, _ int, _ []D) float64 {
	_, y := pair(d)
	return y
}

func pair(d any) (float64, float64) {
	switch p := d.(type) {
	case Pair:
		return p.Pair()
	case gg.Point:
		return p.X, p.Y
	case *gg.Point:
		if p == nil {
			return math.NaN(), math.NaN()
		}
		return p.X, p.Y
	case [2]float64:
		return p[0], p[1]
	case []float64:
		x, y := math.NaN(), math.NaN()
		if len(p) > 0 {
			x = p[0]
		}
		if len(p) > 1 {
			y = p[1]
		}
		return x, y
	case []any:
		x, y := math.NaN(), math.NaN()
		if len(p) > 0 {
			x = toNumber(p[0])
		}
		if len(p) > 1 {
			y = toNumber(p[1])
		}
		return x, y
	default:
		return math.NaN(), math.NaN()
	}
}

func toNumber(v any) float64 {
	if v == nil {
		return math.NaN()
	}
	if _, ok := v.(bool); ok {
		return math.NaN()
	}
	num, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return num
}
