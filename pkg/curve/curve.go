// Package curve provides the interpolation strategies used between points of
// a line or area path. A strategy receives points through the Curve interface
// and draws into a Context, normally a *gg.Path.
package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
)

// ErrUnknown is returned by Lookup for unregistered curve names.
var ErrUnknown = errors.New("curve: unknown curve")

// Context is the drawing surface a curve writes to. *gg.Path satisfies it.
type Context interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Curve receives the points of one or more line segments. Area generators
// bracket the topline and the reversed baseline with AreaStart/AreaEnd so
// the two lines join into a closed shape.
type Curve interface {
	AreaStart()
	AreaEnd()
	LineStart()
	LineEnd()
	Point(x, y float64)
}

// Factory binds a curve strategy to a drawing context.
type Factory func(ctx Context) Curve

// lineState tracks whether a curve is drawing a standalone line (none), the
// topline of an area (0) or the baseline of an area (1).
type lineState int

const (
	lineNone lineState = iota - 1
	lineTop
	lineBottom
)

func (s lineState) active() bool { return s == lineBottom }

// closes reports whether a segment ending with the given point count must be
// closed: the baseline of an area always closes, and a standalone single
// point closes into a degenerate subpath.
func (s lineState) closes(points int) bool {
	return s == lineBottom || (s == lineNone && points == 1)
}

func (s lineState) next() lineState {
	switch s {
	case lineTop:
		return lineBottom
	case lineBottom:
		return lineTop
	default:
		return lineNone
	}
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"linear":       Linear,
		"linearclosed": LinearClosed,
		"step":         Step,
		"stepbefore":   StepBefore,
		"stepafter":    StepAfter,
		"basis":        Basis,
		"cardinal":     Cardinal(0),
		"natural":      Natural,
		"monotonex":    MonotoneX,
		"monotoney":    MonotoneY,
	}
)

// Register adds or replaces a named curve strategy.
func Register(name string, factory Factory) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("curve: curve name is required")
	}
	if factory == nil {
		return fmt.Errorf("curve: factory for %q is nil", name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[key] = factory
	return nil
}

// Lookup resolves a curve by name. Names are case-insensitive and may use
// the "curve" prefix, so "monotoneX", "curveMonotoneX" and "monotonex" are
// equivalent. An empty name resolves to Linear.
func Lookup(name string) (Factory, error) {
	key := normalize(name)
	if key == "" {
		return Linear, nil
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return factory, nil
}

// Names returns the registered curve names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "curve")
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	return key
}

// orZero maps NaN to zero, leaving other values untouched.
func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
