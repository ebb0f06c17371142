// Package markup holds the element tree components emit. Trees are plain
// values: renderers walk them to produce SVG text or raster previews.
package markup

import (
	"sort"
	"strings"

	"github.com/gogpu/gg"

	"github.com/goliatone/go-shapegen/pkg/pathdata"
)

// Node is any value that can appear in a markup tree.
type Node interface {
	isNode()
}

// Element is a tagged node with attributes and children. Geometry keeps the
// vector path a path element was drawn from so raster renderers can replay
// it without reparsing the "d" attribute.
type Element struct {
	Tag      string
	Attrs    Attributes
	Children []Node
	Geometry *gg.Path
}

// Fragment groups nodes without a wrapping element.
type Fragment []Node

// Text is escaped character data.
type Text string

// Raw is emitted verbatim.
type Raw string

func (*Element) isNode() {}
func (Fragment) isNode() {}
func (Text) isNode()     {}
func (Raw) isNode()      {}

// Attributes maps attribute names to values.
type Attributes map[string]string

// Keys returns attribute names in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the named attribute or "".
func (a Attributes) Get(name string) string {
	return a[name]
}

// Clone returns a shallow copy.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Merge combines attribute sets; later sets win. The "class" attribute is
// joined instead of replaced.
func Merge(sets ...Attributes) Attributes {
	out := Attributes{}
	for _, set := range sets {
		for key, value := range set {
			if key == "class" {
				if joined := ClassNames(out[key], value); joined != "" {
					out[key] = joined
				}
				continue
			}
			out[key] = value
		}
	}
	return out
}

// ClassNames joins non-empty class tokens with single spaces.
func ClassNames(names ...string) string {
	var tokens []string
	for _, name := range names {
		tokens = append(tokens, strings.Fields(name)...)
	}
	return strings.Join(tokens, " ")
}

// Translate formats an SVG translate transform.
func Translate(left, top float64) string {
	return "translate(" + pathdata.Number(left) + ", " + pathdata.Number(top) + ")"
}

// Group wraps children in a <g> translated by (left, top).
func Group(top, left float64, children ...Node) *Element {
	return &Element{
		Tag:      "g",
		Attrs:    Attributes{"transform": Translate(left, top)},
		Children: children,
	}
}

// Path builds a <path> element drawn from geom.
func Path(attrs Attributes, geom *gg.Path) *Element {
	return &Element{Tag: "path", Attrs: attrs, Geometry: geom}
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case *Element:
		if v == nil || !fn(v) {
			return
		}
		for _, child := range v.Children {
			Walk(child, fn)
		}
	case Fragment:
		if !fn(v) {
			return
		}
		for _, child := range v {
			Walk(child, fn)
		}
	default:
		fn(v)
	}
}

// Find returns every element with the given tag in document order.
func Find(n Node, tag string) []*Element {
	var out []*Element
	Walk(n, func(node Node) bool {
		if el, ok := node.(*Element); ok && el.Tag == tag {
			out = append(out, el)
		}
		return true
	})
	return out
}
