// Package chart reads declarative chart documents from JSON or YAML and
// builds them into markup trees with the components package.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-shapegen/pkg/render"
)

// Kind selects the component a document builds.
type Kind string

const (
	KindStack      Kind = "stack"
	KindArea       Kind = "area"
	KindLine       Kind = "line"
	KindLineRadial Kind = "lineRadial"
)

var (
	// ErrUnknownKind is returned for documents with an unsupported kind.
	ErrUnknownKind = errors.New("chart: unknown kind")
	// ErrMissingAccessor is returned when a kind requires an accessor the
	// document does not set.
	ErrMissingAccessor = errors.New("chart: missing accessor")
)

// Document is a parsed chart description.
type Document struct {
	Source string `json:"-" yaml:"-"`

	Kind   Kind    `json:"kind" yaml:"kind"`
	Width  int     `json:"width" yaml:"width"`
	Height int     `json:"height" yaml:"height"`
	Top    float64 `json:"top" yaml:"top"`
	Left   float64 `json:"left" yaml:"left"`

	Class string            `json:"class" yaml:"class"`
	Fill  string            `json:"fill" yaml:"fill"`
	Attrs map[string]string `json:"attrs" yaml:"attrs"`
	// Colors is the series palette for stack documents. Theme tokens named
	// series.<key> or series.<index> take precedence.
	Colors     []string `json:"colors" yaml:"colors"`
	Background string   `json:"background" yaml:"background"`

	Keys []string         `json:"keys" yaml:"keys"`
	Data []map[string]any `json:"data" yaml:"data"`

	X      Accessor `json:"x" yaml:"x"`
	X0     Accessor `json:"x0" yaml:"x0"`
	X1     Accessor `json:"x1" yaml:"x1"`
	Y      Accessor `json:"y" yaml:"y"`
	Y0     Accessor `json:"y0" yaml:"y0"`
	Y1     Accessor `json:"y1" yaml:"y1"`
	Angle  Accessor `json:"angle" yaml:"angle"`
	Radius Accessor `json:"radius" yaml:"radius"`
	Value  Accessor `json:"value" yaml:"value"`
	// Defined names a field; a datum is defined when the field is numeric.
	Defined string `json:"defined" yaml:"defined"`

	Curve  string `json:"curve" yaml:"curve"`
	Order  string `json:"order" yaml:"order"`
	Offset string `json:"offset" yaml:"offset"`
	// Digits rounds path coordinates when set.
	Digits *int `json:"digits" yaml:"digits"`
}

// RenderOptions derives standalone render options from the document.
func (d *Document) RenderOptions() render.RenderOptions {
	return render.RenderOptions{
		Width:      d.Width,
		Height:     d.Height,
		Standalone: true,
		Background: d.Background,
	}
}

// Accessor is a document accessor: a number is a constant, a string names a
// datum field. The names $index, $y0 and $y1 read the datum index and, in
// stack documents, the stacked baseline and topline.
type Accessor struct {
	Field  string
	Number float64
	number bool
}

// Const builds a constant accessor.
func Const(v float64) Accessor { return Accessor{Number: v, number: true} }

// FieldOf builds a field accessor.
func FieldOf(name string) Accessor { return Accessor{Field: name} }

// IsSet reports whether the accessor was given.
func (a Accessor) IsSet() bool { return a.number || a.Field != "" }

// IsNumber reports whether the accessor is a constant.
func (a Accessor) IsNumber() bool { return a.number }

// UnmarshalJSON accepts a number or a string.
func (a *Accessor) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = Accessor{}
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*a = Const(num)
		return nil
	}
	var field string
	if err := json.Unmarshal(data, &field); err != nil {
		return fmt.Errorf("chart: accessor must be a number or field name, got %s", trimmed)
	}
	*a = FieldOf(strings.TrimSpace(field))
	return nil
}

// UnmarshalYAML accepts a numeric or string scalar.
func (a *Accessor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("chart: line %d: accessor must be a scalar", node.Line)
	}
	switch node.Tag {
	case "!!null":
		*a = Accessor{}
	case "!!bool":
		return fmt.Errorf("chart: line %d: accessor must be a number or field name", node.Line)
	case "!!int", "!!float":
		num, err := cast.ToFloat64E(node.Value)
		if err != nil {
			return fmt.Errorf("chart: line %d: accessor: %w", node.Line, err)
		}
		*a = Const(num)
	default:
		*a = FieldOf(strings.TrimSpace(node.Value))
	}
	return nil
}

func (a Accessor) String() string {
	if a.number {
		return cast.ToString(a.Number)
	}
	return a.Field
}

// NormalizeKind resolves k case-insensitively, accepting the aliases
// linepath, radial and radialline.
func NormalizeKind(k Kind) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(string(k))) {
	case "stack":
		return KindStack, nil
	case "area":
		return KindArea, nil
	case "line", "linepath":
		return KindLine, nil
	case "lineradial", "radial", "radialline":
		return KindLineRadial, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, k)
}
