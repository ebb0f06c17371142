package chart

import (
	"fmt"
	"math"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/components"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
	"github.com/goliatone/go-shapegen/pkg/stack"
)

// Record is a single data row.
type Record = map[string]any

// Point is a stacked point over a Record.
type Point = stack.SeriesPoint[Record]

// Reserved accessor field names.
const (
	FieldIndex = "$index"
	FieldY0    = "$y0"
	FieldY1    = "$y1"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	theme *theme.RendererConfig
}

// WithTheme resolves stack colours from theme tokens before the document
// palette.
func WithTheme(cfg *theme.RendererConfig) BuildOption {
	return func(bc *buildConfig) {
		bc.theme = cfg
	}
}

// Build turns the document into a markup tree.
func (d *Document) Build(options ...BuildOption) (markup.Node, error) {
	var cfg buildConfig
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	kind, err := NormalizeKind(d.Kind)
	if err != nil {
		return nil, d.errorf("%w", err)
	}
	curveFactory, err := curve.Lookup(d.Curve)
	if err != nil {
		return nil, d.errorf("curve: %w", err)
	}
	var enc *pathdata.Encoder
	if d.Digits != nil {
		enc = pathdata.NewEncoder(pathdata.WithDigits(*d.Digits))
	}
	attrs := markup.Attributes(d.Attrs)

	switch kind {
	case KindStack:
		return d.buildStack(cfg, curveFactory, enc, attrs)
	case KindArea:
		if !d.Y.IsSet() && !d.Y1.IsSet() {
			return nil, d.errorf("%w: area requires y or y1", ErrMissingAccessor)
		}
		return components.Area(components.AreaProps[Record]{
			ClassName: d.Class,
			Data:      d.Data,
			X:         recordValue(orIndex(d.X)),
			X0:        recordValue(d.X0),
			X1:        recordValue(d.X1),
			Y:         recordValue(d.Y),
			Y0:        recordValue(d.Y0),
			Y1:        recordValue(d.Y1),
			Defined:   recordDefined(d.Defined),
			Curve:     curveFactory,
			Fill:      d.Fill,
			Encoder:   enc,
			Attrs:     attrs,
		}), nil
	case KindLine:
		if !d.Y.IsSet() {
			return nil, d.errorf("%w: line requires y", ErrMissingAccessor)
		}
		return components.LinePath(components.LinePathProps[Record]{
			ClassName: d.Class,
			Data:      d.Data,
			X:         recordValue(orIndex(d.X)),
			Y:         recordValue(d.Y),
			Defined:   recordDefined(d.Defined),
			Curve:     curveFactory,
			Fill:      d.Fill,
			Encoder:   enc,
			Attrs:     attrs,
		}), nil
	case KindLineRadial:
		if !d.Radius.IsSet() {
			return nil, d.errorf("%w: lineRadial requires radius", ErrMissingAccessor)
		}
		return components.LineRadial(components.LineRadialProps[Record]{
			ClassName: d.Class,
			Data:      d.Data,
			Angle:     recordValue(orIndex(d.Angle)),
			Radius:    recordValue(d.Radius),
			Defined:   recordDefined(d.Defined),
			Curve:     curveFactory,
			Fill:      d.Fill,
			Encoder:   enc,
			Attrs:     attrs,
		}), nil
	}
	return nil, d.errorf("%w %q", ErrUnknownKind, d.Kind)
}

func (d *Document) buildStack(cfg buildConfig, curveFactory curve.Factory, enc *pathdata.Encoder, attrs markup.Attributes) (markup.Node, error) {
	order, err := stack.OrderByName(d.Order)
	if err != nil {
		return nil, d.errorf("order: %w", err)
	}
	offset, err := stack.OffsetByName(d.Offset)
	if err != nil {
		return nil, d.errorf("offset: %w", err)
	}

	var value stack.Value[Record]
	switch {
	case d.Value.IsNumber():
		value = stack.NumberValue[Record](d.Value.Number)
	case d.Value.IsSet():
		field := d.Value.Field
		value = stack.AccessorValue[Record](func(r Record, _ string, _ int, _ []Record) float64 {
			return accessor.FieldValue(r, field)
		})
	}

	y0, y1 := d.Y0, d.Y1
	if !y0.IsSet() {
		y0 = FieldOf(FieldY0)
	}
	if !y1.IsSet() {
		y1 = FieldOf(FieldY1)
	}

	props := components.StackProps[Record]{
		ClassName: d.Class,
		Top:       d.Top,
		Left:      d.Left,
		Keys:      d.Keys,
		Data:      d.Data,
		Value:     value,
		Order:     order,
		Offset:    offset,
		Curve:     curveFactory,
		Defined:   pointDefined(d.Defined),
		X:         pointValue(orIndex(d.X)),
		X0:        pointValue(d.X0),
		X1:        pointValue(d.X1),
		Y0:        pointValue(y0),
		Y1:        pointValue(y1),
		Encoder:   enc,
		Attrs:     attrs,
	}
	if cfg.theme != nil || len(d.Colors) > 0 {
		props.Color = components.ThemePalette(cfg.theme, d.Colors...)
	}
	return components.Stack(props), nil
}

func (d *Document) errorf(format string, args ...any) error {
	return fmt.Errorf("chart: %s: "+format, append([]any{d.Source}, args...)...)
}

func orIndex(a Accessor) Accessor {
	if a.IsSet() {
		return a
	}
	return FieldOf(FieldIndex)
}

func recordValue(a Accessor) accessor.Value[Record] {
	switch {
	case !a.IsSet():
		return accessor.Value[Record]{}
	case a.IsNumber():
		return accessor.Number[Record](a.Number)
	case a.Field == FieldIndex:
		return accessor.Of[Record](func(_ Record, i int, _ []Record) float64 { return float64(i) })
	default:
		return accessor.Of[Record](accessor.Field[Record](a.Field))
	}
}

func pointValue(a Accessor) accessor.Value[Point] {
	switch {
	case !a.IsSet():
		return accessor.Value[Point]{}
	case a.IsNumber():
		return accessor.Number[Point](a.Number)
	}
	switch field := a.Field; field {
	case FieldIndex:
		return accessor.Of[Point](func(_ Point, i int, _ []Point) float64 { return float64(i) })
	case FieldY0:
		return accessor.Of[Point](func(p Point, _ int, _ []Point) float64 { return p.Y0 })
	case FieldY1:
		return accessor.Of[Point](func(p Point, _ int, _ []Point) float64 { return p.Y1 })
	default:
		return accessor.Of[Point](func(p Point, _ int, _ []Point) float64 { return accessor.FieldValue(p.Data, field) })
	}
}

func recordDefined(field string) accessor.Predicate[Record] {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	return func(r Record, _ int, _ []Record) bool {
		return !math.IsNaN(accessor.FieldValue(r, field))
	}
}

func pointDefined(field string) accessor.Predicate[Point] {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	read := pointValue(FieldOf(field)).Accessor()
	return func(p Point, i int, data []Point) bool {
		return !math.IsNaN(read(p, i, data))
	}
}
