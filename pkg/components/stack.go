package components

import (
	"strconv"

	"github.com/goliatone/go-shapegen/pkg/accessor"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/markup"
	"github.com/goliatone/go-shapegen/pkg/pathdata"
	"github.com/goliatone/go-shapegen/pkg/shape"
	"github.com/goliatone/go-shapegen/pkg/stack"
)

// StackArgs is passed to a Stack Children callback.
type StackArgs[D any] struct {
	Stacks []stack.Series[D]
	Path   *shape.Area[stack.SeriesPoint[D]]
	Stack  *stack.Stack[D]
}

// StackProps configures Stack. Accessors over stacked points read the
// baseline with d.Y0 and the topline with d.Y1; the input datum is d.Data.
type StackProps[D any] struct {
	ClassName string
	Top       float64
	Left      float64
	// Keys lists the series. When empty the keys found in Data are used.
	Keys   []string
	Data   []D
	Value  stack.Value[D]
	Order  stack.Order
	Offset stack.Offset

	Curve   curve.Factory
	Defined accessor.Predicate[stack.SeriesPoint[D]]
	// X sets x0 and clears x1.
	X  accessor.Value[stack.SeriesPoint[D]]
	X0 accessor.Value[stack.SeriesPoint[D]]
	X1 accessor.Value[stack.SeriesPoint[D]]
	Y0 accessor.Value[stack.SeriesPoint[D]]
	Y1 accessor.Value[stack.SeriesPoint[D]]

	Color    ColorFunc
	Encoder  *pathdata.Encoder
	Attrs    markup.Attributes
	Children func(StackArgs[D]) markup.Node
}

// Stack lays out Data as stacked areas. Without Children it returns a group
// translated by (Left, Top) holding one path per series, in series order.
func Stack[D any](p StackProps[D]) markup.Node {
	layout := stack.New(stack.Config[D]{
		Keys:   p.Keys,
		Value:  p.Value,
		Order:  p.Order,
		Offset: p.Offset,
	})
	path := shape.NewArea(shape.AreaConfig[stack.SeriesPoint[D]]{
		X:       p.X,
		X0:      p.X0,
		X1:      p.X1,
		Y0:      p.Y0,
		Y1:      p.Y1,
		Defined: p.Defined,
		Curve:   p.Curve,
		Encoder: p.Encoder,
	})
	stacks := layout.Compute(p.Data)

	if p.Children != nil {
		return p.Children(StackArgs[D]{Stacks: stacks, Path: path, Stack: layout})
	}

	children := make([]markup.Node, 0, len(stacks))
	for i, series := range stacks {
		attrs := markup.Attributes{
			"class":    markup.ClassNames(ClassStack, p.ClassName),
			"data-key": "stack-" + strconv.Itoa(i) + "-" + series.Key,
		}
		if p.Color != nil {
			attrs["fill"] = p.Color(series.Key, i)
		}
		children = append(children, pathElement(p.Encoder, path.Path(series.Points), attrs, p.Attrs))
	}
	return markup.Group(p.Top, p.Left, children...)
}
