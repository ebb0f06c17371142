package stack_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-shapegen/pkg/stack"
)

type row = map[string]any

func pairs[D any](s stack.Series[D]) [][2]float64 {
	out := make([][2]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = [2]float64{p.Y0, p.Y1}
	}
	return out
}

func TestComputeDefaultOrderAndOffset(t *testing.T) {
	data := []row{{"a": 1, "b": 2}, {"a": 3, "b": 4}}
	series := stack.New(stack.Config[row]{Keys: []string{"a", "b"}}).Compute(data)

	require.Len(t, series, 2)
	assert.Equal(t, "a", series[0].Key)
	assert.Equal(t, "b", series[1].Key)
	assert.Equal(t, [][2]float64{{0, 1}, {0, 3}}, pairs(series[0]))
	assert.Equal(t, [][2]float64{{1, 3}, {3, 7}}, pairs(series[1]))
	assert.Equal(t, 0, series[0].Index)
	assert.Equal(t, 1, series[1].Index)

	for _, s := range series {
		for j, p := range s.Points {
			assert.Equal(t, data[j], p.Data)
		}
	}
}

func TestComputeDiscoversKeys(t *testing.T) {
	data := []row{{"b": 1, "a": 2}, {"c": 3}}
	s := stack.New(stack.Config[row]{})
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys(data))

	series := s.Compute(data)
	require.Len(t, series, 3)
	// Missing values are NaN and pass the baseline through.
	assert.True(t, math.IsNaN(series[2].Points[0].Y1))
	assert.Equal(t, 3.0, series[1].Points[0].Y1)
}

type keyed struct{ vals map[string]float64 }

func (k keyed) Keys() []string { return []string{"z", "y"} }

func TestComputeKeyedData(t *testing.T) {
	s := stack.New(stack.Config[keyed]{
		Value: stack.AccessorValue[keyed](func(d keyed, key string, _ int, _ []keyed) float64 { return d.vals[key] }),
	})
	series := s.Compute([]keyed{{vals: map[string]float64{"z": 1, "y": 2}}})
	require.Len(t, series, 2)
	assert.Equal(t, "z", series[0].Key)
	assert.Equal(t, [][2]float64{{1, 3}}, pairs(series[1]))
}

func TestNumberValue(t *testing.T) {
	data := []row{{}, {}, {}}
	byNumber := stack.New(stack.Config[row]{Keys: []string{"a", "b"}, Value: stack.NumberValue[row](2)}).Compute(data)
	byFunc := stack.New(stack.Config[row]{
		Keys:  []string{"a", "b"},
		Value: stack.AccessorValue[row](func(row, string, int, []row) float64 { return 2 }),
	}).Compute(data)
	assert.Equal(t, byFunc, byNumber)
	assert.Equal(t, [][2]float64{{2, 4}, {2, 4}, {2, 4}}, pairs(byNumber[1]))
}

func TestDeterministic(t *testing.T) {
	data := []row{{"a": 1, "b": 5, "c": 2}, {"a": 4, "b": 1, "c": 3}, {"a": 2, "b": 2, "c": 6}}
	s := stack.New(stack.Config[row]{Order: stack.OrderInsideOut, Offset: stack.OffsetWiggle})
	first := s.Compute(data)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, s.Compute(data))
	}
}

func TestOrders(t *testing.T) {
	layers := func() []stack.Layer {
		return []stack.Layer{
			{{0, 3}, {0, 3}},
			{{0, 1}, {0, 1}},
			{{0, 0}, {0, 5}},
		}
	}
	assert.Equal(t, []int{0, 1, 2}, stack.OrderNone(layers()))
	assert.Equal(t, []int{2, 1, 0}, stack.OrderReverse(layers()))
	assert.Equal(t, []int{1, 2, 0}, stack.OrderAscending(layers()))
	assert.Equal(t, []int{0, 2, 1}, stack.OrderDescending(layers()))
	assert.Equal(t, []int{0, 1, 2}, stack.OrderAppearance(layers()))
	assert.Equal(t, []int{0, 1, 2}, stack.OrderInsideOut(layers()))
}

func TestOrderAffectsIndexNotSliceOrder(t *testing.T) {
	data := []row{{"a": 5, "b": 1}}
	series := stack.New(stack.Config[row]{Keys: []string{"a", "b"}, Order: stack.OrderAscending}).Compute(data)
	assert.Equal(t, "a", series[0].Key)
	assert.Equal(t, 1, series[0].Index)
	assert.Equal(t, 0, series[1].Index)
	assert.Equal(t, [][2]float64{{1, 6}}, pairs(series[0]))
	assert.Equal(t, [][2]float64{{0, 1}}, pairs(series[1]))
}

func TestOffsets(t *testing.T) {
	t.Run("expand", func(t *testing.T) {
		layers := []stack.Layer{{{0, 1}, {0, 0}}, {{0, 3}, {0, 0}}}
		stack.OffsetExpand(layers, []int{0, 1})
		assert.Equal(t, stack.Layer{{0, 0.25}, {0, 0}}, layers[0])
		assert.Equal(t, stack.Layer{{0.25, 1}, {0, 0}}, layers[1])
	})
	t.Run("diverging", func(t *testing.T) {
		layers := []stack.Layer{{{0, 2}}, {{0, -3}}, {{0, 1}}, {{0, 0}}}
		stack.OffsetDiverging(layers, []int{0, 1, 2, 3})
		assert.Equal(t, stack.Layer{{0, 2}}, layers[0])
		assert.Equal(t, stack.Layer{{-3, 0}}, layers[1])
		assert.Equal(t, stack.Layer{{2, 3}}, layers[2])
		assert.Equal(t, stack.Layer{{0, 0}}, layers[3])
	})
	t.Run("silhouette", func(t *testing.T) {
		layers := []stack.Layer{{{0, 2}}, {{0, 4}}}
		stack.OffsetSilhouette(layers, []int{0, 1})
		assert.Equal(t, stack.Layer{{-3, -1}}, layers[0])
		assert.Equal(t, stack.Layer{{-1, 3}}, layers[1])
	})
	t.Run("wiggle constant", func(t *testing.T) {
		layers := []stack.Layer{{{0, 1}, {0, 1}}, {{0, 1}, {0, 1}}}
		stack.OffsetWiggle(layers, []int{0, 1})
		assert.Equal(t, stack.Layer{{0, 1}, {0, 1}}, layers[0])
		assert.Equal(t, stack.Layer{{1, 2}, {1, 2}}, layers[1])
	})
	t.Run("none passes NaN baseline", func(t *testing.T) {
		layers := []stack.Layer{{{0, math.NaN()}}, {{0, 2}}}
		stack.OffsetNone(layers, []int{0, 1})
		assert.Equal(t, stack.Layer{{0, 2}}, layers[1])
	})
	t.Run("empty", func(t *testing.T) {
		for _, off := range []stack.Offset{stack.OffsetNone, stack.OffsetExpand, stack.OffsetDiverging, stack.OffsetSilhouette, stack.OffsetWiggle} {
			off(nil, nil)
		}
	})
}

func TestByName(t *testing.T) {
	for _, name := range append(stack.OrderNames(), "", "insideOut", "stackOrderAscending") {
		order, err := stack.OrderByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, order, name)
	}
	for _, name := range append(stack.OffsetNames(), "", "Silhouette", "stackOffsetExpand") {
		offset, err := stack.OffsetByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, offset, name)
	}

	_, err := stack.OrderByName("sideways")
	assert.True(t, errors.Is(err, stack.ErrUnknownOrder))
	_, err = stack.OffsetByName("sideways")
	assert.True(t, errors.Is(err, stack.ErrUnknownOffset))
}
