package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/measured"
)

func TestNew(t *testing.T) {
	s, err := New([]any{1, 2.5, measured.Measurement{Value: 3, SE: 0.5}, uint8(4)})
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []float64{1, 2.5, 3, 4}, s.Values())
	assert.Equal(t, []float64{0, 0, 0.5, 0}, s.Errors())
	assert.True(t, s.HasUncertainty())
	assert.Equal(t, []any{1.0, 2.5, measured.Measurement{Value: 3, SE: 0.5}, 4.0}, s.Elements())
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errkind.IsValue(err))

	_, err = New([]any{1, "2", 3})
	assert.True(t, errkind.IsType(err))
	assert.Contains(t, err.Error(), "element 1")

	_, err = FromFloats([]float64{})
	assert.True(t, errkind.IsValue(err))

	_, err = FromMeasurements([]measured.Measurement{{Value: 1, SE: -1}})
	assert.True(t, errkind.IsValue(err))

	_, err = New([]any{1, math.NaN(), 3})
	require.True(t, errkind.IsValue(err))
	assert.Contains(t, err.Error(), "element 1")
	_, err = New([]any{math.Inf(1), 2, struct{}{}})
	require.True(t, errkind.IsType(err))
	assert.Contains(t, err.Error(), "element 2")
	_, err = FromFloats([]float64{1, math.Inf(-1)})
	assert.True(t, errkind.IsValue(err))
	_, err = FromMeasurements([]measured.Measurement{{Value: math.NaN(), SE: 1}})
	assert.True(t, errkind.IsValue(err))
}

func TestFromFloatsCopiesInput(t *testing.T) {
	in := []float64{3, 1, 2}
	s, err := FromFloats(in)
	require.NoError(t, err)
	in[0] = 100

	assert.Equal(t, []float64{3, 1, 2}, s.Values())
	assert.Equal(t, []float64{1, 2, 3}, s.Sorted())
	assert.False(t, s.HasUncertainty())
}

func TestSliceAndCopy(t *testing.T) {
	s, err := FromMeasurements([]measured.Measurement{{Value: 1, SE: 0.1}, {Value: 2, SE: 0.2}, {Value: 3, SE: 0.3}})
	require.NoError(t, err)
	s.Name = "m"

	sub, err := s.Slice(1, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, sub.Values())
	assert.Equal(t, []float64{0.2, 0.3}, sub.Errors())
	assert.Equal(t, "m", sub.Name)

	_, err = s.Slice(2, 2)
	assert.True(t, errkind.IsValue(err))

	c := s.Copy()
	c.Values()[0] = 42
	assert.Equal(t, 1.0, s.Values()[0])
}
