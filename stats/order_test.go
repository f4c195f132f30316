package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

func TestQuartilesOddLength(t *testing.T) {
	data := Floats{5, 3, 1, 4, 2}

	q1, err := FirstQuartile(data)
	require.NoError(t, err)
	assert.Equal(t, 2.0, q1)

	q3, err := ThirdQuartile(data)
	require.NoError(t, err)
	assert.Equal(t, 4.0, q3)

	med, err := Median(data)
	require.NoError(t, err)
	assert.Equal(t, 3.0, med)
}

func TestQuartilesInterpolate(t *testing.T) {
	// N=4: Q1 at position 0.75, Q3 at 2.25
	data := Floats{10, 20, 30, 40}

	q1, err := FirstQuartile(data)
	require.NoError(t, err)
	assert.InDelta(t, 17.5, q1, 1e-12)

	q3, err := ThirdQuartile(data)
	require.NoError(t, err)
	assert.InDelta(t, 32.5, q3, 1e-12)

	med, err := Median(data)
	require.NoError(t, err)
	assert.Equal(t, 25.0, med)
}

func TestFixtureOrderStatistics(t *testing.T) {
	q1, err := FirstQuartile(fixture)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, q1, 1e-12)

	q3, err := ThirdQuartile(fixture)
	require.NoError(t, err)
	assert.InDelta(t, 2.3, q3, 1e-12)

	lo, err := Min(fixture)
	require.NoError(t, err)
	assert.Equal(t, -3.0, lo)

	hi, err := Max(fixture)
	require.NoError(t, err)
	assert.Equal(t, 4.0, hi)
}

func TestSortedVariants(t *testing.T) {
	sorted := []float64{-1, 0, 2, 7}

	lo, err := MinSorted(sorted)
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)

	hi, err := MaxSorted(sorted)
	require.NoError(t, err)
	assert.Equal(t, 7.0, hi)

	med, err := MedianSorted(sorted)
	require.NoError(t, err)
	assert.Equal(t, 1.0, med)

	q1, err := FirstQuartileSorted(sorted)
	require.NoError(t, err)
	assert.InDelta(t, -0.25, q1, 1e-12)

	q3, err := ThirdQuartileSorted(sorted)
	require.NoError(t, err)
	assert.InDelta(t, 3.25, q3, 1e-12)

	_, err = MinSorted(nil)
	assert.True(t, errkind.IsValue(err))
}

func TestQuantileErrors(t *testing.T) {
	_, err := FirstQuartile(Floats{1})
	assert.True(t, errkind.IsValue(err))

	med, err := Median(Floats{7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, med)

	for _, km := range [][2]int{{0, 4}, {4, 4}, {5, 4}, {-1, 3}} {
		_, err = Quantile(fixture, km[0], km[1])
		assert.True(t, errkind.IsValue(err), "%v", km)
	}

	decile, err := Quantile(Floats{0, 10}, 3, 10)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, decile, 1e-12)
}
