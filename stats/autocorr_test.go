package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

func TestACF(t *testing.T) {
	acf, err := ACF(Floats{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0.4, -0.1}, acf, 1e-12)

	// AR(1)-like process
	values := make(Floats, 100)
	for i := 1; i < len(values); i++ {
		values[i] = 0.8*values[i-1] + (float64(i%10)-5)/10
	}
	acf, err = ACF(values, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, acf[0], 1e-12)
	assert.Greater(t, acf[1], 0.5)
	for _, r := range acf {
		assert.LessOrEqual(t, math.Abs(r), 1.0)
	}

	_, err = ACF(Floats{1, 2, 3}, 3)
	assert.True(t, errkind.IsValue(err))
	_, err = ACF(Floats{1, 2, 3}, 0)
	assert.True(t, errkind.IsValue(err))
	_, err = ACF(Floats{2, 2, 2}, 1)
	assert.True(t, errkind.IsValue(err))
}

func TestPACF(t *testing.T) {
	pacf, err := PACF(Floats{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pacf[0], 0)
	assert.InDelta(t, 0.4, pacf[1], 1e-12)
	assert.InDelta(t, -0.26/0.84, pacf[2], 1e-12)

	values := make(Floats, 200)
	for i := 1; i < len(values); i++ {
		values[i] = 0.7*values[i-1] + (float64(i%7)-3)/10
	}
	acf, err := ACF(values, 5)
	require.NoError(t, err)
	pacf, err = PACF(values, 5)
	require.NoError(t, err)
	assert.InDelta(t, acf[1], pacf[1], 1e-12)
}

func TestDurbinWatson(t *testing.T) {
	dw, err := DurbinWatson(Floats{1, -1, 1, -1})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, dw, 1e-12)

	dw, err = DurbinWatson(Floats{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dw)

	_, err = DurbinWatson(Floats{0, 0, 0})
	assert.True(t, errkind.IsValue(err))
	_, err = DurbinWatson(Floats{1})
	assert.True(t, errkind.IsValue(err))
}
