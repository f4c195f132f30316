package stattests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

func TestLjungBox(t *testing.T) {
	s := newSample(t, "ramp", []float64{1, 2, 3, 4, 5})
	r, err := LjungBox(s, 2, 0, DefaultConfig())
	require.NoError(t, err)

	q := 35 * (0.16/4 + 0.01/3)
	assert.InDelta(t, q, r.Statistic(), 1e-12)
	assert.InDelta(t, distuv.ChiSquared{K: 2}.Survival(q), r.PValue(), 1e-9)
	assert.Equal(t, "ChiSquared(Degree=2)", r.Model())
	assert.Equal(t, "Ljung-Box test (2 lags)", r.Test())
	_, hasLower := r.Lower()
	assert.False(t, hasLower)
	assert.False(t, r.IsRejected())

	alternating := make([]float64, 20)
	for i := range alternating {
		alternating[i] = float64(1 - 2*(i%2))
	}
	r, err = LjungBox(newSample(t, "alt", alternating), 5, 1, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "ChiSquared(Degree=4)", r.Model())
	assert.True(t, r.IsRejected())

	_, err = LjungBox(s, 5, 0, DefaultConfig())
	assert.True(t, errkind.IsValue(err))
	_, err = LjungBox(s, 2, -1, DefaultConfig())
	assert.True(t, errkind.IsValue(err))
}

func TestBoxPierce(t *testing.T) {
	s := newSample(t, "ramp", []float64{1, 2, 3, 4, 5})
	r, err := BoxPierce(s, 2, 5, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 0.85, r.Statistic(), 1e-12)
	// degrees of freedom never drop below 1
	assert.Equal(t, "ChiSquared(Degree=1)", r.Model())

	lb, err := LjungBox(s, 2, 5, DefaultConfig())
	require.NoError(t, err)
	assert.Greater(t, lb.Statistic(), r.Statistic())
}
