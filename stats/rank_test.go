package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

func TestRanks(t *testing.T) {
	assert.Equal(t, []float64{3, 1, 2}, Ranks([]float64{30, 10, 20}))
	assert.Equal(t, []float64{1, 2.5, 2.5, 4}, Ranks([]float64{1, 5, 5, 9}))
	assert.Equal(t, []float64{2, 2, 2}, Ranks([]float64{4, 4, 4}))
}

func TestSpearmanAndKendall(t *testing.T) {
	x := Floats{1, 2, 3, 4, 5}
	y := Floats{2, 1, 4, 3, 5}

	rho, err := SpearmanR(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, rho, 1e-12)

	tau, err := KendallTau(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, tau, 1e-12)

	// monotone but nonlinear relation is a perfect rank correlation
	z := Floats{1, 8, 27, 64, 125}
	rho, err = SpearmanR(x, z)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rho, 1e-12)
	tau, err = KendallTau(x, Floats{5, 4, 3, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, tau, 1e-12)
}

func TestKendallTies(t *testing.T) {
	// tau-b with ties: C=4 D=0 Tx=1 Ty=1
	x := Floats{1, 1, 2, 3}
	y := Floats{1, 2, 3, 3}
	tau, err := KendallTau(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/5, tau, 1e-12)

	_, err = KendallTau(Floats{1, 1}, Floats{1, 2})
	assert.True(t, errkind.IsValue(err))
	_, err = SpearmanR(Floats{1, 2}, Floats{1})
	assert.True(t, errkind.IsValue(err))
}
