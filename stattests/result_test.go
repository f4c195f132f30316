package stattests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

func TestNewTestResultValidation(t *testing.T) {
	_, err := NewTestResult("t", "d", "m", 1, 0.5, Bounds{})
	assert.True(t, errkind.IsValue(err))

	_, err = NewTestResult("t", "d", "m", 1, 0.5, Between(2, 1))
	assert.True(t, errkind.IsValue(err))

	_, err = NewTestResult("t", "d", "m", 1, 1.5, UpperBound(2))
	assert.True(t, errkind.IsValue(err))
}

func TestIsRejected(t *testing.T) {
	cases := []struct {
		name      string
		statistic float64
		cdf       float64
		bounds    Bounds
		rejected  bool
		pValue    float64
	}{
		{"inside two-sided", 0.5, 0.6, Between(-1, 1), false, 0.8},
		{"above two-sided", 1.5, 0.99, Between(-1, 1), true, 0.02},
		{"below two-sided", -1.5, 0.01, Between(-1, 1), true, 0.02},
		{"upper only", 3, 0.97, UpperBound(2), true, 0.03},
		{"upper only accept", 1, 0.6, UpperBound(2), false, 0.4},
		{"lower only", -3, 0.02, LowerBound(-2), true, 0.02},
		{"on the bound", 2, 0.95, UpperBound(2), false, 0.05},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewTestResult("test", "data", "model", tc.statistic, tc.cdf, tc.bounds)
			require.NoError(t, err)
			assert.Equal(t, tc.rejected, r.IsRejected())
			assert.InDelta(t, tc.pValue, r.PValue(), 1e-12)
		})
	}
}

func TestBoundsAreCopied(t *testing.T) {
	lo, hi := -1.0, 1.0
	r, err := NewTestResult("test", "data", "model", 0, 0.5, Bounds{Lower: &lo, Upper: &hi})
	require.NoError(t, err)
	hi = -5
	v, ok := r.Upper()
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
	assert.False(t, r.IsRejected())
}

func TestReport(t *testing.T) {
	r, err := NewTestResult("Z-test", "batch 3", "Z()", 2.5, 0.99379, UpperBound(1.645))
	require.NoError(t, err)
	report := r.String()
	assert.Contains(t, report, "Test:       Z-test")
	assert.Contains(t, report, "Data:       batch 3")
	assert.Contains(t, report, "Accept:     [-inf, 1.645]")
	assert.Contains(t, report, "null hypothesis rejected")
	assert.Equal(t, report, r.Report())
}

func TestConfig(t *testing.T) {
	assert.Equal(t, 0.95, DefaultConfig().ConfidenceLevel)
	require.NoError(t, DefaultConfig().Validate())
	for _, level := range []float64{0, 1, -0.1, 1.2} {
		assert.True(t, errkind.IsValue(Config{ConfidenceLevel: level}.Validate()), "%g", level)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"two-sided": TwoSided, "Greater": Greater, " less ": Less} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEqual(t, "unknown", got.String())
	}
	_, err := ParseMode("sideways")
	assert.True(t, errkind.IsValue(err))
}
