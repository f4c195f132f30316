package stats

import (
	"math"
	"testing"

	mstats "github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/measured"
	"github.com/FooBarShebang/statistics-lib-sub001/sample"
)

var fixture = Floats{1, 1.5, -0.5, 2.3, 1, 4, 2.3, -3, 2.4546, 2}

func mustSample(t *testing.T, items ...any) *sample.Sample {
	t.Helper()
	s, err := sample.New(items)
	require.NoError(t, err)
	return s
}

func TestFixtureMoments(t *testing.T) {
	mean, err := Mean(fixture)
	require.NoError(t, err)
	assert.InDelta(t, 1.30546, mean, 1e-12)

	v, err := Variance(fixture)
	require.NoError(t, err)
	assert.InDelta(t, 3.3062803, v, 1e-7)

	vb, err := VarianceBessel(fixture)
	require.NoError(t, err)
	assert.InDelta(t, 3.67364478, vb, 1e-8)

	sd, err := StandardDeviation(fixture)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(v), sd, 1e-15)

	sdb, err := StandardDeviationBessel(fixture)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(vb), sdb, 1e-15)

	se, err := StandardError(fixture)
	require.NoError(t, err)
	assert.InDelta(t, 0.606105995900607, se, 1e-12)

	g1, err := Skewness(fixture)
	require.NoError(t, err)
	assert.InDelta(t, -1.0373042436917574, g1, 1e-10)

	G1, err := SkewnessBessel(fixture)
	require.NoError(t, err)
	assert.InDelta(t, -1.2300915137341129, G1, 1e-10)

	g2, err := Kurtosis(fixture)
	require.NoError(t, err)
	assert.InDelta(t, 0.7589837958898817, g2, 1e-10)

	G2, err := KurtosisBessel(fixture)
	require.NoError(t, err)
	assert.InDelta(t, 2.3060606391624696, G2, 1e-10)
}

func TestAgainstMontanaflynn(t *testing.T) {
	data := mstats.Float64Data(fixture)

	want, err := mstats.PopulationVariance(data)
	require.NoError(t, err)
	got, err := Variance(fixture)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)

	want, err = mstats.SampleVariance(data)
	require.NoError(t, err)
	got, err = VarianceBessel(fixture)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)

	want, err = mstats.Median(data)
	require.NoError(t, err)
	got, err = Median(fixture)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestMoment(t *testing.T) {
	raw3, err := Moment(fixture, 3, false)
	require.NoError(t, err)
	assert.InDelta(t, 8.9373115123336, raw3, 1e-10)

	c3, err := Moment(fixture, 3, true)
	require.NoError(t, err)
	assert.InDelta(t, -6.236137174223808, c3, 1e-10)

	c1, err := Moment(fixture, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c1)

	ms, err := MeanSquares(Floats{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 14.0/3, ms, 1e-15)

	for _, power := range []int{0, -1} {
		_, err = Moment(fixture, power, true)
		assert.True(t, errkind.IsValue(err), "power %d", power)
	}
}

func TestIntegerInputGivesFloatRatios(t *testing.T) {
	mean, err := Mean(Floats(measured.Floats([]int{1, 2})))
	require.NoError(t, err)
	assert.Equal(t, 1.5, mean)
}

func TestEmptyAndShortInput(t *testing.T) {
	for name, fn := range map[string]func(Sequence) (float64, error){
		"Mean":              Mean,
		"MeanSquares":       MeanSquares,
		"Variance":          Variance,
		"VarianceBessel":    VarianceBessel,
		"StandardDeviation": StandardDeviation,
		"StandardError":     StandardError,
		"FullStandardError": FullStandardError,
		"FullVariance":      FullVariance,
		"Skewness":          Skewness,
		"Kurtosis":          Kurtosis,
		"Min":               Min,
		"Max":               Max,
		"Median":            Median,
		"FirstQuartile":     FirstQuartile,
	} {
		_, err := fn(Floats{})
		assert.True(t, errkind.IsValue(err), name)
		_, err = fn(nil)
		assert.True(t, errkind.IsType(err), name)
		_, err = fn((*sample.Sample)(nil))
		assert.True(t, errkind.IsType(err), name)
	}

	var nilSample *sample.Sample
	_, err := ACF(nilSample, 1)
	assert.True(t, errkind.IsType(err))
	_, err = PearsonR(fixture, nilSample)
	assert.True(t, errkind.IsType(err))

	_, err = VarianceBessel(Floats{1})
	assert.True(t, errkind.IsValue(err))
	_, err = SkewnessBessel(Floats{1, 2})
	assert.True(t, errkind.IsValue(err))
	_, err = KurtosisBessel(Floats{1, 2, 3})
	assert.True(t, errkind.IsValue(err))
}

func TestConstantSequence(t *testing.T) {
	c := Floats{2, 2, 2, 2, 2}
	v, err := Variance(c)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = Skewness(c)
	assert.True(t, errkind.IsValue(err))
	_, err = KurtosisBessel(c)
	assert.True(t, errkind.IsValue(err))
	_, err = PearsonR(c, fixture[:5])
	assert.True(t, errkind.IsValue(err))
}

func TestFullStandardError(t *testing.T) {
	plain := Floats{1, 2, 3, 4}
	se, err := StandardError(plain)
	require.NoError(t, err)
	full, err := FullStandardError(plain)
	require.NoError(t, err)
	assert.Equal(t, se, full)

	mixed := mustSample(t, 1, measured.Measurement{Value: 2, SE: 0.5}, 3, measured.Measurement{Value: 4, SE: 0.5})
	se, err = StandardError(mixed)
	require.NoError(t, err)
	full, err = FullStandardError(mixed)
	require.NoError(t, err)
	assert.Greater(t, full, se)
	assert.InDelta(t, math.Sqrt(se*se+0.5/16), full, 1e-15)

	// nearly identical nominal values: the propagated uncertainty dominates
	tight := mustSample(t,
		measured.Measurement{Value: 1, SE: 0.3},
		measured.Measurement{Value: 1 + 1e-9, SE: 0.3},
		measured.Measurement{Value: 1 - 1e-9, SE: 0.3},
	)
	full, err = FullStandardError(tight)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3*0.09)/3, full, 1e-8)
}

func TestFullVariance(t *testing.T) {
	mixed := mustSample(t, 1, measured.Measurement{Value: 3, SE: 1})
	v, err := Variance(mixed)
	require.NoError(t, err)
	full, err := FullVariance(mixed)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-15)
	assert.InDelta(t, 1.5, full, 1e-15)
}

func TestCovarianceAndCorrelation(t *testing.T) {
	x := Floats{1, 2, 3, 4, 5}
	y := Floats{2, 4, 6, 8, 10}

	cov, err := Covariance(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, cov, 1e-12)

	covb, err := CovarianceBessel(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, covb, 1e-12)

	r, err := PearsonR(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	want, err := mstats.Pearson(mstats.Float64Data(fixture[:5]), mstats.Float64Data(x))
	require.NoError(t, err)
	got, err := PearsonR(fixture[:5], x)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)

	_, err = Covariance(x, Floats{1, 2})
	assert.True(t, errkind.IsValue(err))
	_, err = PearsonR(Floats{}, Floats{})
	assert.True(t, errkind.IsValue(err))
	_, err = CovarianceBessel(Floats{1}, Floats{2})
	assert.True(t, errkind.IsValue(err))
}

func TestCrossMoment(t *testing.T) {
	x := Floats{1, 2, 3}
	y := Floats{1, 0, 2}

	raw, err := CrossMoment(x, y, 1, 2, false)
	require.NoError(t, err)
	assert.InDelta(t, (1.0+0+12)/3, raw, 1e-15)

	central, err := CrossMoment(x, y, 1, 1, true)
	require.NoError(t, err)
	cov, err := Covariance(x, y)
	require.NoError(t, err)
	assert.Equal(t, cov, central)

	// E[(x-mx)^2] equals the population variance
	xx, err := CrossMoment(x, x, 1, 1, true)
	require.NoError(t, err)
	v, err := Variance(x)
	require.NoError(t, err)
	assert.InDelta(t, v, xx, 1e-15)

	_, err = CrossMoment(x, y, 0, 1, true)
	assert.True(t, errkind.IsValue(err))
}
