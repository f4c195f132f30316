package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

// Mean returns the arithmetic mean of the nominal values.
func Mean(data Sequence) (float64, error) {
	xs, err := values(data)
	if err != nil {
		return 0, err
	}
	return stat.Mean(xs, nil), nil
}

// MeanSquares returns the mean of the squared nominal values.
func MeanSquares(data Sequence) (float64, error) {
	return Moment(data, 2, false)
}

// Moment returns the raw moment E[x^power], or the central moment
// E[(x-mean)^power] when central is true. Power must be >= 1.
func Moment(data Sequence, power int, central bool) (float64, error) {
	xs, err := values(data)
	if err != nil {
		return 0, err
	}
	if power < 1 {
		return 0, errkind.Valuef("moment order must be a positive integer, got %d", power)
	}
	if !central {
		sum := 0.0
		for _, x := range xs {
			sum += math.Pow(x, float64(power))
		}
		return sum / float64(len(xs)), nil
	}
	if power == 1 {
		return 0, nil
	}
	return stat.Moment(float64(power), xs, nil), nil
}

// Variance returns the population variance (divided by N).
func Variance(data Sequence) (float64, error) {
	xs, err := values(data)
	if err != nil {
		return 0, err
	}
	return stat.PopVariance(xs, nil), nil
}

// VarianceBessel returns the sample variance (divided by N-1).
func VarianceBessel(data Sequence) (float64, error) {
	xs, err := atLeast(data, 2, "Bessel-corrected variance")
	if err != nil {
		return 0, err
	}
	return stat.Variance(xs, nil), nil
}

// StandardDeviation returns the square root of the population variance.
func StandardDeviation(data Sequence) (float64, error) {
	v, err := Variance(data)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// StandardDeviationBessel returns the square root of the sample variance.
func StandardDeviationBessel(data Sequence) (float64, error) {
	v, err := VarianceBessel(data)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// StandardError returns the standard error of the mean estimated from the
// dispersion of the nominal values alone, sqrt(VarianceBessel / N).
func StandardError(data Sequence) (float64, error) {
	xs, err := atLeast(data, 2, "standard error")
	if err != nil {
		return 0, err
	}
	return stat.StdErr(stat.StdDev(xs, nil), float64(len(xs))), nil
}

// sumSquaredErrors returns the sum of squared standard errors.
func sumSquaredErrors(data Sequence, n int) (float64, error) {
	ses := data.Errors()
	if ses == nil {
		return 0, nil
	}
	if len(ses) != n {
		return 0, errkind.Valuef("%d standard errors for %d values", len(ses), n)
	}
	return floats.Dot(ses, ses), nil
}

// FullVariance returns the population variance of the nominal values plus
// the mean squared standard error of the elements.
func FullVariance(data Sequence) (float64, error) {
	xs, err := values(data)
	if err != nil {
		return 0, err
	}
	sse, err := sumSquaredErrors(data, len(xs))
	if err != nil {
		return 0, err
	}
	n := float64(len(xs))
	return stat.PopVariance(xs, nil) + sse/n, nil
}

// FullStandardError returns the standard error of the mean combining the
// dispersion of the nominal values with the propagated uncertainty of the
// elements: sqrt(SE² + Σse²/N²). It equals StandardError for plain data and
// is never below sqrt(Σse²)/N.
func FullStandardError(data Sequence) (float64, error) {
	se, err := StandardError(data)
	if err != nil {
		return 0, err
	}
	n := len(data.Values())
	sse, err := sumSquaredErrors(data, n)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(se*se + sse/float64(n*n)), nil
}

// Skewness returns the population skewness m3/m2^1.5.
func Skewness(data Sequence) (float64, error) {
	xs, err := values(data)
	if err != nil {
		return 0, err
	}
	if constant(xs) {
		return 0, errkind.Valuef("skewness is undefined for a constant sequence")
	}
	m2 := stat.PopVariance(xs, nil)
	return stat.Moment(3, xs, nil) / math.Pow(m2, 1.5), nil
}

// SkewnessBessel returns the bias-corrected skewness G1. Requires N >= 3.
func SkewnessBessel(data Sequence) (float64, error) {
	xs, err := atLeast(data, 3, "Bessel-corrected skewness")
	if err != nil {
		return 0, err
	}
	if constant(xs) {
		return 0, errkind.Valuef("skewness is undefined for a constant sequence")
	}
	return stat.Skew(xs, nil), nil
}

// Kurtosis returns the population excess kurtosis m4/m2² - 3.
func Kurtosis(data Sequence) (float64, error) {
	xs, err := values(data)
	if err != nil {
		return 0, err
	}
	if constant(xs) {
		return 0, errkind.Valuef("kurtosis is undefined for a constant sequence")
	}
	m2 := stat.PopVariance(xs, nil)
	return stat.Moment(4, xs, nil)/(m2*m2) - 3, nil
}

// KurtosisBessel returns the bias-corrected excess kurtosis G2. Requires
// N >= 4.
func KurtosisBessel(data Sequence) (float64, error) {
	xs, err := atLeast(data, 4, "Bessel-corrected kurtosis")
	if err != nil {
		return 0, err
	}
	if constant(xs) {
		return 0, errkind.Valuef("kurtosis is undefined for a constant sequence")
	}
	return stat.ExKurtosis(xs, nil), nil
}

// Covariance returns the population covariance of two sequences of equal
// length.
func Covariance(x, y Sequence) (float64, error) {
	return CrossMoment(x, y, 1, 1, true)
}

// CovarianceBessel returns the sample covariance (divided by N-1).
func CovarianceBessel(x, y Sequence) (float64, error) {
	xs, ys, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	if len(xs) < 2 {
		return 0, errkind.Valuef("Bessel-corrected covariance requires at least 2 pairs, got %d", len(xs))
	}
	return stat.Covariance(xs, ys, nil), nil
}

// PearsonR returns the Pearson linear correlation coefficient.
func PearsonR(x, y Sequence) (float64, error) {
	xs, ys, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	if constant(xs) || constant(ys) {
		return 0, errkind.Valuef("correlation is undefined for a constant sequence")
	}
	return stat.Correlation(xs, ys, nil), nil
}

// CrossMoment returns E[(x-meanX)^powerX (y-meanY)^powerY] when central is
// true, or E[x^powerX y^powerY] otherwise. Both powers must be >= 1.
func CrossMoment(x, y Sequence, powerX, powerY int, central bool) (float64, error) {
	xs, ys, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	if powerX < 1 || powerY < 1 {
		return 0, errkind.Valuef("moment orders must be positive integers, got %d and %d", powerX, powerY)
	}
	var mx, my float64
	if central {
		mx = stat.Mean(xs, nil)
		my = stat.Mean(ys, nil)
	}
	px, py := float64(powerX), float64(powerY)
	sum := 0.0
	for i := range xs {
		sum += math.Pow(xs[i]-mx, px) * math.Pow(ys[i]-my, py)
	}
	return sum / float64(len(xs)), nil
}
