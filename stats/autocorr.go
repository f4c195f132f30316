package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

func checkLag(xs []float64, maxLag int) error {
	if maxLag < 1 || maxLag >= len(xs) {
		return errkind.Valuef("lag must be in [1, %d], got %d", len(xs)-1, maxLag)
	}
	if constant(xs) {
		return errkind.Valuef("autocorrelation is undefined for a constant sequence")
	}
	return nil
}

// ACF returns the autocorrelation of the nominal values for lags 0 to
// maxLag. Element k is Σ(x[i]-x̄)(x[i-k]-x̄) / Σ(x[i]-x̄)², so element 0
// is 1. Requires 1 <= maxLag < N.
func ACF(data Sequence, maxLag int) ([]float64, error) {
	xs, err := values(data)
	if err != nil {
		return nil, err
	}
	if err := checkLag(xs, maxLag); err != nil {
		return nil, err
	}

	n := len(xs)
	mean := stat.Mean(xs, nil)
	denom := stat.PopVariance(xs, nil) * float64(n)
	acf := make([]float64, maxLag+1)
	for k := range acf {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (xs[i] - mean) * (xs[i-k] - mean)
		}
		acf[k] = sum / denom
	}
	return acf, nil
}

// PACF returns the partial autocorrelation for lags 0 to maxLag using the
// Durbin-Levinson recursion. Element 0 is 1.
func PACF(data Sequence, maxLag int) ([]float64, error) {
	acf, err := ACF(data, maxLag)
	if err != nil {
		return nil, err
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1
	pacf[1] = acf[1]
	prev := []float64{acf[1]}
	for k := 2; k <= maxLag; k++ {
		num, den := acf[k], 1.0
		for j := 1; j < k; j++ {
			num -= prev[j-1] * acf[k-j]
			den -= prev[j-1] * acf[j]
		}
		if den == 0 {
			// the recursion cannot continue past a perfect fit
			break
		}
		phi := num / den
		next := make([]float64, k)
		for j := 1; j < k; j++ {
			next[j-1] = prev[j-1] - phi*prev[k-j-1]
		}
		next[k-1] = phi
		pacf[k] = phi
		prev = next
	}
	return pacf, nil
}

// DurbinWatson returns Σ(x[i]-x[i-1])² / Σx[i]² for a sequence of
// residuals. Values near 2 indicate no first-order autocorrelation.
func DurbinWatson(data Sequence) (float64, error) {
	xs, err := atLeast(data, 2, "Durbin-Watson statistic")
	if err != nil {
		return 0, err
	}
	num, den := 0.0, 0.0
	for i, x := range xs {
		den += x * x
		if i > 0 {
			d := x - xs[i-1]
			num += d * d
		}
	}
	if den == 0 {
		return 0, errkind.Valuef("Durbin-Watson statistic is undefined for all-zero residuals")
	}
	return num / den, nil
}
