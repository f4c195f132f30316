package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

func sortedCopy(data Sequence) ([]float64, error) {
	xs, err := values(data)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	return sorted, nil
}

func checkSorted(sorted []float64) error {
	if len(sorted) == 0 {
		return errkind.Valuef("sequence must not be empty")
	}
	return nil
}

// Min returns the smallest nominal value.
func Min(data Sequence) (float64, error) {
	xs, err := values(data)
	if err != nil {
		return 0, err
	}
	return floats.Min(xs), nil
}

// Max returns the largest nominal value.
func Max(data Sequence) (float64, error) {
	xs, err := values(data)
	if err != nil {
		return 0, err
	}
	return floats.Max(xs), nil
}

// Median returns the middle value, or the mean of the two central values for
// an even number of elements.
func Median(data Sequence) (float64, error) {
	sorted, err := sortedCopy(data)
	if err != nil {
		return 0, err
	}
	return MedianSorted(sorted)
}

// FirstQuartile returns the interpolated first quartile. Requires N >= 2.
func FirstQuartile(data Sequence) (float64, error) {
	return Quantile(data, 1, 4)
}

// ThirdQuartile returns the interpolated third quartile. Requires N >= 2.
func ThirdQuartile(data Sequence) (float64, error) {
	return Quantile(data, 3, 4)
}

// Quantile returns the k-th m-quantile at 0-based sorted position k(N-1)/m,
// interpolating linearly between neighbours. Requires 0 < k < m and N >= 2.
func Quantile(data Sequence, k, m int) (float64, error) {
	if _, err := values(data); err != nil {
		return 0, err
	}
	if k <= 0 || m <= k {
		return 0, errkind.Valuef("quantile requires 0 < k < m, got k=%d m=%d", k, m)
	}
	sorted, err := sortedCopy(data)
	if err != nil {
		return 0, err
	}
	return quantileSorted(sorted, k, m)
}

// MinSorted returns the first element of an ascending slice.
func MinSorted(sorted []float64) (float64, error) {
	if err := checkSorted(sorted); err != nil {
		return 0, err
	}
	return sorted[0], nil
}

// MaxSorted returns the last element of an ascending slice.
func MaxSorted(sorted []float64) (float64, error) {
	if err := checkSorted(sorted); err != nil {
		return 0, err
	}
	return sorted[len(sorted)-1], nil
}

// MedianSorted returns the median of an ascending slice.
func MedianSorted(sorted []float64) (float64, error) {
	if err := checkSorted(sorted); err != nil {
		return 0, err
	}
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// FirstQuartileSorted returns the first quartile of an ascending slice.
func FirstQuartileSorted(sorted []float64) (float64, error) {
	return QuantileSorted(sorted, 1, 4)
}

// ThirdQuartileSorted returns the third quartile of an ascending slice.
func ThirdQuartileSorted(sorted []float64) (float64, error) {
	return QuantileSorted(sorted, 3, 4)
}

// QuantileSorted is Quantile for an ascending slice.
func QuantileSorted(sorted []float64, k, m int) (float64, error) {
	if err := checkSorted(sorted); err != nil {
		return 0, err
	}
	if k <= 0 || m <= k {
		return 0, errkind.Valuef("quantile requires 0 < k < m, got k=%d m=%d", k, m)
	}
	return quantileSorted(sorted, k, m)
}

func quantileSorted(sorted []float64, k, m int) (float64, error) {
	n := len(sorted)
	if n < 2 {
		return 0, errkind.Valuef("quantiles require at least 2 elements, got %d", n)
	}
	pos := float64(k*(n-1)) / float64(m)
	lo := math.Floor(pos)
	i := int(lo)
	frac := pos - lo
	if frac == 0 {
		return sorted[i], nil
	}
	return sorted[i] + frac*(sorted[i+1]-sorted[i]), nil
}
