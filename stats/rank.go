package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

// Ranks returns the 1-based ranks of values, giving tied values the mean of
// the ranks they span.
func Ranks(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case xs[a] < xs[b]:
			return -1
		case xs[a] > xs[b]:
			return 1
		}
		return 0
	})

	ranks := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i + 1
		for j < len(idx) && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		// positions i..j-1 share the average of ranks i+1..j
		r := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = r
		}
		i = j
	}
	return ranks
}

// SpearmanR returns Spearman's rank correlation: the Pearson correlation of
// the mid-ranks.
func SpearmanR(x, y Sequence) (float64, error) {
	xs, ys, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	if constant(xs) || constant(ys) {
		return 0, errkind.Valuef("rank correlation is undefined for a constant sequence")
	}
	return stat.Correlation(Ranks(xs), Ranks(ys), nil), nil
}

// KendallTau returns Kendall's tau-b rank correlation.
func KendallTau(x, y Sequence) (float64, error) {
	xs, ys, err := pair(x, y)
	if err != nil {
		return 0, err
	}
	var concordant, discordant, tiesX, tiesY float64
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			dx := sign(xs[i] - xs[j])
			dy := sign(ys[i] - ys[j])
			switch {
			case dx == 0 && dy == 0:
			case dx == 0:
				tiesX++
			case dy == 0:
				tiesY++
			case dx == dy:
				concordant++
			default:
				discordant++
			}
		}
	}
	den := math.Sqrt((concordant + discordant + tiesX) * (concordant + discordant + tiesY))
	if den == 0 {
		return 0, errkind.Valuef("rank correlation is undefined for a constant sequence")
	}
	return (concordant - discordant) / den, nil
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
