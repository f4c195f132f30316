package statistics

import (
	"math"
	"slices"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/measured"
	"github.com/FooBarShebang/statistics-lib-sub001/sample"
	"github.com/FooBarShebang/statistics-lib-sub001/stats"
)

// Statistics1D holds a sample of plain numbers and measurements and
// computes its descriptive statistics on demand.
type Statistics1D struct {
	data   *sample.Sample
	sorted []float64
}

// HistogramBin is one bin of a frequency histogram.
type HistogramBin struct {
	Center float64
	Count  int
}

// NewStatistics1D creates the aggregate from a sequence of real numbers and
// measured.Measured values.
func NewStatistics1D(items []any) (*Statistics1D, error) {
	data, err := sample.New(items)
	if err != nil {
		return nil, err
	}
	return &Statistics1D{data: data}, nil
}

// FromSequence creates the aggregate from any stats.Sequence. The sequence
// is copied.
func FromSequence(seq stats.Sequence) (*Statistics1D, error) {
	data, err := toSample(seq)
	if err != nil {
		return nil, err
	}
	return &Statistics1D{data: data}, nil
}

func toSample(seq stats.Sequence) (*sample.Sample, error) {
	if s, ok := seq.(*sample.Sample); ok {
		if s == nil {
			return nil, errkind.Typef("expected a sequence, got a nil sample")
		}
		return s.Copy(), nil
	}
	if seq == nil {
		return nil, errkind.Typef("expected a sequence, got nil")
	}
	values := seq.Values()
	ses := seq.Errors()
	if ses == nil {
		return sample.FromFloats(values)
	}
	if len(ses) != len(values) {
		return nil, errkind.Valuef("%d standard errors for %d values", len(ses), len(values))
	}
	ms := make([]measured.Measurement, len(values))
	for i := range values {
		ms[i] = measured.Measurement{Value: values[i], SE: ses[i]}
	}
	return sample.FromMeasurements(ms)
}

// orNaN maps an undefined statistic to NaN.
func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

func (s *Statistics1D) sortedValues() []float64 {
	if s.sorted == nil {
		s.sorted = s.data.Sorted()
	}
	return s.sorted
}

// Name returns the display name.
func (s *Statistics1D) Name() string { return s.data.Name }

// SetName changes the display name.
func (s *Statistics1D) SetName(name string) { s.data.Name = name }

// N returns the number of elements.
func (s *Statistics1D) N() int { return s.data.Len() }

// Values returns a copy of the nominal values.
func (s *Statistics1D) Values() []float64 { return slices.Clone(s.data.Values()) }

// Errors returns a copy of the standard errors, 0 for plain numbers.
func (s *Statistics1D) Errors() []float64 { return slices.Clone(s.data.Errors()) }

// Data returns a copy of the elements as entered.
func (s *Statistics1D) Data() []any { return s.data.Elements() }

func (s *Statistics1D) Mean() float64   { return orNaN(stats.Mean(s.data)) }
func (s *Statistics1D) Median() float64 { return orNaN(stats.MedianSorted(s.sortedValues())) }
func (s *Statistics1D) Q1() float64     { return orNaN(stats.FirstQuartileSorted(s.sortedValues())) }
func (s *Statistics1D) Q3() float64     { return orNaN(stats.ThirdQuartileSorted(s.sortedValues())) }
func (s *Statistics1D) Min() float64    { return orNaN(stats.MinSorted(s.sortedValues())) }
func (s *Statistics1D) Max() float64    { return orNaN(stats.MaxSorted(s.sortedValues())) }

// Var returns the population variance of the nominal values.
func (s *Statistics1D) Var() float64 { return orNaN(stats.Variance(s.data)) }

// FullVar adds the mean squared standard error to Var.
func (s *Statistics1D) FullVar() float64 { return orNaN(stats.FullVariance(s.data)) }

func (s *Statistics1D) Sigma() float64     { return math.Sqrt(s.Var()) }
func (s *Statistics1D) FullSigma() float64 { return math.Sqrt(s.FullVar()) }

// SE returns the standard error of the mean; NaN for a single element.
func (s *Statistics1D) SE() float64 { return orNaN(stats.StandardError(s.data)) }

// FullSE returns the standard error of the mean including the propagated
// uncertainty of the elements; NaN for a single element.
func (s *Statistics1D) FullSE() float64 { return orNaN(stats.FullStandardError(s.data)) }

// Skew returns the population skewness; NaN for a constant sample.
func (s *Statistics1D) Skew() float64 { return orNaN(stats.Skewness(s.data)) }

// Kurt returns the population excess kurtosis; NaN for a constant sample.
func (s *Statistics1D) Kurt() float64 { return orNaN(stats.Kurtosis(s.data)) }

// Quantile returns the k-th m-quantile of the nominal values.
func (s *Statistics1D) Quantile(k, m int) (float64, error) {
	return stats.QuantileSorted(s.sortedValues(), k, m)
}

// Histogram counts the nominal values in nBins equal bins spanning
// [Min, Max]. Bins are closed on the left; the last one is also closed on
// the right, so every element is counted.
func (s *Statistics1D) Histogram(nBins int) ([]HistogramBin, error) {
	if nBins < 1 {
		return nil, errkind.Valuef("number of bins must be positive, got %d", nBins)
	}
	lo, hi := s.Min(), s.Max()
	if lo == hi {
		return nil, errkind.Valuef("histogram of a constant sample has an empty range [%g, %g]", lo, hi)
	}
	width := (hi - lo) / float64(nBins)
	if math.IsInf(width, 0) {
		return nil, errkind.Valuef("histogram range [%g, %g] overflows float64", lo, hi)
	}
	bins := make([]HistogramBin, nBins)
	for i := range bins {
		bins[i].Center = lo + (float64(i)+0.5)*width
	}
	for _, v := range s.data.Values() {
		i := int((v - lo) / width)
		if i >= nBins {
			i = nBins - 1
		}
		bins[i].Count++
	}
	return bins, nil
}

// Summary1D is a snapshot of every statistic of a Statistics1D.
type Summary1D struct {
	Name      string
	N         int
	Mean      float64
	Median    float64
	Q1        float64
	Q3        float64
	Min       float64
	Max       float64
	Var       float64
	FullVar   float64
	Sigma     float64
	FullSigma float64
	SE        float64
	FullSE    float64
	Skew      float64
	Kurt      float64
}

// Summary computes every statistic at once.
func (s *Statistics1D) Summary() Summary1D {
	return Summary1D{
		Name:      s.Name(),
		N:         s.N(),
		Mean:      s.Mean(),
		Median:    s.Median(),
		Q1:        s.Q1(),
		Q3:        s.Q3(),
		Min:       s.Min(),
		Max:       s.Max(),
		Var:       s.Var(),
		FullVar:   s.FullVar(),
		Sigma:     s.Sigma(),
		FullSigma: s.FullSigma(),
		SE:        s.SE(),
		FullSE:    s.FullSE(),
		Skew:      s.Skew(),
		Kurt:      s.Kurt(),
	}
}

func (s *Statistics1D) clone() *Statistics1D {
	return &Statistics1D{data: s.data.Copy(), sorted: s.sorted}
}
