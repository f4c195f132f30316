package statistics

import (
	"github.com/cockroachdb/errors"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/stats"
)

// Statistics2D holds a paired sample and computes the joint statistics of
// its two components.
type Statistics2D struct {
	name string
	x, y *Statistics1D
}

// NewStatistics2D pairs two sequences of equal, non-zero length. Element
// types are checked before lengths.
func NewStatistics2D(x, y []any) (*Statistics2D, error) {
	sx, errX := NewStatistics1D(x)
	sy, errY := NewStatistics1D(y)
	if err := firstError(errX, errY); err != nil {
		return nil, err
	}
	return pairUp(sx, sy)
}

// FromSequences pairs two stats.Sequence values. Both are copied.
func FromSequences(x, y stats.Sequence) (*Statistics2D, error) {
	sx, errX := FromSequence(x)
	sy, errY := FromSequence(y)
	if err := firstError(errX, errY); err != nil {
		return nil, err
	}
	return pairUp(sx, sy)
}

// firstError picks the error to report for a pair of components: type
// errors first, then X before Y.
func firstError(errX, errY error) error {
	switch {
	case errkind.IsType(errX):
		return errors.Wrap(errX, "X")
	case errkind.IsType(errY):
		return errors.Wrap(errY, "Y")
	case errX != nil:
		return errors.Wrap(errX, "X")
	case errY != nil:
		return errors.Wrap(errY, "Y")
	}
	return nil
}

func pairUp(x, y *Statistics1D) (*Statistics2D, error) {
	if x.N() != y.N() {
		return nil, errkind.Valuef("paired sequences differ in length: %d and %d", x.N(), y.N())
	}
	x.SetName("X")
	y.SetName("Y")
	return &Statistics2D{x: x, y: y}, nil
}

// Name returns the display name.
func (s *Statistics2D) Name() string { return s.name }

// SetName changes the display name.
func (s *Statistics2D) SetName(name string) { s.name = name }

// X returns a copy of the first component.
func (s *Statistics2D) X() *Statistics1D { return s.x.clone() }

// Y returns a copy of the second component.
func (s *Statistics2D) Y() *Statistics1D { return s.y.clone() }

// N returns the number of pairs.
func (s *Statistics2D) N() int { return s.x.N() }

// Cov returns the population covariance of the nominal values.
func (s *Statistics2D) Cov() float64 { return orNaN(stats.Covariance(s.x.data, s.y.data)) }

// Pearson returns the linear correlation; NaN when a component is constant.
func (s *Statistics2D) Pearson() float64 { return orNaN(stats.PearsonR(s.x.data, s.y.data)) }

// Spearman returns the rank correlation; NaN when a component is constant.
func (s *Statistics2D) Spearman() float64 { return orNaN(stats.SpearmanR(s.x.data, s.y.data)) }

// Kendall returns Kendall's tau-b; NaN when a component is constant.
func (s *Statistics2D) Kendall() float64 { return orNaN(stats.KendallTau(s.x.data, s.y.data)) }

// Summary2D is a snapshot of the joint statistics plus both marginals.
type Summary2D struct {
	Name     string
	N        int
	Cov      float64
	Pearson  float64
	Spearman float64
	Kendall  float64
	X        Summary1D
	Y        Summary1D
}

// Summary computes every statistic at once.
func (s *Statistics2D) Summary() Summary2D {
	return Summary2D{
		Name:     s.name,
		N:        s.N(),
		Cov:      s.Cov(),
		Pearson:  s.Pearson(),
		Spearman: s.Spearman(),
		Kendall:  s.Kendall(),
		X:        s.x.Summary(),
		Y:        s.y.Summary(),
	}
}
