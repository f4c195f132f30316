package sample

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/measured"
)

// Sample is a non-empty sequence of sample elements decomposed into nominal
// values and standard errors.
type Sample struct {
	Name   string
	values []float64
	errors []float64
	// flags marks elements entered as measurements; nil for plain samples.
	flags []bool
}

// New decomposes a sequence of plain numbers and measurements. A type error
// on any element is reported ahead of invalid values.
func New(items []any) (*Sample, error) {
	if len(items) == 0 {
		return nil, errkind.Valuef("sample must not be empty")
	}
	s := &Sample{
		values: make([]float64, len(items)),
		errors: make([]float64, len(items)),
	}
	var valueErr error
	for i, item := range items {
		v, se, err := measured.Split(item)
		if errkind.IsType(err) {
			return nil, errors.Wrapf(err, "sample element %d", i)
		}
		if err != nil {
			if valueErr == nil {
				valueErr = errors.Wrapf(err, "sample element %d", i)
			}
			continue
		}
		s.values[i] = v
		s.errors[i] = se
		if _, ok := item.(measured.Measured); ok {
			if s.flags == nil {
				s.flags = make([]bool, len(items))
			}
			s.flags[i] = true
		}
	}
	if valueErr != nil {
		return nil, valueErr
	}
	return s, nil
}

// FromFloats creates a sample of plain numbers.
func FromFloats(values []float64) (*Sample, error) {
	if len(values) == 0 {
		return nil, errkind.Valuef("sample must not be empty")
	}
	for i, v := range values {
		if err := measured.Check(v, 0); err != nil {
			return nil, errors.Wrapf(err, "sample element %d", i)
		}
	}
	return &Sample{
		values: slices.Clone(values),
		errors: make([]float64, len(values)),
	}, nil
}

// FromMeasurements creates a sample where every element carries an
// uncertainty.
func FromMeasurements(ms []measured.Measurement) (*Sample, error) {
	if len(ms) == 0 {
		return nil, errkind.Valuef("sample must not be empty")
	}
	s := &Sample{
		values: make([]float64, len(ms)),
		errors: make([]float64, len(ms)),
		flags:  make([]bool, len(ms)),
	}
	for i, m := range ms {
		if err := measured.Check(m.Value, m.SE); err != nil {
			return nil, errors.Wrapf(err, "sample element %d", i)
		}
		s.values[i] = m.Value
		s.errors[i] = m.SE
		s.flags[i] = true
	}
	return s, nil
}

// Len returns the number of elements.
func (s *Sample) Len() int {
	return len(s.values)
}

// Values returns the nominal values. The slice is shared and must not be
// modified.
func (s *Sample) Values() []float64 {
	return s.values
}

// Errors returns the standard errors. The slice is shared and must not be
// modified.
func (s *Sample) Errors() []float64 {
	return s.errors
}

// HasUncertainty reports whether any element was entered as a measurement.
func (s *Sample) HasUncertainty() bool {
	return s.flags != nil
}

// Elements reconstructs the elements as entered: float64 for plain numbers,
// measured.Measurement for measurements.
func (s *Sample) Elements() []any {
	out := make([]any, len(s.values))
	for i, v := range s.values {
		if s.flags != nil && s.flags[i] {
			out[i] = measured.Measurement{Value: v, SE: s.errors[i]}
		} else {
			out[i] = v
		}
	}
	return out
}

// Sorted returns an ascending copy of the nominal values.
func (s *Sample) Sorted() []float64 {
	sorted := slices.Clone(s.values)
	slices.Sort(sorted)
	return sorted
}

// Slice returns the elements from start to end (exclusive).
func (s *Sample) Slice(start, end int) (*Sample, error) {
	if start < 0 {
		start = 0
	}
	if end > len(s.values) {
		end = len(s.values)
	}
	if start >= end {
		return nil, errkind.Valuef("empty slice [%d:%d]", start, end)
	}
	return &Sample{
		Name:   s.Name,
		values: slices.Clone(s.values[start:end]),
		errors: slices.Clone(s.errors[start:end]),
		flags:  cloneFlags(s.flags, start, end),
	}, nil
}

// Copy creates a deep copy of the sample.
func (s *Sample) Copy() *Sample {
	return &Sample{
		Name:   s.Name,
		values: slices.Clone(s.values),
		errors: slices.Clone(s.errors),
		flags:  cloneFlags(s.flags, 0, len(s.values)),
	}
}

func cloneFlags(flags []bool, start, end int) []bool {
	if flags == nil {
		return nil
	}
	return slices.Clone(flags[start:end])
}
