package stats

import (
	"reflect"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

// Sequence is an ordered sequence of sample elements resolved into nominal
// values and standard errors. Errors may return nil when no element carries
// an uncertainty.
type Sequence interface {
	Values() []float64
	Errors() []float64
}

// Floats is a sequence of plain numbers.
type Floats []float64

// Values returns the numbers.
func (f Floats) Values() []float64 { return f }

// Errors returns nil: plain numbers carry no uncertainty.
func (f Floats) Errors() []float64 { return nil }

func values(data Sequence) ([]float64, error) {
	if data == nil {
		return nil, errkind.Typef("expected a sequence of numbers, got nil")
	}
	if rv := reflect.ValueOf(data); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, errkind.Typef("expected a sequence of numbers, got a nil %T", data)
	}
	xs := data.Values()
	if len(xs) == 0 {
		return nil, errkind.Valuef("sequence must not be empty")
	}
	return xs, nil
}

func atLeast(data Sequence, n int, what string) ([]float64, error) {
	xs, err := values(data)
	if err != nil {
		return nil, err
	}
	if len(xs) < n {
		return nil, errkind.Valuef("%s requires at least %d elements, got %d", what, n, len(xs))
	}
	return xs, nil
}

func pair(x, y Sequence) ([]float64, []float64, error) {
	xs, err := values(x)
	if err != nil {
		return nil, nil, err
	}
	ys, err := values(y)
	if err != nil {
		return nil, nil, err
	}
	if len(xs) != len(ys) {
		return nil, nil, errkind.Valuef("sequences differ in length: %d and %d", len(xs), len(ys))
	}
	return xs, ys, nil
}

// constant reports whether all values are equal.
func constant(xs []float64) bool {
	for _, v := range xs[1:] {
		if v != xs[0] {
			return false
		}
	}
	return true
}
