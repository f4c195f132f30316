package measured

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

// Measured is implemented by values carrying a nominal value and a standard
// error.
type Measured interface {
	Nominal() float64
	Uncertainty() float64
}

// Number is the set of plain numeric types accepted as sample elements.
type Number interface {
	constraints.Integer | constraints.Float
}

// Measurement is a nominal value with its standard error.
type Measurement struct {
	Value float64
	SE    float64
}

// New creates a measurement. The value must be finite, the standard error
// finite and >= 0.
func New(value, se float64) (Measurement, error) {
	if err := Check(value, se); err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: value, SE: se}, nil
}

// Check validates a nominal value and its standard error.
func Check(value, se float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errkind.Valuef("value must be finite, got %g", value)
	}
	if !(se >= 0) || math.IsInf(se, 1) {
		return errkind.Valuef("standard error must be finite and >= 0, got %g", se)
	}
	return nil
}

// Nominal returns the nominal value.
func (m Measurement) Nominal() float64 { return m.Value }

// Uncertainty returns the standard error.
func (m Measurement) Uncertainty() float64 { return m.SE }

func (m Measurement) String() string {
	return fmt.Sprintf("%g ± %g", m.Value, m.SE)
}

// Float converts a plain number of any integer or float kind to float64.
// Booleans, strings, measurements and everything else are rejected.
func Float(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case nil:
		return 0, errkind.Typef("expected a real number, got nil")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, errkind.Typef("expected a real number, got %T", v)
}

// Int converts an integral number to int. Floats are accepted only when they
// hold an integral value; integral values outside the int range are invalid
// values.
func Int(v any) (int, error) {
	f, err := Float(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errkind.Typef("expected an integer, got %v", v)
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, errkind.Valuef("%g overflows int", f)
	}
	return int(f), nil
}

// Split returns the nominal value and standard error of a sample element.
// NaN and infinite values are rejected like in New.
func Split(v any) (value, se float64, err error) {
	if m, ok := v.(Measured); ok {
		if p, isPtr := v.(*Measurement); isPtr && p == nil {
			return 0, 0, errkind.Typef("nil measurement")
		}
		value, se = m.Nominal(), m.Uncertainty()
	} else {
		value, err = Float(v)
		if err != nil {
			return 0, 0, errkind.Typef("expected a real number or a measurement, got %T", v)
		}
	}
	if err := Check(value, se); err != nil {
		return 0, 0, err
	}
	return value, se, nil
}

// Floats converts a slice of plain numbers to float64.
func Floats[T Number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// Elements boxes a slice of plain numbers as sample elements.
func Elements[T Number](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
