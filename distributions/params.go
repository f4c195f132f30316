package distributions

import (
	"math"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/measured"
)

// paramSpec describes one named parameter and its domain.
type paramSpec struct {
	name    string
	domain  string
	integer bool
	valid   func(float64) bool
}

func finite(v float64) bool   { return !math.IsNaN(v) && !math.IsInf(v, 0) }
func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }
func unitOpen(v float64) bool { return v > 0 && v < 1 }
func atLeastOne(v float64) bool {
	return v >= 1 && v < math.MaxInt
}

func realParam(name string) paramSpec {
	return paramSpec{name: name, domain: "a finite real number", valid: finite}
}

func positiveParam(name string) paramSpec {
	return paramSpec{name: name, domain: "> 0", valid: positive}
}

func probabilityParam(name string) paramSpec {
	return paramSpec{name: name, domain: "in (0, 1)", valid: unitOpen}
}

func countParam(name string) paramSpec {
	return paramSpec{name: name, domain: "a positive integer", integer: true, valid: atLeastOne}
}

// coerce converts a loosely typed value, failing with an invalid-type error.
func (s paramSpec) coerce(v any) (float64, error) {
	if s.integer {
		n, err := measured.Int(v)
		if errkind.IsValue(err) {
			// out of the int range; check reports it once every type is known good
			return measured.Float(v)
		}
		if err != nil {
			return 0, errkind.Typef("parameter %s must be an integer, got %T (%v)", s.name, v, v)
		}
		return float64(n), nil
	}
	f, err := measured.Float(v)
	if err != nil {
		return 0, errkind.Typef("parameter %s must be a real number, got %T", s.name, v)
	}
	return f, nil
}

// check validates the domain of an already converted value.
func (s paramSpec) check(v float64) error {
	if s.integer && v != math.Trunc(v) {
		return errkind.Typef("parameter %s must be an integer, got %g", s.name, v)
	}
	if !s.valid(v) {
		return errkind.Valuef("parameter %s must be %s, got %g", s.name, s.domain, v)
	}
	return nil
}
