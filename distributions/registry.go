package distributions

import (
	"slices"
	"strings"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

type family struct {
	specs []paramSpec
	build func(v []float64) (Distribution, error)
}

var families = map[string]family{
	"gaussian": {gaussianSpecs, func(v []float64) (Distribution, error) { return wrap(NewGaussian(v[0], v[1])) }},
	"z":        {nil, func([]float64) (Distribution, error) { return NewZ(), nil }},
	"inversegaussian": {inverseGaussianSpecs, func(v []float64) (Distribution, error) {
		return wrap(NewInverseGaussian(v[0], v[1]))
	}},
	"inversegamma": {inverseGammaSpecs, func(v []float64) (Distribution, error) {
		return wrap(NewInverseGamma(v[0], v[1]))
	}},
	"inversechisquared": {degreeSpecs, func(v []float64) (Distribution, error) {
		return wrap(NewInverseChiSquared(int(v[0])))
	}},
	"scaledinversechisquared": {scaledDegreeSpecs, func(v []float64) (Distribution, error) {
		return wrap(NewScaledInverseChiSquared(int(v[0]), v[1]))
	}},
	"cauchy":      {locationScaleSpecs, func(v []float64) (Distribution, error) { return wrap(NewCauchy(v[0], v[1])) }},
	"levy":        {locationScaleSpecs, func(v []float64) (Distribution, error) { return wrap(NewLevy(v[0], v[1])) }},
	"chisquared":  {degreeSpecs, func(v []float64) (Distribution, error) { return wrap(NewChiSquared(int(v[0]))) }},
	"studentt":    {degreeSpecs, func(v []float64) (Distribution, error) { return wrap(NewStudentT(int(v[0]))) }},
	"f":           {fSpecs, func(v []float64) (Distribution, error) { return wrap(NewF(int(v[0]), int(v[1]))) }},
	"exponential": {exponentialSpecs, func(v []float64) (Distribution, error) { return wrap(NewExponential(v[0])) }},
	"gamma":       {gammaSpecs, func(v []float64) (Distribution, error) { return wrap(NewGamma(v[0], v[1])) }},
	"poisson":     {poissonSpecs, func(v []float64) (Distribution, error) { return wrap(NewPoisson(v[0])) }},
	"binomial": {binomialSpecs, func(v []float64) (Distribution, error) {
		return wrap(NewBinomial(v[0], int(v[1])))
	}},
	"geometric": {geometricSpecs, func(v []float64) (Distribution, error) { return wrap(NewGeometric(v[0])) }},
}

func wrap[T Distribution](d T, err error) (Distribution, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}

var aliases = map[string]string{
	"normal": "gaussian",
	"wald":   "inversegaussian",
	"t":      "studentt",
	"chi2":   "chisquared",
}

func normalizeFamily(name string) string {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return key
}

// Families returns the registered family names accepted by New.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New creates a distribution by family name from loosely typed parameters
// given in constructor order. Every argument is type checked before any
// domain check runs, so a non-numeric argument always reports
// errkind.ErrInvalidType.
func New(name string, args ...any) (Distribution, error) {
	f, ok := families[normalizeFamily(name)]
	if !ok {
		return nil, errkind.Valuef("unknown distribution family %q", name)
	}
	if len(args) != len(f.specs) {
		return nil, errkind.Valuef("%s takes %d parameters, got %d", name, len(f.specs), len(args))
	}
	values := make([]float64, len(args))
	for i, spec := range f.specs {
		v, err := spec.coerce(args[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	for i, spec := range f.specs {
		if err := spec.check(values[i]); err != nil {
			return nil, err
		}
	}
	return f.build(values)
}
