package distributions

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

// ErrNotConverged marks a numeric inversion that ran out of iterations. It
// is also an errkind.ErrInvalidValue.
var ErrNotConverged = errors.New("numeric inversion did not converge")

// InversionConfig holds the settings of the generic quantile inversion.
type InversionConfig struct {
	AbsTolerance   float64 `yaml:"abs_tolerance"`   // Absolute tolerance on x (default: 1e-12)
	RelTolerance   float64 `yaml:"rel_tolerance"`   // Relative tolerance on x (default: 1e-12)
	MaxIterations  int     `yaml:"max_iterations"`  // Newton/bisection iteration cap (default: 1000)
	MaxExpansions  int     `yaml:"max_expansions"`  // Bracket expansion cap (default: 256)
	InitialWidth   float64 `yaml:"initial_width"`   // First bracket width for unbounded supports (default: 1)
	GrowthFactor   float64 `yaml:"growth_factor"`   // Geometric bracket growth (default: 2)
	DiscreteSearch int     `yaml:"discrete_search"` // Integer search cap for discrete families (default: 4096)
}

// DefaultInversionConfig returns the default inversion settings.
func DefaultInversionConfig() InversionConfig {
	return InversionConfig{
		AbsTolerance:   1e-12,
		RelTolerance:   1e-12,
		MaxIterations:  1000,
		MaxExpansions:  256,
		InitialWidth:   1,
		GrowthFactor:   2,
		DiscreteSearch: 4096,
	}
}

// Validate checks that every setting is usable.
func (c InversionConfig) Validate() error {
	switch {
	case !(c.AbsTolerance >= 0) || !(c.RelTolerance >= 0) || c.AbsTolerance+c.RelTolerance == 0:
		return errkind.Valuef("inversion tolerances must be >= 0 and not both 0")
	case c.MaxIterations < 1 || c.MaxExpansions < 1 || c.DiscreteSearch < 1:
		return errkind.Valuef("inversion iteration caps must be positive")
	case !(c.InitialWidth > 0):
		return errkind.Valuef("initial bracket width must be > 0, got %g", c.InitialWidth)
	case !(c.GrowthFactor > 1):
		return errkind.Valuef("bracket growth factor must be > 1, got %g", c.GrowthFactor)
	}
	return nil
}

var defaultInversion = DefaultInversionConfig()

// SetDefaultInversionConfig changes the settings given to instances created
// afterwards.
func SetDefaultInversionConfig(cfg InversionConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	defaultInversion = cfg
	return nil
}

func notConverged(format string, args ...interface{}) error {
	return errors.Mark(errkind.Valuef(format, args...), ErrNotConverged)
}

// bracket returns a and b with Cdf(a) <= p <= Cdf(b). Finite support
// bounds are used as they are; unbounded sides move outwards by a width that
// grows geometrically.
func bracket(d Distribution, cfg InversionConfig, p float64) (float64, float64, error) {
	lo, hi := d.Min(), d.Max()
	loInf, hiInf := math.IsInf(lo, -1), math.IsInf(hi, 1)
	if !loInf && !hiInf {
		return lo, hi, nil
	}

	width := cfg.InitialWidth
	a, b := lo, hi
	switch {
	case loInf && hiInf:
		a, b = -width, width
	case loInf:
		a = hi - width
	default:
		b = lo + width
	}

	for i := 0; ; i++ {
		aOK := !loInf || d.Cdf(a) <= p
		bOK := !hiInf || d.Cdf(b) >= p
		if aOK && bOK {
			if i > 0 {
				logger.Debug("bracket expanded",
					zap.String("distribution", d.Name()),
					zap.Float64("p", p),
					zap.Int("expansions", i),
					zap.Float64("a", a),
					zap.Float64("b", b))
			}
			return a, b, nil
		}
		if i == cfg.MaxExpansions {
			break
		}
		width *= cfg.GrowthFactor
		if !aOK {
			// the root lies left of a
			a, b = a-width, a
		} else {
			a, b = b, b+width
		}
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			break
		}
	}
	logger.Debug("bracket not found", zap.String("distribution", d.Name()), zap.Float64("p", p))
	return 0, 0, notConverged("%s: no bracket found for p=%g", d.Name(), p)
}

// invertContinuous solves Cdf(x) = p with a Newton step safeguarded by
// bisection.
func invertContinuous(d Continuous, name string, cfg InversionConfig, p float64) (float64, error) {
	a, b, err := bracket(d, cfg, p)
	if err != nil {
		return 0, err
	}

	x := a + (b-a)/2
	for i := 0; i < cfg.MaxIterations; i++ {
		f := d.Cdf(x) - p
		if f == 0 {
			return x, nil
		}
		if f < 0 {
			a = x
		} else {
			b = x
		}
		tol := cfg.AbsTolerance + cfg.RelTolerance*math.Abs(x)
		if b-a <= tol {
			return a + (b-a)/2, nil
		}

		next := a + (b-a)/2
		if dens := d.Pdf(x); dens > 0 && !math.IsInf(dens, 0) {
			if n := x - f/dens; n > a && n < b {
				next = n
			}
		}
		if math.Abs(next-x) <= tol {
			return next, nil
		}
		x = next
	}
	logger.Debug("inversion did not converge",
		zap.String("distribution", name),
		zap.Float64("p", p),
		zap.Float64("a", a),
		zap.Float64("b", b))
	return 0, notConverged("%s: inversion for p=%g did not converge in %d iterations", name, p, cfg.MaxIterations)
}

// invertDiscrete returns the smallest integer k in the support with
// Cdf(k) >= p.
func invertDiscrete(d Discrete, name string, cfg InversionConfig, p float64) (float64, error) {
	lo, hi := d.Min(), d.Max()
	if math.IsInf(hi, 1) {
		step := 1.0
		hi = lo + step
		for i := 0; d.Cdf(hi) < p; i++ {
			if i >= cfg.MaxExpansions {
				return 0, notConverged("%s: no bracket found for p=%g", name, p)
			}
			lo = hi
			step *= 2
			hi = lo + step
		}
	}
	if d.Cdf(lo) >= p {
		return lo, nil
	}
	// invariant: Cdf(lo) < p <= Cdf(hi)
	for i := 0; hi-lo > 1; i++ {
		if i >= cfg.DiscreteSearch {
			return 0, notConverged("%s: integer search for p=%g did not converge", name, p)
		}
		mid := math.Floor(lo + (hi-lo)/2)
		if d.Cdf(mid) >= p {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
