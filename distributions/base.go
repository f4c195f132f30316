package distributions

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

// base holds the state shared by every family: the parameter set, the cache
// of derived values, the random generator and the inversion settings. self
// is the concrete family, so generic methods dispatch to its Cdf and Qf.
type base struct {
	name   string
	specs  []paramSpec
	values []float64
	cache  cache
	rng    *rand.Rand
	config InversionConfig
	self   Distribution
}

func (b *base) init(self Distribution, name string, specs []paramSpec, values ...float64) error {
	for i, spec := range specs {
		if err := spec.check(values[i]); err != nil {
			return err
		}
	}
	b.self = self
	b.name = name
	b.specs = specs
	b.values = slices.Clone(values)
	b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	b.config = defaultInversion
	return nil
}

// p returns the i-th parameter value.
func (b *base) p(i int) float64 {
	return b.values[i]
}

// Name returns the family name.
func (b *base) Name() string {
	return b.name
}

// ParameterNames returns the parameter names in constructor order.
func (b *base) ParameterNames() []string {
	names := make([]string, len(b.specs))
	for i, s := range b.specs {
		names[i] = s.name
	}
	return names
}

// Parameters returns a copy of the current parameter values.
func (b *base) Parameters() map[string]float64 {
	out := make(map[string]float64, len(b.specs))
	for i, s := range b.specs {
		out[s.name] = b.values[i]
	}
	return out
}

func (b *base) index(name string) (int, error) {
	for i, s := range b.specs {
		if s.name == name {
			return i, nil
		}
	}
	return -1, errkind.Valuef("%s has no parameter %q", b.name, name)
}

// Parameter returns the value of a named parameter.
func (b *base) Parameter(name string) (float64, error) {
	i, err := b.index(name)
	if err != nil {
		return 0, err
	}
	return b.values[i], nil
}

// SetParameter validates and assigns a parameter. Type is checked before
// domain; on error the instance is left unchanged. Every cached derived
// value is invalidated on success.
func (b *base) SetParameter(name string, value any) error {
	i, err := b.index(name)
	if err != nil {
		return err
	}
	v, err := b.specs[i].coerce(value)
	if err != nil {
		return err
	}
	if err := b.specs[i].check(v); err != nil {
		return err
	}
	b.values[i] = v
	b.cache.invalidate()
	return nil
}

func (b *base) set(i int, v float64) error {
	return b.SetParameter(b.specs[i].name, v)
}

// Seed resets the random generator so Random becomes reproducible.
func (b *base) Seed(seed uint64) {
	b.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SetInversionConfig replaces the numeric inversion settings.
func (b *base) SetInversionConfig(cfg InversionConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.config = cfg
	b.cache.invalidate()
	return nil
}

// uniform returns a uniform variate in the open interval (0, 1).
func (b *base) uniform() float64 {
	for {
		if u := b.rng.Float64(); u > 0 {
			return u
		}
	}
}

// String renders the family name and parameters in declaration order.
func (b *base) String() string {
	parts := make([]string, len(b.specs))
	for i, s := range b.specs {
		parts[i] = fmt.Sprintf("%s=%g", s.name, b.values[i])
	}
	return fmt.Sprintf("%s(%s)", b.name, strings.Join(parts, ", "))
}

// Quantile returns Qf(k/m) for integers 0 < k < m.
func (b *base) Quantile(k, m int) (float64, error) {
	if k <= 0 || m <= k {
		return 0, errkind.Valuef("quantile requires 0 < k < m, got k=%d m=%d", k, m)
	}
	return b.self.Qf(float64(k) / float64(m))
}

// cachedQf memoizes Qf(p) under key; a failed inversion yields Undefined.
func (b *base) cachedQf(key string, p float64) float64 {
	return b.cache.get(key, func() float64 {
		x, err := b.self.Qf(p)
		if err != nil {
			logger.Debug("quantile unavailable",
				zap.String("distribution", b.name),
				zap.Float64("p", p),
				zap.Error(err))
			return Undefined
		}
		return x
	})
}

// Median returns Qf(0.5), computed once per parameter set.
func (b *base) Median() float64 {
	return b.cachedQf("median", 0.5)
}

// Q1 returns Qf(0.25), computed once per parameter set.
func (b *base) Q1() float64 {
	return b.cachedQf("q1", 0.25)
}

// Q3 returns Qf(0.75), computed once per parameter set.
func (b *base) Q3() float64 {
	return b.cachedQf("q3", 0.75)
}

// Sigma returns the square root of Var, or Undefined.
func (b *base) Sigma() float64 {
	v := b.self.Var()
	if IsUndefined(v) {
		return Undefined
	}
	return math.Sqrt(v)
}

// Random draws one variate by inverse transform sampling.
func (b *base) Random() (float64, error) {
	return b.self.Qf(b.uniform())
}

// Sample draws n variates.
func (b *base) Sample(n int) ([]float64, error) {
	if n < 1 {
		return nil, errkind.Valuef("sample size must be positive, got %d", n)
	}
	out := make([]float64, n)
	for i := range out {
		x, err := b.self.Random()
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func checkHistogram(min, max float64, nBins int) error {
	if nBins < 2 {
		return errkind.Valuef("histogram needs more than one bin, got %d", nBins)
	}
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return errkind.Valuef("histogram range must satisfy min < max with finite bounds, got [%g, %g]", min, max)
	}
	return nil
}

func checkProbability(p float64) error {
	if !(p > 0 && p < 1) {
		return errkind.Valuef("probability must be in (0, 1), got %g", p)
	}
	return nil
}

// continuousBase adds the density based services to base.
type continuousBase struct {
	base
	cont Continuous
}

func (c *continuousBase) initContinuous(self Continuous, name string, specs []paramSpec, values ...float64) error {
	if err := c.base.init(self, name, specs, values...); err != nil {
		return err
	}
	c.cont = self
	return nil
}

// Qf inverts Cdf numerically. Families with a closed form shadow it.
func (c *continuousBase) Qf(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return invertContinuous(c.cont, c.name, c.config, p)
}

// Histogram returns the probability mass Cdf(right) - Cdf(left) of nBins
// equal bins over [min, max].
func (c *continuousBase) Histogram(min, max float64, nBins int) ([]Bin, error) {
	if err := checkHistogram(min, max, nBins); err != nil {
		return nil, err
	}
	width := (max - min) / float64(nBins)
	bins := make([]Bin, nBins)
	left := c.cont.Cdf(min)
	for i := range bins {
		lo := min + float64(i)*width
		hi := lo + width
		if i == nBins-1 {
			hi = max
		}
		right := c.cont.Cdf(hi)
		bins[i] = Bin{Center: (lo + hi) / 2, Mass: right - left}
		left = right
	}
	return bins, nil
}

// discreteBase adds the mass function based services to base.
type discreteBase struct {
	base
	disc Discrete
}

func (d *discreteBase) initDiscrete(self Discrete, name string, specs []paramSpec, values ...float64) error {
	if err := d.base.init(self, name, specs, values...); err != nil {
		return err
	}
	d.disc = self
	return nil
}

// Qf returns the smallest integer k with Cdf(k) >= p.
func (d *discreteBase) Qf(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return invertDiscrete(d.disc, d.name, d.config, p)
}

// pmfSumSpan is the widest run of integers summed term by term in a discrete
// histogram bin; wider bins take the difference of Cdf values.
const pmfSumSpan = 64

// Histogram sums Pmf over the integers inside each of nBins equal bins over
// [min, max]. Bins are closed on the left; the last bin is also closed on
// the right.
func (d *discreteBase) Histogram(min, max float64, nBins int) ([]Bin, error) {
	if err := checkHistogram(min, max, nBins); err != nil {
		return nil, err
	}
	width := (max - min) / float64(nBins)
	bins := make([]Bin, nBins)
	for i := range bins {
		lo := min + float64(i)*width
		hi := lo + width
		first := math.Ceil(lo)
		last := math.Ceil(hi) - 1
		if i == nBins-1 {
			hi = max
			last = math.Floor(max)
		}
		first = math.Max(first, d.disc.Min())
		last = math.Min(last, d.disc.Max())
		mass := 0.0
		switch {
		case last < first:
		case last-first < pmfSumSpan:
			for k := first; k <= last; k++ {
				mass += d.disc.Pmf(int(k))
			}
		default:
			mass = d.disc.Cdf(last) - d.disc.Cdf(first-1)
		}
		bins[i] = Bin{Center: (lo + hi) / 2, Mass: mass}
	}
	return bins, nil
}
