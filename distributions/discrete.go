package distributions

import (
	"math"

	"github.com/FooBarShebang/statistics-lib-sub001/specfun"
)

// Poisson is the Poisson distribution with the given rate.
type Poisson struct {
	discreteBase
}

var poissonSpecs = []paramSpec{positiveParam("Rate")}

// NewPoisson creates a Poisson distribution; rate must be > 0.
func NewPoisson(rate float64) (*Poisson, error) {
	d := &Poisson{}
	if err := d.initDiscrete(d, "Poisson", poissonSpecs, rate); err != nil {
		return nil, err
	}
	return d, nil
}

// Rate returns λ. SetRate re-validates and clears cached values.
func (d *Poisson) Rate() float64           { return d.p(0) }
func (d *Poisson) SetRate(v float64) error { return d.set(0, v) }

// Pmf returns λ^k e^-λ / k! for k >= 0, 0 otherwise.
func (d *Poisson) Pmf(k int) float64 {
	if k < 0 {
		return 0
	}
	lambda := d.p(0)
	kf := float64(k)
	return specfun.ExpOrZero(kf*math.Log(lambda) - lambda - specfun.LogGamma(kf+1))
}

// Cdf returns P(X <= floor(x)) as the regularized upper incomplete gamma
// Q(floor(x)+1, λ).
func (d *Poisson) Cdf(x float64) float64 {
	k := math.Floor(x)
	if k < 0 {
		return 0
	}
	return specfun.UpperGammaReg(k+1, d.p(0))
}

// Mean and Var both equal λ.
func (d *Poisson) Mean() float64 { return d.p(0) }
func (d *Poisson) Var() float64  { return d.p(0) }
func (d *Poisson) Skew() float64 { return 1 / math.Sqrt(d.p(0)) }
func (d *Poisson) Kurt() float64 { return 1 / d.p(0) }
func (d *Poisson) Min() float64  { return 0 }
func (d *Poisson) Max() float64  { return math.Inf(1) }

// Binomial is the number of successes in Draws independent trials, each
// succeeding with Probability.
type Binomial struct {
	discreteBase
}

var binomialSpecs = []paramSpec{probabilityParam("Probability"), countParam("Draws")}

// NewBinomial creates a binomial distribution with 0 < probability < 1 and a
// positive number of draws.
func NewBinomial(probability float64, draws int) (*Binomial, error) {
	d := &Binomial{}
	if err := d.initDiscrete(d, "Binomial", binomialSpecs, probability, float64(draws)); err != nil {
		return nil, err
	}
	return d, nil
}

// Probability and Draws return the parameters; the setters re-validate and
// clear cached values.
func (d *Binomial) Probability() float64           { return d.p(0) }
func (d *Binomial) Draws() int                     { return int(d.p(1)) }
func (d *Binomial) SetProbability(v float64) error { return d.set(0, v) }
func (d *Binomial) SetDraws(v int) error           { return d.set(1, float64(v)) }

// Pmf returns the probability of exactly k successes.
func (d *Binomial) Pmf(k int) float64 {
	p, n := d.p(0), d.p(1)
	kf := float64(k)
	if k < 0 || kf > n {
		return 0
	}
	logChoose := d.cache.get("lognfact", func() float64 { return specfun.LogGamma(n + 1) }) -
		specfun.LogGamma(kf+1) - specfun.LogGamma(n-kf+1)
	return specfun.ExpOrZero(logChoose + kf*math.Log(p) + (n-kf)*math.Log1p(-p))
}

// Cdf returns P(X <= floor(x)) through the regularized incomplete beta.
func (d *Binomial) Cdf(x float64) float64 {
	p, n := d.p(0), d.p(1)
	k := math.Floor(x)
	switch {
	case k < 0:
		return 0
	case k >= n:
		return 1
	}
	return specfun.IncompleteBetaReg(1-p, n-k, k+1)
}

// Mean returns np.
func (d *Binomial) Mean() float64 { return d.p(0) * d.p(1) }
func (d *Binomial) Var() float64  { return d.p(1) * d.p(0) * (1 - d.p(0)) }

// Skew returns (1-2p)/sqrt(np(1-p)).
func (d *Binomial) Skew() float64 {
	return (1 - 2*d.p(0)) / math.Sqrt(d.Var())
}

// Kurt returns the excess kurtosis (1-6p(1-p))/(np(1-p)).
func (d *Binomial) Kurt() float64 {
	p := d.p(0)
	return (1 - 6*p*(1-p)) / d.Var()
}

// Min and Max bound the support {0..n}.
func (d *Binomial) Min() float64 { return 0 }
func (d *Binomial) Max() float64 { return d.p(1) }

// Geometric is the number of trials up to and including the first success.
type Geometric struct {
	discreteBase
}

var geometricSpecs = []paramSpec{probabilityParam("Probability")}

// NewGeometric creates a geometric distribution with 0 < probability < 1.
func NewGeometric(probability float64) (*Geometric, error) {
	d := &Geometric{}
	if err := d.initDiscrete(d, "Geometric", geometricSpecs, probability); err != nil {
		return nil, err
	}
	return d, nil
}

// Probability returns the success probability. SetProbability re-validates and
// clears cached values.
func (d *Geometric) Probability() float64           { return d.p(0) }
func (d *Geometric) SetProbability(v float64) error { return d.set(0, v) }

// Pmf returns the probability that the first success comes on trial k >= 1.
func (d *Geometric) Pmf(k int) float64 {
	if k < 1 {
		return 0
	}
	p := d.p(0)
	return p * specfun.ExpOrZero(float64(k-1)*math.Log1p(-p))
}

// Cdf returns 1 - (1-p)^floor(x).
func (d *Geometric) Cdf(x float64) float64 {
	k := math.Floor(x)
	if k < 1 {
		return 0
	}
	return -math.Expm1(k * math.Log1p(-d.p(0)))
}

// Mean returns 1/p.
func (d *Geometric) Mean() float64 { return 1 / d.p(0) }

// Var returns (1-p)/p².
func (d *Geometric) Var() float64 {
	p := d.p(0)
	return (1 - p) / (p * p)
}

// Skew returns (2-p)/sqrt(1-p).
func (d *Geometric) Skew() float64 {
	p := d.p(0)
	return (2 - p) / math.Sqrt(1-p)
}

// Kurt returns the excess kurtosis 6 + p²/(1-p).
func (d *Geometric) Kurt() float64 {
	p := d.p(0)
	return 6 + p*p/(1-p)
}

// Min is 1: trials are counted from one.
func (d *Geometric) Min() float64 { return 1 }
func (d *Geometric) Max() float64 { return math.Inf(1) }
