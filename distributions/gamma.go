package distributions

import (
	"math"

	"github.com/FooBarShebang/statistics-lib-sub001/specfun"
)

// Exponential is the exponential distribution with the given rate.
type Exponential struct {
	continuousBase
}

var exponentialSpecs = []paramSpec{positiveParam("Rate")}

// NewExponential creates an exponential distribution; rate must be > 0.
func NewExponential(rate float64) (*Exponential, error) {
	d := &Exponential{}
	if err := d.initContinuous(d, "Exponential", exponentialSpecs, rate); err != nil {
		return nil, err
	}
	return d, nil
}

// Rate returns λ. SetRate re-validates and clears cached values.
func (d *Exponential) Rate() float64           { return d.p(0) }
func (d *Exponential) SetRate(v float64) error { return d.set(0, v) }

// Pdf returns λe^(-λx) for x >= 0.
func (d *Exponential) Pdf(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.p(0) * specfun.ExpOrZero(-d.p(0)*x)
}

// Cdf returns 1 - e^(-λx) for x >= 0.
func (d *Exponential) Cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.p(0) * x)
}

// Qf returns -log(1-p)/λ.
func (d *Exponential) Qf(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return -math.Log1p(-p) / d.p(0), nil
}

// Random draws with the generator's ExpFloat64.
func (d *Exponential) Random() (float64, error) {
	return d.rng.ExpFloat64() / d.p(0), nil
}

// Mean returns 1/λ.
func (d *Exponential) Mean() float64   { return 1 / d.p(0) }
func (d *Exponential) Median() float64 { return math.Ln2 / d.p(0) }
func (d *Exponential) Var() float64    { return 1 / (d.p(0) * d.p(0)) }
func (d *Exponential) Skew() float64   { return 2 }
func (d *Exponential) Kurt() float64   { return 6 }
func (d *Exponential) Min() float64    { return 0 }
func (d *Exponential) Max() float64    { return math.Inf(1) }

// Gamma is the gamma distribution with shape k and scale θ.
type Gamma struct {
	continuousBase
}

var gammaSpecs = []paramSpec{positiveParam("Shape"), positiveParam("Scale")}

// NewGamma creates a gamma distribution; shape and scale must be > 0.
func NewGamma(shape, scale float64) (*Gamma, error) {
	d := &Gamma{}
	if err := d.initContinuous(d, "Gamma", gammaSpecs, shape, scale); err != nil {
		return nil, err
	}
	return d, nil
}

// Shape and Scale return the parameters; the setters re-validate and clear
// cached values.
func (d *Gamma) Shape() float64           { return d.p(0) }
func (d *Gamma) Scale() float64           { return d.p(1) }
func (d *Gamma) SetShape(v float64) error { return d.set(0, v) }
func (d *Gamma) SetScale(v float64) error { return d.set(1, v) }

// Pdf returns the gamma density, 0 below the support.
func (d *Gamma) Pdf(x float64) float64 {
	k, theta := d.p(0), d.p(1)
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case k < 1:
			return math.Inf(1)
		case k == 1:
			return 1 / theta
		}
		return 0
	}
	logNorm := d.cache.get("lognorm", func() float64 {
		return -specfun.LogGamma(k) - k*math.Log(theta)
	})
	return specfun.ExpOrZero(logNorm + (k-1)*math.Log(x) - x/theta)
}

// Cdf returns the regularized lower incomplete gamma P(Shape, x/Scale).
func (d *Gamma) Cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return specfun.LowerGammaReg(d.p(0), x/d.p(1))
}

// Mean returns Shape·Scale.
func (d *Gamma) Mean() float64 { return d.p(0) * d.p(1) }
func (d *Gamma) Var() float64  { return d.p(0) * d.p(1) * d.p(1) }
func (d *Gamma) Skew() float64 { return 2 / math.Sqrt(d.p(0)) }
func (d *Gamma) Kurt() float64 { return 6 / d.p(0) }
func (d *Gamma) Min() float64  { return 0 }
func (d *Gamma) Max() float64  { return math.Inf(1) }
