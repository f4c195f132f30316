package distributions

import (
	"math"

	"github.com/FooBarShebang/statistics-lib-sub001/specfun"
)

var gaussianSpecs = []paramSpec{realParam("Mean"), positiveParam("Sigma")}

// Gaussian is the normal distribution N(Mean, Sigma²).
type Gaussian struct {
	continuousBase
}

// NewGaussian creates a normal distribution. Sigma must be > 0.
func NewGaussian(mean, sigma float64) (*Gaussian, error) {
	d := &Gaussian{}
	if err := d.initContinuous(d, "Gaussian", gaussianSpecs, mean, sigma); err != nil {
		return nil, err
	}
	return d, nil
}

// SetMean changes the location parameter.
func (d *Gaussian) SetMean(v float64) error { return d.set(0, v) }

// SetSigma changes the scale parameter.
func (d *Gaussian) SetSigma(v float64) error { return d.set(1, v) }

// Pdf returns the normal density at x.
func (d *Gaussian) Pdf(x float64) float64 {
	z := (x - d.p(0)) / d.p(1)
	return specfun.ExpOrZero(-z*z/2) / (d.p(1) * math.Sqrt(2*math.Pi))
}

// Cdf returns Φ((x-Mean)/Sigma).
func (d *Gaussian) Cdf(x float64) float64 {
	return specfun.NormalCDF((x - d.p(0)) / d.p(1))
}

// Qf returns Mean + Sigma·Φ⁻¹(p).
func (d *Gaussian) Qf(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return d.p(0) + d.p(1)*specfun.NormalQF(p), nil
}

// Random draws a variate with the generator's normal sampler.
func (d *Gaussian) Random() (float64, error) {
	return d.p(0) + d.p(1)*d.rng.NormFloat64(), nil
}

// Mean and Sigma double as the parameter getters.
func (d *Gaussian) Mean() float64   { return d.p(0) }
func (d *Gaussian) Median() float64 { return d.p(0) }
func (d *Gaussian) Var() float64    { return d.p(1) * d.p(1) }
func (d *Gaussian) Sigma() float64  { return d.p(1) }
func (d *Gaussian) Skew() float64   { return 0 }
func (d *Gaussian) Kurt() float64   { return 0 }
func (d *Gaussian) Min() float64    { return math.Inf(-1) }
func (d *Gaussian) Max() float64    { return math.Inf(1) }

// Z is the standard normal distribution. It has no parameters.
type Z struct {
	continuousBase
}

// NewZ creates the standard normal distribution.
func NewZ() *Z {
	d := &Z{}
	// no parameters, nothing to validate
	_ = d.initContinuous(d, "Z", nil)
	return d
}

// Pdf returns the standard normal density.
func (d *Z) Pdf(x float64) float64 {
	return specfun.ExpOrZero(-x*x/2) / math.Sqrt(2*math.Pi)
}

// Cdf returns Φ(x).
func (d *Z) Cdf(x float64) float64 { return specfun.NormalCDF(x) }

// Qf returns Φ⁻¹(p).
func (d *Z) Qf(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return specfun.NormalQF(p), nil
}

// Random draws with the generator's NormFloat64.
func (d *Z) Random() (float64, error) { return d.rng.NormFloat64(), nil }

// Mean is 0 and Var is 1.
func (d *Z) Mean() float64   { return 0 }
func (d *Z) Median() float64 { return 0 }
func (d *Z) Var() float64    { return 1 }
func (d *Z) Sigma() float64  { return 1 }
func (d *Z) Skew() float64   { return 0 }
func (d *Z) Kurt() float64   { return 0 }
func (d *Z) Min() float64    { return math.Inf(-1) }
func (d *Z) Max() float64    { return math.Inf(1) }
