package distributions

import (
	"math"

	"github.com/FooBarShebang/statistics-lib-sub001/specfun"
)

var locationScaleSpecs = []paramSpec{realParam("Location"), positiveParam("Scale")}

// Cauchy is the Cauchy-Lorentz distribution. None of its moments exist.
type Cauchy struct {
	continuousBase
}

// NewCauchy creates a Cauchy distribution. Scale must be > 0.
func NewCauchy(location, scale float64) (*Cauchy, error) {
	d := &Cauchy{}
	if err := d.initContinuous(d, "Cauchy", locationScaleSpecs, location, scale); err != nil {
		return nil, err
	}
	return d, nil
}

// Location and Scale return the parameters; the setters re-validate and clear
// cached values.
func (d *Cauchy) Location() float64           { return d.p(0) }
func (d *Cauchy) Scale() float64              { return d.p(1) }
func (d *Cauchy) SetLocation(v float64) error { return d.set(0, v) }
func (d *Cauchy) SetScale(v float64) error    { return d.set(1, v) }

// Pdf returns the Lorentzian density at x.
func (d *Cauchy) Pdf(x float64) float64 {
	z := (x - d.p(0)) / d.p(1)
	return 1 / (math.Pi * d.p(1) * (1 + z*z))
}

// Cdf returns 1/2 + atan((x-Location)/Scale)/π.
func (d *Cauchy) Cdf(x float64) float64 {
	return 0.5 + math.Atan((x-d.p(0))/d.p(1))/math.Pi
}

// Qf is the closed-form inverse of Cdf.
func (d *Cauchy) Qf(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return d.p(0) + d.p(1)*math.Tan(math.Pi*(p-0.5)), nil
}

// Mean, Var, Skew and Kurt are always Undefined; the quartiles sit one Scale
// from the Location.
func (d *Cauchy) Mean() float64   { return Undefined }
func (d *Cauchy) Median() float64 { return d.p(0) }
func (d *Cauchy) Q1() float64     { return d.p(0) - d.p(1) }
func (d *Cauchy) Q3() float64     { return d.p(0) + d.p(1) }
func (d *Cauchy) Var() float64    { return Undefined }
func (d *Cauchy) Skew() float64   { return Undefined }
func (d *Cauchy) Kurt() float64   { return Undefined }
func (d *Cauchy) Min() float64    { return math.Inf(-1) }
func (d *Cauchy) Max() float64    { return math.Inf(1) }

// Levy is the Lévy distribution, supported on (Location, +Inf). Its mean
// and higher moments are infinite and reported as Undefined.
type Levy struct {
	continuousBase
}

// NewLevy creates a Lévy distribution. Scale must be > 0.
func NewLevy(location, scale float64) (*Levy, error) {
	d := &Levy{}
	if err := d.initContinuous(d, "Levy", locationScaleSpecs, location, scale); err != nil {
		return nil, err
	}
	return d, nil
}

// Location and Scale return the parameters; the setters re-validate and clear
// cached values.
func (d *Levy) Location() float64           { return d.p(0) }
func (d *Levy) Scale() float64              { return d.p(1) }
func (d *Levy) SetLocation(v float64) error { return d.set(0, v) }
func (d *Levy) SetScale(v float64) error    { return d.set(1, v) }

// Pdf returns 0 at and below Location.
func (d *Levy) Pdf(x float64) float64 {
	dx := x - d.p(0)
	if dx <= 0 {
		return 0
	}
	c := d.p(1)
	return math.Sqrt(c/(2*math.Pi)) * specfun.ExpOrZero(-c/(2*dx)) / math.Pow(dx, 1.5)
}

// Cdf returns erfc(sqrt(Scale / 2(x-Location))).
func (d *Levy) Cdf(x float64) float64 {
	dx := x - d.p(0)
	if dx <= 0 {
		return 0
	}
	return math.Erfc(math.Sqrt(d.p(1) / (2 * dx)))
}

// Qf inverts Cdf through the inverse error function.
func (d *Levy) Qf(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	inv := specfun.InvErf(1 - p)
	return d.p(0) + d.p(1)/(2*inv*inv), nil
}

// Random uses Location + Scale/Z² with Z standard normal.
func (d *Levy) Random() (float64, error) {
	z := d.rng.NormFloat64()
	for z == 0 {
		z = d.rng.NormFloat64()
	}
	return d.p(0) + d.p(1)/(z*z), nil
}

// Mean and the higher moments are infinite, reported as Undefined.
func (d *Levy) Mean() float64 { return Undefined }
func (d *Levy) Var() float64  { return Undefined }
func (d *Levy) Skew() float64 { return Undefined }
func (d *Levy) Kurt() float64 { return Undefined }
func (d *Levy) Min() float64  { return d.p(0) }
func (d *Levy) Max() float64  { return math.Inf(1) }
