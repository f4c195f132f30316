package distributions

import (
	"math"

	"github.com/FooBarShebang/statistics-lib-sub001/specfun"
)

// InverseGaussian is the inverse Gaussian (Wald) distribution.
type InverseGaussian struct {
	continuousBase
}

var inverseGaussianSpecs = []paramSpec{positiveParam("Mean"), positiveParam("Shape")}

// NewInverseGaussian creates an inverse Gaussian distribution with the given
// mean and shape, both > 0.
func NewInverseGaussian(mean, shape float64) (*InverseGaussian, error) {
	d := &InverseGaussian{}
	if err := d.initContinuous(d, "InverseGaussian", inverseGaussianSpecs, mean, shape); err != nil {
		return nil, err
	}
	return d, nil
}

// Shape returns λ. SetMean and SetShape re-validate and clear cached values.
func (d *InverseGaussian) Shape() float64           { return d.p(1) }
func (d *InverseGaussian) SetMean(v float64) error  { return d.set(0, v) }
func (d *InverseGaussian) SetShape(v float64) error { return d.set(1, v) }

// Pdf returns the Wald density, 0 for x <= 0.
func (d *InverseGaussian) Pdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	mu, lambda := d.p(0), d.p(1)
	e := -lambda * (x - mu) * (x - mu) / (2 * mu * mu * x)
	return math.Sqrt(lambda/(2*math.Pi*x*x*x)) * specfun.ExpOrZero(e)
}

// Cdf returns Φ(a(x/μ-1)) + e^(2λ/μ)Φ(-a(x/μ+1)) with a = sqrt(λ/x).
func (d *InverseGaussian) Cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	mu, lambda := d.p(0), d.p(1)
	a := math.Sqrt(lambda / x)
	// exp(2λ/μ) Φ(-a(x/μ+1)) is evaluated in log space to avoid overflow
	second := specfun.ExpOrZero(2*lambda/mu + specfun.LogNormalCDF(-a*(x/mu+1)))
	return math.Min(1, specfun.NormalCDF(a*(x/mu-1))+second)
}

// Mean returns the Mean parameter μ; Var is μ³/λ.
func (d *InverseGaussian) Mean() float64 { return d.p(0) }
func (d *InverseGaussian) Var() float64  { return math.Pow(d.p(0), 3) / d.p(1) }
func (d *InverseGaussian) Skew() float64 { return 3 * math.Sqrt(d.p(0)/d.p(1)) }
func (d *InverseGaussian) Kurt() float64 { return 15 * d.p(0) / d.p(1) }
func (d *InverseGaussian) Min() float64  { return 0 }
func (d *InverseGaussian) Max() float64  { return math.Inf(1) }

// invGamma holds the closed forms of the inverse gamma distribution with
// shape a and scale b, shared by the inverse chi-squared families.
type invGamma struct {
	a, b float64
}

func (g invGamma) logNorm() float64 {
	return g.a*math.Log(g.b) - specfun.LogGamma(g.a)
}

func (g invGamma) pdf(x, logNorm float64) float64 {
	if x <= 0 {
		return 0
	}
	return specfun.ExpOrZero(logNorm - (g.a+1)*math.Log(x) - g.b/x)
}

func (g invGamma) cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return specfun.UpperGammaReg(g.a, g.b/x)
}

func (g invGamma) mean() float64 {
	if g.a <= 1 {
		return Undefined
	}
	return g.b / (g.a - 1)
}

func (g invGamma) variance() float64 {
	if g.a <= 2 {
		return Undefined
	}
	return g.b * g.b / ((g.a - 1) * (g.a - 1) * (g.a - 2))
}

func (g invGamma) skew() float64 {
	if g.a <= 3 {
		return Undefined
	}
	return 4 * math.Sqrt(g.a-2) / (g.a - 3)
}

func (g invGamma) kurt() float64 {
	if g.a <= 4 {
		return Undefined
	}
	return (30*g.a - 66) / ((g.a - 3) * (g.a - 4))
}

// InverseGamma is the inverse gamma distribution with shape α and scale β.
type InverseGamma struct {
	continuousBase
}

var inverseGammaSpecs = []paramSpec{positiveParam("Shape"), positiveParam("Scale")}

// NewInverseGamma creates an inverse gamma distribution; shape and scale
// must be > 0.
func NewInverseGamma(shape, scale float64) (*InverseGamma, error) {
	d := &InverseGamma{}
	if err := d.initContinuous(d, "InverseGamma", inverseGammaSpecs, shape, scale); err != nil {
		return nil, err
	}
	return d, nil
}

// Shape and Scale return the parameters; the setters re-validate and clear
// cached values.
func (d *InverseGamma) Shape() float64           { return d.p(0) }
func (d *InverseGamma) Scale() float64           { return d.p(1) }
func (d *InverseGamma) SetShape(v float64) error { return d.set(0, v) }
func (d *InverseGamma) SetScale(v float64) error { return d.set(1, v) }

func (d *InverseGamma) kernel() invGamma { return invGamma{a: d.p(0), b: d.p(1)} }

// Pdf returns the inverse gamma density, 0 for x <= 0.
func (d *InverseGamma) Pdf(x float64) float64 {
	g := d.kernel()
	return g.pdf(x, d.cache.get("lognorm", g.logNorm))
}

// Cdf returns Q(Shape, Scale/x).
func (d *InverseGamma) Cdf(x float64) float64 { return d.kernel().cdf(x) }

// Mean needs Shape > 1, Var > 2, Skew > 3 and Kurt > 4; otherwise they are
// Undefined.
func (d *InverseGamma) Mean() float64 { return d.kernel().mean() }
func (d *InverseGamma) Var() float64  { return d.kernel().variance() }
func (d *InverseGamma) Skew() float64 { return d.kernel().skew() }
func (d *InverseGamma) Kurt() float64 { return d.kernel().kurt() }
func (d *InverseGamma) Min() float64  { return 0 }
func (d *InverseGamma) Max() float64  { return math.Inf(1) }

// InverseChiSquared is the inverse chi-squared distribution with ν degrees
// of freedom, an inverse gamma with shape ν/2 and scale 1/2.
type InverseChiSquared struct {
	continuousBase
}

var degreeSpecs = []paramSpec{countParam("Degree")}

// NewInverseChiSquared creates an inverse chi-squared distribution with a
// positive integer degree.
func NewInverseChiSquared(degree int) (*InverseChiSquared, error) {
	d := &InverseChiSquared{}
	if err := d.initContinuous(d, "InverseChiSquared", degreeSpecs, float64(degree)); err != nil {
		return nil, err
	}
	return d, nil
}

// Degree returns ν. SetDegree re-validates and clears cached values.
func (d *InverseChiSquared) Degree() int           { return int(d.p(0)) }
func (d *InverseChiSquared) SetDegree(v int) error { return d.set(0, float64(v)) }
func (d *InverseChiSquared) kernel() invGamma      { return invGamma{a: d.p(0) / 2, b: 0.5} }

// Pdf returns the inverse chi-squared density, 0 for x <= 0.
func (d *InverseChiSquared) Pdf(x float64) float64 {
	g := d.kernel()
	return g.pdf(x, d.cache.get("lognorm", g.logNorm))
}

// Cdf returns Q(ν/2, 1/(2x)).
func (d *InverseChiSquared) Cdf(x float64) float64 { return d.kernel().cdf(x) }

// Mean and the higher moments follow the inverse gamma with shape ν/2.
func (d *InverseChiSquared) Mean() float64 { return d.kernel().mean() }
func (d *InverseChiSquared) Var() float64  { return d.kernel().variance() }
func (d *InverseChiSquared) Skew() float64 { return d.kernel().skew() }
func (d *InverseChiSquared) Kurt() float64 { return d.kernel().kurt() }
func (d *InverseChiSquared) Min() float64  { return 0 }
func (d *InverseChiSquared) Max() float64  { return math.Inf(1) }

// ScaledInverseChiSquared is the scaled inverse chi-squared distribution
// with ν degrees of freedom and scale τ², an inverse gamma with shape ν/2
// and scale ντ²/2.
type ScaledInverseChiSquared struct {
	continuousBase
}

var scaledDegreeSpecs = []paramSpec{countParam("Degree"), positiveParam("Scale")}

// NewScaledInverseChiSquared creates a scaled inverse chi-squared
// distribution with a positive integer degree and a scale > 0.
func NewScaledInverseChiSquared(degree int, scale float64) (*ScaledInverseChiSquared, error) {
	d := &ScaledInverseChiSquared{}
	if err := d.initContinuous(d, "ScaledInverseChiSquared", scaledDegreeSpecs, float64(degree), scale); err != nil {
		return nil, err
	}
	return d, nil
}

// Degree and Scale return the parameters; the setters re-validate and clear
// cached values.
func (d *ScaledInverseChiSquared) Degree() int              { return int(d.p(0)) }
func (d *ScaledInverseChiSquared) Scale() float64           { return d.p(1) }
func (d *ScaledInverseChiSquared) SetDegree(v int) error    { return d.set(0, float64(v)) }
func (d *ScaledInverseChiSquared) SetScale(v float64) error { return d.set(1, v) }

func (d *ScaledInverseChiSquared) kernel() invGamma {
	return invGamma{a: d.p(0) / 2, b: d.p(0) * d.p(1) / 2}
}

// Pdf returns the scaled inverse chi-squared density, 0 for x <= 0.
func (d *ScaledInverseChiSquared) Pdf(x float64) float64 {
	g := d.kernel()
	return g.pdf(x, d.cache.get("lognorm", g.logNorm))
}

// Cdf returns Q(ν/2, ν·Scale/(2x)).
func (d *ScaledInverseChiSquared) Cdf(x float64) float64 { return d.kernel().cdf(x) }

// Mean and the higher moments follow the inverse gamma with shape ν/2.
func (d *ScaledInverseChiSquared) Mean() float64 { return d.kernel().mean() }
func (d *ScaledInverseChiSquared) Var() float64  { return d.kernel().variance() }
func (d *ScaledInverseChiSquared) Skew() float64 { return d.kernel().skew() }
func (d *ScaledInverseChiSquared) Kurt() float64 { return d.kernel().kurt() }
func (d *ScaledInverseChiSquared) Min() float64  { return 0 }
func (d *ScaledInverseChiSquared) Max() float64  { return math.Inf(1) }
