package distributions

import (
	"math"

	"github.com/FooBarShebang/statistics-lib-sub001/specfun"
)

// ChiSquared is the chi-squared distribution with k degrees of freedom.
type ChiSquared struct {
	continuousBase
}

// NewChiSquared creates a chi-squared distribution with a positive integer
// degree.
func NewChiSquared(degree int) (*ChiSquared, error) {
	d := &ChiSquared{}
	if err := d.initContinuous(d, "ChiSquared", degreeSpecs, float64(degree)); err != nil {
		return nil, err
	}
	return d, nil
}

// Degree returns k. SetDegree re-validates and clears cached values.
func (d *ChiSquared) Degree() int           { return int(d.p(0)) }
func (d *ChiSquared) SetDegree(v int) error { return d.set(0, float64(v)) }

// Pdf returns the chi-squared density, 0 below the support.
func (d *ChiSquared) Pdf(x float64) float64 {
	k := d.p(0)
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case k < 2:
			return math.Inf(1)
		case k == 2:
			return 0.5
		}
		return 0
	}
	logNorm := d.cache.get("lognorm", func() float64 {
		return -k/2*math.Ln2 - specfun.LogGamma(k/2)
	})
	return specfun.ExpOrZero(logNorm + (k/2-1)*math.Log(x) - x/2)
}

// Cdf returns P(k/2, x/2).
func (d *ChiSquared) Cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return specfun.LowerGammaReg(d.p(0)/2, x/2)
}

// Random sums squared standard normal variates for small degrees and falls
// back to inverse transform sampling otherwise.
func (d *ChiSquared) Random() (float64, error) {
	k := int(d.p(0))
	if k > 100 {
		return d.Qf(d.uniform())
	}
	sum := 0.0
	for i := 0; i < k; i++ {
		z := d.rng.NormFloat64()
		sum += z * z
	}
	return sum, nil
}

// Mean returns k.
func (d *ChiSquared) Mean() float64 { return d.p(0) }
func (d *ChiSquared) Var() float64  { return 2 * d.p(0) }
func (d *ChiSquared) Skew() float64 { return math.Sqrt(8 / d.p(0)) }
func (d *ChiSquared) Kurt() float64 { return 12 / d.p(0) }
func (d *ChiSquared) Min() float64  { return 0 }
func (d *ChiSquared) Max() float64  { return math.Inf(1) }

// StudentT is Student's t distribution with ν degrees of freedom.
type StudentT struct {
	continuousBase
}

// NewStudentT creates a t distribution with a positive integer degree.
func NewStudentT(degree int) (*StudentT, error) {
	d := &StudentT{}
	if err := d.initContinuous(d, "StudentT", degreeSpecs, float64(degree)); err != nil {
		return nil, err
	}
	return d, nil
}

// Degree returns ν. SetDegree re-validates and clears cached values.
func (d *StudentT) Degree() int           { return int(d.p(0)) }
func (d *StudentT) SetDegree(v int) error { return d.set(0, float64(v)) }

// Pdf returns the Student t density.
func (d *StudentT) Pdf(x float64) float64 {
	nu := d.p(0)
	logNorm := d.cache.get("lognorm", func() float64 {
		return specfun.LogGamma((nu+1)/2) - specfun.LogGamma(nu/2) - 0.5*math.Log(nu*math.Pi)
	})
	return specfun.ExpOrZero(logNorm - (nu+1)/2*math.Log1p(x*x/nu))
}

// Cdf goes through the regularized incomplete beta I(ν/(ν+x²); ν/2, 1/2).
func (d *StudentT) Cdf(x float64) float64 {
	nu := d.p(0)
	tail := 0.5 * specfun.IncompleteBetaReg(nu/(nu+x*x), nu/2, 0.5)
	if x >= 0 {
		return 1 - tail
	}
	return tail
}

// Mean is 0 for ν > 1, otherwise Undefined.
func (d *StudentT) Mean() float64 {
	if d.p(0) <= 1 {
		return Undefined
	}
	return 0
}

// Median is 0 for every ν.
func (d *StudentT) Median() float64 { return 0 }

// Var is ν/(ν-2) for ν > 2, otherwise Undefined.
func (d *StudentT) Var() float64 {
	nu := d.p(0)
	if nu <= 2 {
		return Undefined
	}
	return nu / (nu - 2)
}

// Skew is 0 for ν > 3, otherwise Undefined.
func (d *StudentT) Skew() float64 {
	if d.p(0) <= 3 {
		return Undefined
	}
	return 0
}

// Kurt is 6/(ν-4) for ν > 4, otherwise Undefined.
func (d *StudentT) Kurt() float64 {
	nu := d.p(0)
	if nu <= 4 {
		return Undefined
	}
	return 6 / (nu - 4)
}

// Min and Max are infinite.
func (d *StudentT) Min() float64 { return math.Inf(-1) }
func (d *StudentT) Max() float64 { return math.Inf(1) }

// F is Fisher-Snedecor's F distribution with d1 and d2 degrees of freedom.
type F struct {
	continuousBase
}

var fSpecs = []paramSpec{countParam("Degree1"), countParam("Degree2")}

// NewF creates an F distribution with positive integer degrees.
func NewF(degree1, degree2 int) (*F, error) {
	d := &F{}
	if err := d.initContinuous(d, "F", fSpecs, float64(degree1), float64(degree2)); err != nil {
		return nil, err
	}
	return d, nil
}

// Degree1 and Degree2 return the parameters; the setters re-validate and clear
// cached values.
func (d *F) Degree1() int           { return int(d.p(0)) }
func (d *F) Degree2() int           { return int(d.p(1)) }
func (d *F) SetDegree1(v int) error { return d.set(0, float64(v)) }
func (d *F) SetDegree2(v int) error { return d.set(1, float64(v)) }

// Pdf returns the Fisher-Snedecor density, 0 below the support.
func (d *F) Pdf(x float64) float64 {
	d1, d2 := d.p(0), d.p(1)
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case d1 < 2:
			return math.Inf(1)
		case d1 == 2:
			return 1
		}
		return 0
	}
	logNorm := d.cache.get("lognorm", func() float64 {
		return 0.5*d1*math.Log(d1) + 0.5*d2*math.Log(d2) - specfun.LogBeta(d1/2, d2/2)
	})
	return specfun.ExpOrZero(logNorm + (d1/2-1)*math.Log(x) - (d1+d2)/2*math.Log(d1*x+d2))
}

// Cdf returns I(d1x/(d1x+d2); d1/2, d2/2).
func (d *F) Cdf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	d1, d2 := d.p(0), d.p(1)
	return specfun.IncompleteBetaReg(d1*x/(d1*x+d2), d1/2, d2/2)
}

// Mean needs Degree2 > 2.
func (d *F) Mean() float64 {
	d2 := d.p(1)
	if d2 <= 2 {
		return Undefined
	}
	return d2 / (d2 - 2)
}

// Var needs Degree2 > 4.
func (d *F) Var() float64 {
	d1, d2 := d.p(0), d.p(1)
	if d2 <= 4 {
		return Undefined
	}
	return 2 * d2 * d2 * (d1 + d2 - 2) / (d1 * (d2 - 2) * (d2 - 2) * (d2 - 4))
}

// Skew needs Degree2 > 6.
func (d *F) Skew() float64 {
	d1, d2 := d.p(0), d.p(1)
	if d2 <= 6 {
		return Undefined
	}
	return (2*d1 + d2 - 2) * math.Sqrt(8*(d2-4)) / ((d2 - 6) * math.Sqrt(d1*(d1+d2-2)))
}

// Kurt needs Degree2 > 8.
func (d *F) Kurt() float64 {
	d1, d2 := d.p(0), d.p(1)
	if d2 <= 8 {
		return Undefined
	}
	num := d1*(5*d2-22)*(d1+d2-2) + (d2-4)*(d2-2)*(d2-2)
	return 12 * num / (d1 * (d2 - 6) * (d2 - 8) * (d1 + d2 - 2))
}

// Min and Max bound the support [0, +Inf).
func (d *F) Min() float64 { return 0 }
func (d *F) Max() float64 { return math.Inf(1) }
