package specfun

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// MinExp is the smallest argument for which math.Exp does not underflow to 0.
const MinExp = -745.1332191019411

// LogGamma returns ln|Γ(x)|.
func LogGamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}

// LowerGammaReg returns the regularized lower incomplete gamma function P(a, x).
func LowerGammaReg(a, x float64) float64 {
	if !(a > 0) || x < 0 || math.IsNaN(x) {
		return math.NaN()
	}
	if math.IsInf(x, 1) {
		return 1
	}
	return mathext.GammaIncReg(a, x)
}

// UpperGammaReg returns the regularized upper incomplete gamma function Q(a, x).
func UpperGammaReg(a, x float64) float64 {
	if !(a > 0) || x < 0 || math.IsNaN(x) {
		return math.NaN()
	}
	if math.IsInf(x, 1) {
		return 0
	}
	return mathext.GammaIncRegComp(a, x)
}

// InvErf returns the inverse error function for -1 < x < 1.
func InvErf(x float64) float64 {
	return math.Erfinv(x)
}

// Beta returns the complete beta function B(x, y).
func Beta(x, y float64) float64 {
	if !(x > 0) || !(y > 0) {
		return math.NaN()
	}
	return mathext.Beta(x, y)
}

// LogBeta returns ln B(x, y).
func LogBeta(x, y float64) float64 {
	if !(x > 0) || !(y > 0) {
		return math.NaN()
	}
	return mathext.Lbeta(x, y)
}

// IncompleteBetaReg returns the regularized incomplete beta function I_z(x, y).
func IncompleteBetaReg(z, x, y float64) float64 {
	if !(x > 0) || !(y > 0) || !(z >= 0 && z <= 1) {
		return math.NaN()
	}
	return mathext.RegIncBeta(x, y, z)
}

// NormalCDF returns the CDF of the standard normal distribution.
func NormalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// NormalQF returns the quantile function of the standard normal distribution.
func NormalQF(p float64) float64 {
	return math.Sqrt2 * InvErf(2*p-1)
}

// ExpOrZero returns exp(x), short-circuiting to 0 once x is below MinExp.
func ExpOrZero(x float64) float64 {
	if x < MinExp {
		return 0
	}
	return math.Exp(x)
}

// LogNormalCDF returns ln Φ(z), staying finite deep in the lower tail where
// Φ(z) itself underflows.
func LogNormalCDF(z float64) float64 {
	if z > -20 {
		return math.Log(NormalCDF(z))
	}
	// asymptotic expansion of the Mills ratio
	z2 := z * z
	series := -1/z2 + 3/(z2*z2) - 15/(z2*z2*z2)
	return -z2/2 - math.Log(-z) - 0.5*math.Log(2*math.Pi) + math.Log1p(series)
}
