package distributions

import (
	"math"

	"go.uber.org/zap"
)

// Undefined is returned by derived properties that do not exist for the
// current parameters, such as the mean of a Cauchy distribution. It is a NaN
// and never compares equal to anything; test for it with IsUndefined.
var Undefined = math.NaN()

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Distribution is the contract shared by continuous and discrete families.
type Distribution interface {
	// Name returns the family name.
	Name() string
	// Parameters returns a copy of the current parameter values.
	Parameters() map[string]float64
	// ParameterNames returns the parameter names in constructor order.
	ParameterNames() []string
	// Parameter returns the value of a named parameter.
	Parameter(name string) (float64, error)
	// SetParameter validates and assigns a parameter, invalidating all
	// cached derived values. On error the instance is unchanged.
	SetParameter(name string, value any) error
	// String renders the family and its parameters, e.g.
	// "Cauchy(Location=0, Scale=1)".
	String() string

	// Cdf returns the cumulative probability P(X <= x).
	Cdf(x float64) float64
	// Qf returns the inverse of Cdf for 0 < p < 1.
	Qf(p float64) (float64, error)
	// Quantile returns Qf(k/m) for integers 0 < k < m.
	Quantile(k, m int) (float64, error)
	// Histogram splits [min, max] into nBins equal bins and returns the
	// probability mass of each.
	Histogram(min, max float64, nBins int) ([]Bin, error)
	// Random draws one variate.
	Random() (float64, error)
	// Seed resets the instance's random generator.
	Seed(seed uint64)

	Mean() float64
	Median() float64
	Q1() float64
	Q3() float64
	Var() float64
	Sigma() float64
	Skew() float64
	Kurt() float64
	Min() float64
	Max() float64
}

// Continuous is a distribution with a probability density.
type Continuous interface {
	Distribution
	Pdf(x float64) float64
}

// Discrete is a distribution over the integers with a probability mass
// function.
type Discrete interface {
	Distribution
	Pmf(k int) float64
}

// Bin is one histogram bin: its center and the probability mass it holds.
type Bin struct {
	Center float64
	Mass   float64
}

var logger = zap.NewNop()

// SetLogger installs the logger used to report numeric inversion problems.
// A nil logger restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
