package stattests

import (
	"fmt"
	"math"
	"strings"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

// Bounds holds the critical values of a test. A nil bound is absent.
type Bounds struct {
	Lower *float64
	Upper *float64
}

// LowerBound returns Bounds with only a lower critical value.
func LowerBound(v float64) Bounds { return Bounds{Lower: &v} }

// UpperBound returns Bounds with only an upper critical value.
func UpperBound(v float64) Bounds { return Bounds{Upper: &v} }

// Between returns Bounds with both critical values.
func Between(lower, upper float64) Bounds { return Bounds{Lower: &lower, Upper: &upper} }

// TestResult is the immutable outcome of a hypothesis test. The null
// hypothesis is rejected when the statistic lies below the lower or above
// the upper critical value.
type TestResult struct {
	test      string
	data      string
	model     string
	statistic float64
	cdfValue  float64
	lower     float64
	upper     float64
	hasLower  bool
	hasUpper  bool
}

// NewTestResult validates and stores a test outcome. cdfValue is the model
// CDF at the statistic. At least one critical value is required.
func NewTestResult(test, data, model string, statistic, cdfValue float64, critical Bounds) (*TestResult, error) {
	if critical.Lower == nil && critical.Upper == nil {
		return nil, errkind.Valuef("%s: at least one critical value is required", test)
	}
	if math.IsNaN(statistic) {
		return nil, errkind.Valuef("%s: test statistic is NaN", test)
	}
	if !(cdfValue >= 0 && cdfValue <= 1) {
		return nil, errkind.Valuef("%s: CDF value must be in [0, 1], got %g", test, cdfValue)
	}
	r := &TestResult{
		test:      test,
		data:      data,
		model:     model,
		statistic: statistic,
		cdfValue:  cdfValue,
	}
	if critical.Lower != nil {
		r.lower, r.hasLower = *critical.Lower, true
	}
	if critical.Upper != nil {
		r.upper, r.hasUpper = *critical.Upper, true
	}
	if r.hasLower && r.hasUpper && r.lower > r.upper {
		return nil, errkind.Valuef("%s: lower critical value %g exceeds upper %g", test, r.lower, r.upper)
	}
	return r, nil
}

func (r *TestResult) Test() string           { return r.test }
func (r *TestResult) Data() string           { return r.data }
func (r *TestResult) Model() string          { return r.model }
func (r *TestResult) Statistic() float64     { return r.statistic }
func (r *TestResult) CDFValue() float64      { return r.cdfValue }
func (r *TestResult) Lower() (float64, bool) { return r.lower, r.hasLower }
func (r *TestResult) Upper() (float64, bool) { return r.upper, r.hasUpper }

// IsRejected reports whether the statistic falls outside the critical
// values.
func (r *TestResult) IsRejected() bool {
	return (r.hasLower && r.statistic < r.lower) || (r.hasUpper && r.statistic > r.upper)
}

// PValue returns the probability under the model of a statistic at least as
// extreme as the observed one, in the direction(s) given by the bounds.
func (r *TestResult) PValue() float64 {
	switch {
	case r.hasLower && r.hasUpper:
		return math.Min(1, 2*math.Min(r.cdfValue, 1-r.cdfValue))
	case r.hasLower:
		return r.cdfValue
	default:
		return 1 - r.cdfValue
	}
}

// Report renders the outcome as a multi-line text.
func (r *TestResult) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Test:       %s\n", r.test)
	fmt.Fprintf(&b, "Data:       %s\n", r.data)
	fmt.Fprintf(&b, "Model:      %s\n", r.model)
	fmt.Fprintf(&b, "Statistic:  %.6g\n", r.statistic)
	fmt.Fprintf(&b, "CDF value:  %.6g\n", r.cdfValue)
	lo, hi := "-inf", "+inf"
	if r.hasLower {
		lo = fmt.Sprintf("%.6g", r.lower)
	}
	if r.hasUpper {
		hi = fmt.Sprintf("%.6g", r.upper)
	}
	fmt.Fprintf(&b, "Accept:     [%s, %s]\n", lo, hi)
	fmt.Fprintf(&b, "p-value:    %.6g\n", r.PValue())
	if r.IsRejected() {
		b.WriteString("Result:     null hypothesis rejected\n")
	} else {
		b.WriteString("Result:     null hypothesis not rejected\n")
	}
	return b.String()
}

func (r *TestResult) String() string { return r.Report() }

func (r *TestResult) bounds() Bounds {
	var b Bounds
	if r.hasLower {
		b.Lower = &r.lower
	}
	if r.hasUpper {
		b.Upper = &r.upper
	}
	return b
}
