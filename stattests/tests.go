package stattests

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/FooBarShebang/statistics-lib-sub001/distributions"
	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/statistics"
	"github.com/FooBarShebang/statistics-lib-sub001/stats"
)

// critical returns the acceptance bounds of model for the given mode.
func critical(model distributions.Distribution, mode Mode, cfg Config) (Bounds, error) {
	if err := cfg.Validate(); err != nil {
		return Bounds{}, err
	}
	alpha := 1 - cfg.ConfidenceLevel
	switch mode {
	case TwoSided:
		lo, err := model.Qf(alpha / 2)
		if err != nil {
			return Bounds{}, err
		}
		hi, err := model.Qf(1 - alpha/2)
		if err != nil {
			return Bounds{}, err
		}
		return Between(lo, hi), nil
	case Greater:
		hi, err := model.Qf(1 - alpha)
		if err != nil {
			return Bounds{}, err
		}
		return UpperBound(hi), nil
	case Less:
		lo, err := model.Qf(alpha)
		if err != nil {
			return Bounds{}, err
		}
		return LowerBound(lo), nil
	}
	return Bounds{}, errkind.Valuef("unknown test mode %d", int(mode))
}

// evaluate builds the result of comparing statistic against model.
func evaluate(test, data string, model distributions.Distribution, statistic float64, mode Mode, cfg Config) (*TestResult, error) {
	bounds, err := critical(model, mode, cfg)
	if err != nil {
		return nil, errors.Wrap(err, test)
	}
	return NewTestResult(test, data, model.String(), statistic, model.Cdf(statistic), bounds)
}

// besselVariance returns the unbiased variance and mean of the nominal
// values of s; s needs at least two elements.
func besselVariance(test string, s *statistics.Statistics1D) (float64, float64, error) {
	if s == nil {
		return 0, 0, errkind.Typef("%s: sample is nil", test)
	}
	if s.N() < 2 {
		return 0, 0, errkind.Valuef("%s: sample %q needs at least 2 elements, got %d", test, s.Name(), s.N())
	}
	v, err := stats.VarianceBessel(stats.Floats(s.Values()))
	if err != nil {
		return 0, 0, err
	}
	return v, s.Mean(), nil
}

// ZTest tests whether the sample mean is consistent with a normal
// population of known mean and sigma: z = (x̄ - mean) / (sigma / √N).
func ZTest(s *statistics.Statistics1D, mean, sigma float64, mode Mode, cfg Config) (*TestResult, error) {
	const test = "Z-test"
	if s == nil {
		return nil, errkind.Typef("%s: sample is nil", test)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, errkind.Valuef("%s: sigma must be > 0, got %g", test, sigma)
	}
	z := (s.Mean() - mean) / (sigma / math.Sqrt(float64(s.N())))
	return evaluate(test, s.Name(), distributions.NewZ(), z, mode, cfg)
}

// TTest is the one-sample Student's t-test of the mean with unknown
// population variance: t = (x̄ - mean) / (s / √N), N-1 degrees of freedom.
func TTest(s *statistics.Statistics1D, mean float64, mode Mode, cfg Config) (*TestResult, error) {
	const test = "one-sample t-test"
	v, m, err := besselVariance(test, s)
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return nil, errkind.Valuef("%s: sample %q is constant", test, s.Name())
	}
	n := s.N()
	t := (m - mean) / math.Sqrt(v/float64(n))
	model, err := distributions.NewStudentT(n - 1)
	if err != nil {
		return nil, err
	}
	return evaluate(test, s.Name(), model, t, mode, cfg)
}

// ChiSquaredTest tests the sample variance against a known population
// sigma: chi² = (N-1) s² / sigma², N-1 degrees of freedom.
func ChiSquaredTest(s *statistics.Statistics1D, sigma float64, mode Mode, cfg Config) (*TestResult, error) {
	const test = "chi-squared variance test"
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, errkind.Valuef("%s: sigma must be > 0, got %g", test, sigma)
	}
	v, _, err := besselVariance(test, s)
	if err != nil {
		return nil, err
	}
	n := s.N()
	chi2 := float64(n-1) * v / (sigma * sigma)
	model, err := distributions.NewChiSquared(n - 1)
	if err != nil {
		return nil, err
	}
	return evaluate(test, s.Name(), model, chi2, mode, cfg)
}

func pairName(x, y *statistics.Statistics1D) string {
	return x.Name() + " vs " + y.Name()
}

// FTest compares the variances of two independent samples:
// F = s_x² / s_y² with (N_x-1, N_y-1) degrees of freedom.
func FTest(x, y *statistics.Statistics1D, mode Mode, cfg Config) (*TestResult, error) {
	const test = "F-test"
	vx, _, err := besselVariance(test, x)
	if err != nil {
		return nil, err
	}
	vy, _, err := besselVariance(test, y)
	if err != nil {
		return nil, err
	}
	if vy == 0 {
		return nil, errkind.Valuef("%s: sample %q is constant", test, y.Name())
	}
	model, err := distributions.NewF(x.N()-1, y.N()-1)
	if err != nil {
		return nil, err
	}
	return evaluate(test, pairName(x, y), model, vx/vy, mode, cfg)
}

// UnpairedTTest compares the means of two independent samples assuming
// equal population variances (pooled variance), N_x+N_y-2 degrees of
// freedom.
func UnpairedTTest(x, y *statistics.Statistics1D, mode Mode, cfg Config) (*TestResult, error) {
	const test = "unpaired t-test"
	vx, mx, err := besselVariance(test, x)
	if err != nil {
		return nil, err
	}
	vy, my, err := besselVariance(test, y)
	if err != nil {
		return nil, err
	}
	nx, ny := float64(x.N()), float64(y.N())
	pooled := ((nx-1)*vx + (ny-1)*vy) / (nx + ny - 2)
	if pooled == 0 {
		return nil, errkind.Valuef("%s: both samples are constant", test)
	}
	t := (mx - my) / math.Sqrt(pooled*(1/nx+1/ny))
	model, err := distributions.NewStudentT(x.N() + y.N() - 2)
	if err != nil {
		return nil, err
	}
	return evaluate(test, pairName(x, y), model, t, mode, cfg)
}

// WelchTTest compares the means of two independent samples without
// assuming equal variances. The Welch-Satterthwaite degrees of freedom are
// rounded down, with a minimum of 1.
func WelchTTest(x, y *statistics.Statistics1D, mode Mode, cfg Config) (*TestResult, error) {
	const test = "Welch's t-test"
	vx, mx, err := besselVariance(test, x)
	if err != nil {
		return nil, err
	}
	vy, my, err := besselVariance(test, y)
	if err != nil {
		return nil, err
	}
	nx, ny := float64(x.N()), float64(y.N())
	ax, ay := vx/nx, vy/ny
	se2 := ax + ay
	if se2 == 0 {
		return nil, errkind.Valuef("%s: both samples are constant", test)
	}
	t := (mx - my) / math.Sqrt(se2)
	df := se2 * se2 / (ax*ax/(nx-1) + ay*ay/(ny-1))
	model, err := distributions.NewStudentT(max(1, int(math.Floor(df))))
	if err != nil {
		return nil, err
	}
	return evaluate(test, pairName(x, y), model, t, mode, cfg)
}

// PairedTTest tests whether the mean of the differences X - Y of a paired
// sample is zero.
func PairedTTest(p *statistics.Statistics2D, mode Mode, cfg Config) (*TestResult, error) {
	const test = "paired t-test"
	if p == nil {
		return nil, errkind.Typef("%s: paired sample is nil", test)
	}
	xs, ys := p.X().Values(), p.Y().Values()
	diff := make(stats.Floats, len(xs))
	for i := range xs {
		diff[i] = xs[i] - ys[i]
	}
	d, err := statistics.FromSequence(diff)
	if err != nil {
		return nil, err
	}
	d.SetName(p.Name())
	r, err := TTest(d, 0, mode, cfg)
	if err != nil {
		return nil, errors.Wrap(err, test)
	}
	return NewTestResult(test, r.Data(), r.Model(), r.Statistic(), r.CDFValue(), r.bounds())
}
