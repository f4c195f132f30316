package stattests

import (
	"fmt"

	"github.com/FooBarShebang/statistics-lib-sub001/distributions"
	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/statistics"
	"github.com/FooBarShebang/statistics-lib-sub001/stats"
)

// portmanteau evaluates Q against chi-squared with lags-fitdf degrees of
// freedom (at least 1). weight returns the contribution of the squared
// autocorrelation at lag k.
func portmanteau(test string, s *statistics.Statistics1D, lags, fitdf int, cfg Config, weight func(n, k int) float64) (*TestResult, error) {
	if s == nil {
		return nil, errkind.Typef("%s: sample is nil", test)
	}
	if fitdf < 0 {
		return nil, errkind.Valuef("%s: fitted parameter count must be >= 0, got %d", test, fitdf)
	}
	acf, err := stats.ACF(stats.Floats(s.Values()), lags)
	if err != nil {
		return nil, err
	}
	n := s.N()
	q := 0.0
	for k := 1; k <= lags; k++ {
		q += weight(n, k) * acf[k] * acf[k]
	}
	model, err := distributions.NewChiSquared(max(1, lags-fitdf))
	if err != nil {
		return nil, err
	}
	return evaluate(fmt.Sprintf("%s (%d lags)", test, lags), s.Name(), model, q, Greater, cfg)
}

// LjungBox tests the null hypothesis of no autocorrelation up to lags:
// Q = N(N+2) Σ r_k²/(N-k). fitdf is the number of fitted model parameters
// when s holds residuals.
func LjungBox(s *statistics.Statistics1D, lags, fitdf int, cfg Config) (*TestResult, error) {
	return portmanteau("Ljung-Box test", s, lags, fitdf, cfg, func(n, k int) float64 {
		return float64(n*(n+2)) / float64(n-k)
	})
}

// BoxPierce is the simpler portmanteau test Q = N Σ r_k².
func BoxPierce(s *statistics.Statistics1D, lags, fitdf int, cfg Config) (*TestResult, error) {
	return portmanteau("Box-Pierce test", s, lags, fitdf, cfg, func(n, _ int) float64 {
		return float64(n)
	})
}
