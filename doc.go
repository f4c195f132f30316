// Package statslib is a statistics library for samples that mix plain real
// numbers with measurements carrying a standard error.
//
// # Features
//
//   - Moment statistics with uncertainty propagation (mean, variance,
//     skewness, kurtosis, covariance, full variance and standard error)
//   - Order statistics (median, quartiles, m-quantiles) and rank
//     correlation (Spearman, Kendall)
//   - Probability distributions with closed-form or numerically inverted
//     quantile functions, histograms and random sampling
//   - Sample aggregates (Statistics1D, Statistics2D) with text summaries
//   - Hypothesis tests (z, t, chi-squared, F, unpaired, Welch, paired,
//     Ljung-Box, Box-Pierce)
//
// # Quick Start
//
//	s, _ := statistics.NewStatistics1D([]any{
//	    1.0, measured.Measurement{Value: 1.5, SE: 0.2}, -0.5, 2.3,
//	})
//	fmt.Print(s.Summary())
//
//	t, _ := distributions.NewStudentT(3)
//	crit, _ := t.Qf(0.975)
//
//	r, _ := stattests.TTest(s, 0, stattests.TwoSided, stattests.DefaultConfig())
//	fmt.Print(r.Report())
//
// # Packages
//
//   - errkind: invalid-type and invalid-value error kinds
//   - specfun: special functions (gamma, beta, error function families)
//   - measured: measurements with uncertainty and numeric coercion
//   - sample: sample ingestion and CSV loading
//   - stats: moment, order, rank and autocorrelation statistics
//   - distributions: distribution framework and families
//   - statistics: Statistics1D and Statistics2D aggregates
//   - stattests: hypothesis tests and TestResult
//
// The statdemo command under cmd/ runs all of the above on CSV files.
package statslib
