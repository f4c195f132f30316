// Package stats provides moment and order statistics over sequences of
// sample elements.
//
// Every function takes a Sequence: the nominal values of the elements plus
// their standard errors. Floats is the plain case, *sample.Sample the mixed
// case. Only FullVariance and FullStandardError look at the standard errors;
// everything else works on nominal values.
//
// # Moments
//
//	data := stats.Floats{1, 1.5, -0.5, 2.3, 1, 4, 2.3, -3, 2.4546, 2}
//
//	mean, _ := stats.Mean(data)
//	v, _ := stats.Variance(data)        // divide by N
//	vb, _ := stats.VarianceBessel(data) // divide by N-1
//	m3, _ := stats.Moment(data, 3, true) // third central moment
//	g1, _ := stats.Skewness(data)
//	g2, _ := stats.KurtosisBessel(data)  // excess kurtosis, bias corrected
//
// # Order Statistics
//
// Quartiles use linear interpolation between order statistics: for N sorted
// values, Q1 sits at 0-based position (N-1)/4 and Q3 at 3(N-1)/4.
//
//	q1, _ := stats.FirstQuartile(data)
//	med, _ := stats.Median(data)
//
// The ...Sorted variants skip sorting and expect ascending input. Passing
// unsorted data to them gives meaningless results.
//
// # Correlation
//
// Covariance, PearsonR, SpearmanR and KendallTau pair two sequences of equal
// length. ACF and PACF give the autocorrelation of a single sequence up to
// a maximum lag; DurbinWatson tests residuals for first-order
// autocorrelation.
//
//	acf, _ := stats.ACF(residuals, 10) // acf[0] == 1
//
// # Errors
//
// Empty input, mismatched lengths and too few elements for the requested
// statistic are reported as errkind.ErrInvalidValue. A nil Sequence is
// errkind.ErrInvalidType.
package stats
