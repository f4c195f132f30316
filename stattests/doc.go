// Package stattests runs classical hypothesis tests on statistics
// aggregates and reports the outcome as a TestResult.
//
// A test computes a statistic from the data, looks up the model
// distribution of that statistic under the null hypothesis and derives the
// critical values from the confidence level:
//
//	s, _ := statistics.NewStatistics1D(measured.Elements(data))
//	r, err := stattests.TTest(s, 0, stattests.Greater, stattests.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(r.Report())
//	if r.IsRejected() {
//	    // the mean is significantly above 0
//	}
//
// Available tests:
//   - ZTest: mean against a population of known mean and sigma
//   - TTest: mean against a value, unknown variance
//   - ChiSquaredTest: variance against a known sigma
//   - FTest: ratio of two variances
//   - UnpairedTTest: two means, pooled variance
//   - WelchTTest: two means, unequal variances
//   - PairedTTest: mean difference of a paired sample
//
// TwoSided tests have both critical values, Greater only the upper one and
// Less only the lower one. The p-value follows the same sidedness.
package stattests
