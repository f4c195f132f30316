// Package statistics provides sample aggregates: Statistics1D for a single
// sequence of numbers and measurements, Statistics2D for a paired sample.
//
// # Single Samples
//
//	s, err := statistics.NewStatistics1D([]any{
//	    1.0, 1.5, measured.Measurement{Value: -0.5, SE: 0.1}, 2.3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s.SetName("run 7")
//	fmt.Println(s.Mean(), s.FullSE())
//	fmt.Print(s.Summary())
//
// Var, Skew and Kurt are population statistics. FullVar and FullSE add the
// propagated uncertainty of the measurements, so FullVar >= Var.
//
// A statistic that is undefined for the sample at hand, such as SE of a
// single element or the skewness of a constant sample, is NaN.
//
// # Paired Samples
//
//	p, err := statistics.NewStatistics2D(xs, ys)
//	fmt.Println(p.Pearson(), p.Spearman(), p.Kendall())
//
// Both components must have the same non-zero length.
//
// Aggregates copy their input and are immutable apart from their names.
package statistics
