// Package sample ingests heterogeneous sequences of sample elements.
//
// A sample element is a plain number or a measured.Measured value. Ingestion
// resolves every element once into two parallel arrays, nominal values and
// standard errors (0 for plain numbers), so later computations never inspect
// element types again.
//
// # Creating a Sample
//
//	s, err := sample.New([]any{1.5, 2, measured.Measurement{Value: 2.2, SE: 0.1}})
//	s, err = sample.FromFloats([]float64{1, 2, 3})
//
// *Sample satisfies stats.Sequence and can be passed directly to the moment
// and order statistics functions.
//
// # Loading from CSV
//
//	opts := sample.DefaultCSVOptions()
//	opts.ValueColumn = "length"
//	opts.ErrorColumn = "length_se"
//	s, err := sample.LoadCSV("measurements.csv", opts)
package sample
