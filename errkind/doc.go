// Package errkind defines the two error kinds reported by the library.
//
// Every public operation validates its arguments eagerly. Arguments of the
// wrong kind (a string where a number is expected, an element that is neither
// a number nor a measurement) produce an error marked with ErrInvalidType.
// Arguments of the right kind that violate a domain constraint (an empty
// sample, a non-positive scale, mismatched lengths, too few elements for the
// requested statistic, a numeric inversion that did not converge) produce an
// error marked with ErrInvalidValue. The type check always runs first.
//
// Classify errors with errors.Is:
//
//	_, err := stats.VarianceBessel(stats.Floats{1})
//	if errors.Is(err, errkind.ErrInvalidValue) {
//	    // not enough data
//	}
package errkind
