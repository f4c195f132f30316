// Package measured provides the measurement-with-uncertainty value type and
// the coercion rules for sample elements.
//
// A sample element is either a plain real number (any Go integer or float
// kind) or a value implementing Measured. Plain numbers are the degenerate
// case with a standard error of zero.
//
//	m, err := measured.New(1.25, 0.05)
//	value, se, err := measured.Split(m)   // 1.25, 0.05
//	value, se, err = measured.Split(3)     // 3, 0
//	_, _, err = measured.Split("3")        // errkind.ErrInvalidType
package measured
