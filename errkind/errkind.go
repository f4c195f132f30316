package errkind

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidType marks errors caused by an argument of the wrong kind.
var ErrInvalidType = errors.New("invalid type")

// ErrInvalidValue marks errors caused by an argument outside its domain.
var ErrInvalidValue = errors.New("invalid value")

// Typef returns a formatted error marked as ErrInvalidType.
func Typef(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrInvalidType)
}

// Valuef returns a formatted error marked as ErrInvalidValue.
func Valuef(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrInvalidValue)
}

// IsType reports whether err is an invalid-type error.
func IsType(err error) bool {
	return errors.Is(err, ErrInvalidType)
}

// IsValue reports whether err is an invalid-value error.
func IsValue(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}
