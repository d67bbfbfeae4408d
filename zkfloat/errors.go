package zkfloat

import "github.com/zeebo/errs"

var (
	// Error is the class of zkfloat errors.
	Error = errs.Class("zkfloat")

	// RangeError is returned when a result's biased exponent does not fit
	// in [0, MaxExponent].
	RangeError = errs.Class("zkfloat range")

	// SyntaxError is returned when text or a native float can't be
	// converted.
	SyntaxError = errs.Class("zkfloat syntax")
)

// ErrDivideByZero is returned by Divide when the divisor's mantissa is 0.
var ErrDivideByZero = Error.New("division by zero")
