package zkfloat

import (
	"fmt"
	"math"
)

const (
	// Precision is the maximum number of significant decimal digits kept
	// in a mantissa.
	Precision = 7

	// Bias is added to the true exponent before it is stored.
	Bias = 100

	// MaxExponent is the largest stored (biased) exponent. Stored exponents
	// range over [0, MaxExponent], true exponents over
	// [-Bias, MaxExponent-Bias].
	MaxExponent = math.MaxUint8
)

// Float is a decimal floating point number:
//
//  number = ±mantissa * 10^(exponent - Bias)
//
// Positive is true for non-negative numbers.
type Float struct {
	Positive bool
	Mantissa uint64
	Exponent uint8
}

// New returns the float as given. It is not canonicalized; use Truncate for
// that.
func New(positive bool, mantissa uint64, exponent uint8) Float {
	return Float{
		Positive: positive,
		Mantissa: mantissa,
		Exponent: exponent,
	}
}

// Zero returns the canonical zero.
func Zero() Float {
	return Float{
		Positive: true,
		Mantissa: 0,
		Exponent: Bias,
	}
}

// IsZero reports whether f is exactly the canonical zero. A zero mantissa
// with any other sign or exponent is not canonical and isn't reported.
func (f Float) IsZero() bool {
	return f == Zero()
}

// Negate flips the sign.
func Negate(f Float) Float {
	f.Positive = !f.Positive

	return f
}

// String formats f as [-]<mantissa>e<true exponent>, e.g. 1234567e-1.
func (f Float) String() string {
	sign := ""
	if !f.Positive {
		sign = "-"
	}

	return fmt.Sprintf("%s%de%d", sign, f.Mantissa, int(f.Exponent)-Bias)
}
