package zkfloat

import "math/big"

// Multiply returns x * y.
func Multiply(x, y Float) (Float, error) {
	return canonical(wide{
		positive: x.Positive == y.Positive,
		mantissa: new(big.Int).Mul(
			new(big.Int).SetUint64(x.Mantissa),
			new(big.Int).SetUint64(y.Mantissa),
		),
		exponent: int(x.Exponent) + int(y.Exponent) - Bias,
	})
}

// Divide returns x / y computed by long division, one quotient digit at a
// time, for Precision digits. It returns ErrDivideByZero if y's mantissa is
// 0.
func Divide(x, y Float) (Float, error) {
	if y.Mantissa == 0 {
		return Float{}, ErrDivideByZero
	}

	num := new(big.Int).SetUint64(x.Mantissa)
	den := new(big.Int).SetUint64(y.Mantissa)
	exponent := int(x.Exponent)

	// Align so the leading quotient digit is non-zero.
	if num.Cmp(den) < 0 {
		num.Mul(num, ten)
		exponent--
	}

	quotient := new(big.Int)
	digit := new(big.Int)
	rem := new(big.Int)

	for i := 0; i < Precision; i++ {
		digit.QuoRem(num, den, rem)
		num.Mul(rem, ten)

		// For precision N, the leading digit is worth 10^(N-1).
		quotient.Add(quotient, digit.Mul(digit, pow10(Precision-1-i)))
	}

	return canonical(wide{
		positive: x.Positive == y.Positive,
		mantissa: quotient,
		exponent: Bias + exponent - int(y.Exponent) - Precision + 1,
	})
}

// Add returns x + y. Both operands are aligned to the smaller exponent
// before summing.
func Add(x, y Float) (Float, error) {
	mx := new(big.Int).SetUint64(x.Mantissa)
	my := new(big.Int).SetUint64(y.Mantissa)
	exponent := int(x.Exponent)

	switch {
	case x.Exponent < y.Exponent:
		my.Mul(my, pow10(int(y.Exponent-x.Exponent)))
	case x.Exponent > y.Exponent:
		mx.Mul(mx, pow10(int(x.Exponent-y.Exponent)))
		exponent = int(y.Exponent)
	}

	w := wide{
		positive: x.Positive,
		mantissa: new(big.Int),
		exponent: exponent,
	}

	switch {
	case x.Positive == y.Positive:
		w.mantissa.Add(mx, my)
	case mx.Cmp(my) > 0:
		w.mantissa.Sub(mx, my)
	default:
		w.mantissa.Sub(my, mx)
		w.positive = y.Positive
	}

	return canonical(w)
}

// Subtract returns x - y.
func Subtract(x, y Float) (Float, error) {
	return Add(x, Negate(y))
}

// Relu returns the canonical zero for negative f and f itself, unchanged and
// not re-truncated, otherwise.
func Relu(f Float) Float {
	if !f.Positive {
		return Zero()
	}

	return f
}
