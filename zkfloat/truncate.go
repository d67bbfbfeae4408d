package zkfloat

import "math/big"

var ten = big.NewInt(10)

// wide is an intermediate result. The mantissa can't overflow and the
// biased exponent may temporarily leave [0, MaxExponent].
type wide struct {
	positive bool
	mantissa *big.Int
	exponent int
}

func widen(f Float) wide {
	return wide{
		positive: f.Positive,
		mantissa: new(big.Int).SetUint64(f.Mantissa),
		exponent: int(f.Exponent),
	}
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// digits returns the number of decimal digits in m. Zero has one digit.
func digits(m *big.Int) int {
	if m.Sign() == 0 {
		return 1
	}

	return len(m.Text(10))
}

// canonical truncates w toward zero to Precision digits and checks that the
// exponent fits.
func canonical(w wide) (Float, error) {
	if d := digits(w.mantissa); d > Precision {
		shift := d - Precision

		w.mantissa.Quo(w.mantissa, pow10(shift))
		w.exponent += shift
	}

	if w.mantissa.Sign() == 0 {
		return Zero(), nil
	}

	if w.exponent < 0 || w.exponent > MaxExponent {
		return Float{}, RangeError.New(
			"exponent %d outside [%d, %d]",
			w.exponent-Bias,
			-Bias,
			MaxExponent-Bias,
		)
	}

	return Float{
		Positive: w.positive,
		Mantissa: w.mantissa.Uint64(),
		Exponent: uint8(w.exponent),
	}, nil
}

// Truncate returns f with at most Precision mantissa digits. Extra digits
// are dropped (never rounded) and the exponent grows to match. Anything that
// truncates to a zero mantissa becomes the canonical zero.
func Truncate(f Float) (Float, error) {
	return canonical(widen(f))
}
