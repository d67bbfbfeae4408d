package zkfloat

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// maxParseExponent bounds the written exponent so the working exponent can't
// overflow an int. Anything this large is out of range anyway.
const maxParseExponent = 1 << 20

// Parse reads a decimal number of the form [+-]digits[.digits][(e|E)[+-]digits]
// and truncates it to Precision digits.
func Parse(s string) (Float, error) {
	text := s

	if text == "" {
		return Float{}, SyntaxError.New("empty string")
	}

	w := wide{
		positive: true,
		exponent: Bias,
	}

	switch text[0] {
	case '+':
		text = text[1:]
	case '-':
		w.positive = false
		text = text[1:]
	}

	if i := strings.IndexAny(text, "eE"); i >= 0 {
		e, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return Float{}, SyntaxError.New("invalid exponent in %q", s)
		}

		if e > maxParseExponent || e < -maxParseExponent {
			return Float{}, RangeError.New("exponent %d in %q", e, s)
		}

		w.exponent += e
		text = text[:i]
	}

	whole, frac, _ := strings.Cut(text, ".")
	ds := whole + frac

	if ds == "" || strings.Trim(ds, "0123456789") != "" {
		return Float{}, SyntaxError.New("invalid mantissa in %q", s)
	}

	w.exponent -= len(frac)
	w.mantissa, _ = new(big.Int).SetString(ds, 10)

	return canonical(w)
}

// ToFloat converts f to the nearest native float.
func ToFloat[T constraints.Float](f Float) T {
	// The decimal form is exact, so ParseFloat rounds correctly at the
	// requested size. The largest Float is ~10^162 which never overflows a
	// float64; float32 overflow saturates to ±Inf.
	v, _ := strconv.ParseFloat(f.String(), bitSize[T]())

	return T(v)
}

// bitSize returns 32 for float32 and 64 otherwise.
func bitSize[T constraints.Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}

	return 64
}

// FromFloat converts v through its shortest decimal representation and
// truncates it to Precision digits.
func FromFloat[T constraints.Float](v T) (Float, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Float{}, SyntaxError.New("not a finite number: %v", f)
	}

	return Parse(strconv.FormatFloat(f, 'e', -1, bitSize[T]()))
}
