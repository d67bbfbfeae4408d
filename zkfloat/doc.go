// Package zkfloat provides a decimal floating point number built only from
// unsigned integer arithmetic and truncation.
//
// The equation for a float is:
//
//  number = ±mantissa * 10^(exponent - Bias)
//
// Where mantissa is an unsigned integer, exponent is an unsigned biased
// exponent, and the sign is a separate flag. For example:
//
//  1.23  = +123 * 10^(98 - 100)    Float{Positive: true, Mantissa: 123, Exponent: 98}
//  -4500 = -45 * 10^(102 - 100)    Float{Positive: false, Mantissa: 45, Exponent: 102}
//
// The representation avoids native floats, signed integers and native
// reciprocals so the same steps can later be written as additions and
// multiplications over a finite field, with quotients and remainders
// supplied as witnesses.
//
// Canonical Form
//
// Every operator truncates its result to at most Precision decimal digits:
//
//  | Raw Mantissa | Raw Exponent | Canonical                      |
//  |--------------|--------------|--------------------------------|
//  | 12345678     | 98           | 1234567 @ 99                   |
//  | 99999999     | 98           | 9999999 @ 99 (not rounded up)  |
//  | 1234567      | 98           | 1234567 @ 98 (unchanged)       |
//  | 0            | any          | 0 @ 100, positive (zero)       |
//  |--------------|--------------|--------------------------------|
//
// Digits are dropped, never rounded. Any mantissa that ends up 0 is replaced
// by the canonical zero {Positive: true, Mantissa: 0, Exponent: Bias}. Zero
// has no sign and no scale; compare against Zero() (or use IsZero) rather
// than inspecting the mantissa.
//
// Stored exponents are uint8, so true exponents range over [-100, 155]. A
// result outside that range is a RangeError rather than a wrapped value.
// Intermediate mantissas and exponents are held in wider types so products,
// alignments and the long division never overflow before truncation.
//
// Operators
//
//  | Operator | Result                                                     |
//  |----------|------------------------------------------------------------|
//  | Multiply | mantissas multiplied, exponents added less one Bias        |
//  | Divide   | long division for Precision digits; ErrDivideByZero on 0   |
//  | Add      | aligned to the smaller exponent, then summed or differenced |
//  | Subtract | Add with the second operand negated                        |
//  | Relu     | zero for negative inputs, the input unchanged otherwise    |
//  |----------|------------------------------------------------------------|
//
// Relu does not truncate a non-negative input: it is returned bit for bit,
// including a non-canonical mantissa or exponent.
//
// Encoding
//
// The binary form is the mantissa, big-endian, with a trailing sign bit (aka
// zigzag), followed by the biased exponent:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | Mantissa ...              | S | S = 1 for negative
//  |-------------------------------|
//  | Exponent (biased)             |
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Small mantissas leave the high bits of the first byte clear, so the
// witness stream can pack them into the smaller control blocks.
//
// Zero mantissas are a single zero byte (plus sign bit), never empty.
package zkfloat
