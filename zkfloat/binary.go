package zkfloat

import "math/big"

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The mantissa comes first, big-endian, shifted left one bit with the low
// bit set for negative numbers. The last byte is the biased exponent.
func (f Float) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetUint64(f.Mantissa)

	i.Lsh(i, 1)
	if !f.Positive {
		i.SetBit(i, 0, 1)
	}

	mantissa := i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(mantissa) == 0 {
		mantissa = []byte{0}
	}

	data = make([]byte, 0, len(mantissa)+1)
	data = append(data, mantissa...)
	data = append(data, f.Exponent)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Float) UnmarshalBinary(data []byte) (err error) {
	if len(data) < 2 {
		return Error.New("short float: %d bytes", len(data))
	}

	i := new(big.Int).SetBytes(data[:len(data)-1])

	negative := i.Bit(0) == 1
	i.Rsh(i, 1)

	if !i.IsUint64() {
		return Error.New("mantissa exceeds 64 bits: %d bytes", len(data)-1)
	}

	*f = Float{
		Positive: !negative,
		Mantissa: i.Uint64(),
		Exponent: data[len(data)-1],
	}

	return nil
}
