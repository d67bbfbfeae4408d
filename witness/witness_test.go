package witness_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/radojevicMihailo/proof-perceptron/control"
	"github.com/radojevicMihailo/proof-perceptron/witness"
	"github.com/radojevicMihailo/proof-perceptron/zkfloat"
)

func TestEncoder(t *testing.T) {
	type TC struct {
		Input  [][]zkfloat.Float
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  nil,
			Output: nil,
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  [][]zkfloat.Float{{}},
			Output: []byte{0b_0000_0110, 0b_0000_0100},
			Mark:   oops.New("unexpected"),
		},
		{
			Input: [][]zkfloat.Float{{zkfloat.Zero()}},
			Output: []byte{
				0b_0000_0110,
				0b_0010_0000, 100,
				0b_0000_0100,
			},
			Mark: oops.New("unexpected"),
		},
		{
			Input: [][]zkfloat.Float{
				{
					{Positive: false, Mantissa: 1, Exponent: 100},
					{Positive: true, Mantissa: 127, Exponent: 99},
				},
				{
					{Positive: true, Mantissa: 128, Exponent: 99},
					{Positive: true, Mantissa: 2405, Exponent: 100},
				},
				{
					{Positive: true, Mantissa: 1<<64 - 1, Exponent: 255},
				},
			},
			Output: []byte{
				0b_0000_0110,
				0b_0010_0011, 100,
				0b_0100_0001, 0b_1111_1110, 99,
				0b_0000_0100,

				0b_0000_0110,
				0b_0001_0001, 0b_0000_0000, 99,
				0b_0100_0010, 0b_0001_0010, 0b_1100_1010, 100,
				0b_0000_0100,

				0b_0000_0110,
				0b_0100_1001, 0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe, 255,
				0b_0000_0100,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			buf := &bytes.Buffer{}

			err := witness.NewEncoder(buf).EncodeAll(tc.Input...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, len(tc.Output), buf.Len(), tc.Mark)
			if len(tc.Output) > 0 {
				require.Equal(t, tc.Output, buf.Bytes(), tc.Mark)
			}

			d := witness.NewDecoder(buf)

			vs, err := d.DecodeAll()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Input, vs, tc.Mark)
			require.Equal(t, uint64(len(tc.Output)), d.Consumed(), tc.Mark)

			t.Logf("Vectors: %s\n", spew.Sdump(vs))
		})
	}
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestEncoderError(t *testing.T) {
	mark := oops.New("unexpected")

	err := witness.NewEncoder(failWriter{mark}).Encode([]zkfloat.Float{zkfloat.Zero()})
	require.Error(t, err)
	require.True(t, witness.Error.Has(err))
	require.True(t, control.Error.Has(err))
}

func TestDecoder(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		d := witness.NewDecoder(bytes.NewReader([]byte{
			0b_0000_0110, 0b_0010_0010, 100, 0b_0000_0100,
			0b_0000_0110, 0b_0010_0010, 100,
		}))

		require.True(t, d.Next())
		require.Equal(t, []zkfloat.Float{{Positive: true, Mantissa: 1, Exponent: 100}}, d.Vector())

		require.False(t, d.Next())
		require.Nil(t, d.Vector())
		require.Error(t, d.Err())
		require.True(t, witness.Error.Has(d.Err()))
		require.True(t, control.Error.Has(d.Err()))

		require.False(t, d.Next())
	})

	t.Run("invalid", func(t *testing.T) {
		type TC struct {
			Name  string
			Input []byte
			Mark  error
		}

		tcs := []TC{
			{Name: "float outside vector", Input: []byte{0b_0010_0000, 100}, Mark: oops.New("unexpected")},
			{Name: "nested vector", Input: []byte{0b_0000_0110, 0b_0000_0110, 0b_0000_0100, 0b_0000_0100}, Mark: oops.New("unexpected")},
			{Name: "unknown byte", Input: []byte{0b_0000_0000}, Mark: oops.New("unexpected")},
			{Name: "stray end", Input: []byte{0b_0000_0100}, Mark: oops.New("unexpected")},
			{Name: "truncated float", Input: []byte{0b_0000_0110, 0b_0100_0010, 0b_0001_0010}, Mark: oops.New("unexpected")},
		}

		for _, tc := range tcs {
			t.Run(tc.Name, func(t *testing.T) {
				vs, err := witness.NewDecoder(bytes.NewReader(tc.Input)).DecodeAll()
				require.Error(t, err, tc.Mark)
				require.True(t, witness.Error.Has(err), tc.Mark)
				require.Empty(t, vs, tc.Mark)
			})
		}
	})

	t.Run("short float", func(t *testing.T) {
		d := witness.NewDecoder(bytes.NewReader([]byte{
			0b_0000_0110, 0b_1000_0001, 0b_0000_0100,
		}))

		vs, err := d.DecodeAll()
		require.Error(t, err)
		require.True(t, witness.Error.Has(err))
		require.True(t, zkfloat.Error.Has(err))
		require.Empty(t, vs)
	})
}
