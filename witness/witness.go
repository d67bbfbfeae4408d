package witness

import (
	"io"

	"github.com/zeebo/errs"

	"github.com/radojevicMihailo/proof-perceptron/control"
	"github.com/radojevicMihailo/proof-perceptron/zkfloat"
)

// Error is the class of witness errors.
var Error = errs.Class("witness")

// Encoder writes float vectors to a stream.
type Encoder struct {
	ce control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		ce: control.NewEncoder(w),
	}
}

// Encode writes a single vector.
func (e *Encoder) Encode(fs []zkfloat.Float) (err error) {
	defer Error.WrapP(&err)

	return e.ce.Unbound(func(ce control.Encoder) (err error) {
		for _, f := range fs {
			data, err := f.MarshalBinary()
			if err != nil {
				return err
			}

			err = ce.Data(data)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// EncodeAll writes the vectors in order.
func (e *Encoder) EncodeAll(vs ...[]zkfloat.Float) (err error) {
	defer Error.WrapP(&err)

	for _, fs := range vs {
		err = e.Encode(fs)
		if err != nil {
			return err
		}
	}

	return nil
}

// Decoder reads float vectors from a stream.
type Decoder struct {
	cd control.Decoder

	v   []zkfloat.Float
	err error
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		cd: control.NewDecoder(r),
	}
}

// Next reads the next vector. It returns false at the end of the stream or on
// error; check Err to tell them apart.
func (d *Decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.v = nil

	d.err = d.next()
	if d.err != nil {
		d.v = nil

		return false
	}

	return d.v != nil
}

func (d *Decoder) next() (err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		return d.cd.Err()
	}

	if d.cd.Type() != control.ContainerUnbounded {
		return Error.New("expected vector, got %q", d.cd.Type().Abbr)
	}

	err = d.cd.Enter()
	if err != nil {
		return err
	}

	v := []zkfloat.Float{}

	for d.cd.Next() {
		switch d.cd.Type() {
		case control.ContainerEnd:
			d.v = v

			return nil
		case control.Data, control.Data1, control.Data2, control.DataSize:
			data, err := d.cd.Data()
			if err != nil {
				return err
			}

			f := zkfloat.Float{}

			err = f.UnmarshalBinary(data)
			if err != nil {
				return err
			}

			v = append(v, f)
		default:
			return Error.New("expected float, got %q", d.cd.Type().Abbr)
		}
	}

	err = d.cd.Err()
	if err != nil {
		return err
	}

	return Error.New("unterminated vector")
}

// Vector returns the vector read by the last call to Next.
func (d *Decoder) Vector() []zkfloat.Float {
	return d.v
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

// Consumed returns the number of bytes read.
func (d *Decoder) Consumed() uint64 {
	return d.cd.Consumed()
}

// DecodeAll reads vectors until the end of the stream.
func (d *Decoder) DecodeAll() (vs [][]zkfloat.Float, err error) {
	defer Error.WrapP(&err)

	for d.Next() {
		vs = append(vs, d.Vector())
	}

	return vs, d.Err()
}
