package control

import (
	"io"
)

type Encoder interface {
	Data(data []byte) (err error)
	Unbound(fn func(Encoder) error) (err error)
}

type encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

// Data writes data in the smallest block that holds it.
func (e *encoder) Data(data []byte) (err error) {
	defer Error.WrapP(&err)

	size := len(data)

	var block []byte

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		block = []byte{
			Data.Prefix | data[0],
		}
	case size == 2 && data[0]&Data1.Mask == data[0]:
		block = []byte{
			Data1.Prefix | data[0],
			data[1],
		}
	case size == 3 && data[0]&Data2.Mask == data[0]:
		block = []byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		}
	case size <= int(DataSize.Mask)+1:
		block = append(
			[]byte{DataSize.Prefix | byte(size-1)},
			data...,
		)
	default:
		return Error.New("too large: size=%d", size)
	}

	_, err = e.w.Write(block)
	if err != nil {
		return err
	}

	return nil
}

// Unbound writes the fields fn writes inside an unbounded container.
func (e *encoder) Unbound(fn func(Encoder) error) (err error) {
	defer Error.WrapP(&err)

	_, err = e.w.Write([]byte{
		ContainerUnbounded.Prefix,
	})
	if err != nil {
		return err
	}

	err = fn(e)
	if err != nil {
		return err
	}

	_, err = e.w.Write([]byte{
		ContainerEnd.Prefix,
	})
	if err != nil {
		return err
	}

	return nil
}
