package control

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
)

type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Consumed() uint64

	Data() (data []byte, err error)
	Enter() (err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	// depth is the number of open unbounded containers.
	depth int

	value    [1]byte
	t        Type
	finished bool

	data []byte

	err error
}

func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r:        r,
		finished: true,
	}
}

// seek moves the reading position to the end of the current field.
func (d *decoder) seek() (err error) {
	switch d.t {
	case Data1, Data2, DataSize:
		// Small enough to just read directly.
		_, err = d.Data()
		if err != nil {
			return err
		}
	case ContainerUnbounded:
		// Read tokens until the matching ContainerEnd is found. Depth
		// will be one less than our current.
		target := d.Depth() - 1
		d.finished = true

		for d.Next() {
			if d.Type() == ContainerEnd && target == d.Depth() {
				break
			}
		}

		return d.Err()
	}

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		d.err = d.seek()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.data = d.data[:0]
	d.finished = false

	// Read the field control block.
	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil

			if d.depth != 0 {
				d.err = Error.New("unexpected end of input: %d open containers", d.depth)
			}

			return false
		}

		d.err = oops.Trace(d.err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data:
		d.finished = true
	case ContainerUnbounded:
		d.depth++
	case ContainerEnd:
		if d.depth == 0 {
			d.err = Error.New("unexpected container end (not in a container)")

			return false
		}

		d.depth--
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return d.depth
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	if d.t != Data && d.t != Data1 && d.t != Data2 && d.t != DataSize {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if len(d.data) != 0 {
		return d.data, nil
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}

		return d.data, nil
	case DataSize:
		d.data = make([]byte, int(d.value[0]&d.t.Mask)+1)
		err = d.read(d.data)
	case Data1:
		d.data = make([]byte, 2)
		d.data[0] = d.value[0] & d.t.Mask
		err = d.read(d.data[1:])
	case Data2:
		d.data = make([]byte, 3)
		d.data[0] = d.value[0] & d.t.Mask
		err = d.read(d.data[1:])
	}
	if err != nil {
		return nil, err
	}

	d.finished = true

	return d.data, nil
}

func (d *decoder) read(buf []byte) (err error) {
	n, err := io.ReadFull(d.r, buf)
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return Error.New("truncated %s field: %v", d.t.Abbr, err)
	}

	return nil
}

// Enter informs the decoder that the ContainerUnbounded field should be
// entered. If the current field type is not ContainerUnbounded, then it
// returns ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.t != ContainerUnbounded {
		return oops.Trace(ErrInvalidOperation)
	}

	d.finished = true

	return nil
}
