package payload

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

var ErrSlotOverflow = errors.New("payload does not fit in element slot")

var _ io.Writer = (*Writer)(nil)

// Writer encodes little-endian values into a fixed-size element slot, in place. A write that would run past the end
// of the slot is dropped; Err reports the first such failure.
type Writer struct {
	buffer *bytes.Buffer
	limit  int
	err    *error
}

// NewWriter returns a Writer that fills slot from its start. Nothing is ever written beyond len(slot).
func NewWriter(slot []byte) Writer {
	return Writer{
		buffer: bytes.NewBuffer(slot[:0]),
		limit:  len(slot),
		err:    new(error),
	}
}

// Len returns the number of bytes written so far.
func (b Writer) Len() int {
	return b.buffer.Len()
}

// Available returns the number of bytes left in the slot.
func (b Writer) Available() int {
	return b.limit - b.buffer.Len()
}

func (b Writer) Bytes() []byte {
	return b.buffer.Bytes()
}

// Err returns the first overflow encountered, if any.
func (b Writer) Err() error {
	return *b.err
}

func (b Writer) Write(buf []byte) (n int, err error) {
	if *b.err != nil {
		return 0, *b.err
	}

	if len(buf) > b.Available() {
		*b.err = errors.Wrapf(ErrSlotOverflow, "writing %d byte(s) with %d left", len(buf), b.Available())
		return 0, *b.err
	}

	return b.buffer.Write(buf)
}

func (b Writer) WriteBytes(buf []byte) Writer {
	if 4+len(buf) > b.Available() && *b.err == nil {
		*b.err = errors.Wrapf(ErrSlotOverflow, "writing %d byte(s) with %d left", 4+len(buf), b.Available())
	}

	b.WriteUint32(uint32(len(buf)))
	b.Write(buf)

	return b
}

func (b Writer) WriteString(x string) Writer {
	b.WriteBytes([]byte(x))

	return b
}

func (b Writer) WriteUint8(x uint8) Writer {
	b.Write([]byte{x})

	return b
}

func (b Writer) WriteUint16(x uint16) Writer {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], x)
	b.Write(buf[:])

	return b
}

func (b Writer) WriteUint32(x uint32) Writer {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], x)
	b.Write(buf[:])

	return b
}

func (b Writer) WriteUint64(x uint64) Writer {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)
	b.Write(buf[:])

	return b
}

// Pad zero-fills the rest of the slot so no stale bytes from a previous element survive.
func (b Writer) Pad() Writer {
	if *b.err != nil {
		return b
	}

	for b.Available() > 0 {
		b.buffer.WriteByte(0)
	}

	return b
}
