package payload

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

var _ io.Reader = (*Reader)(nil)

// Reader decodes little-endian values from an element slot.
type Reader struct {
	reader *bytes.Reader
}

func NewReader(slot []byte) Reader {
	return Reader{
		reader: bytes.NewReader(slot),
	}
}

// Len returns the number of bytes that have not yet been read so far.
func (r Reader) Len() int {
	return r.reader.Len()
}

func (r Reader) Read(b []byte) (n int, err error) {
	return r.reader.Read(b)
}

func (r Reader) ReadBytes() ([]byte, error) {
	raw, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	if uint64(raw) > uint64(r.reader.Len()) {
		return nil, errors.Errorf("bytes out of bounds: length %d with %d byte(s) left", raw, r.reader.Len())
	}

	buf := make([]byte, raw)
	if _, err := io.ReadFull(r.reader, buf); err != nil {
		return nil, errors.Wrap(err, "failed to read bytes")
	}

	return buf, nil
}

func (r Reader) ReadString() (string, error) {
	bytes, err := r.ReadBytes()
	return string(bytes), err
}

func (r Reader) ReadByte() (byte, error) {
	return r.reader.ReadByte()
}

func (r Reader) ReadUint8() (uint8, error) {
	return r.reader.ReadByte()
}

func (r Reader) ReadUint16() (uint16, error) {
	var buf [2]byte
	err := r.readFull(buf[:])
	return binary.LittleEndian.Uint16(buf[:]), err
}

func (r Reader) ReadUint32() (uint32, error) {
	var buf [4]byte
	err := r.readFull(buf[:])
	return binary.LittleEndian.Uint32(buf[:]), err
}

func (r Reader) ReadUint64() (uint64, error) {
	var buf [8]byte
	err := r.readFull(buf[:])
	return binary.LittleEndian.Uint64(buf[:]), err
}

func (r Reader) readFull(buf []byte) error {
	if _, err := io.ReadFull(r.reader, buf); err != nil {
		return errors.Wrapf(err, "failed to read %d byte(s)", len(buf))
	}
	return nil
}
