package typed

import (
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/perlin-network/ringbuffer/payload"
)

// Codec converts values of T to and from fixed-size element slots.
type Codec[T any] interface {
	// Size is the slot size in bytes; it must equal the element size of the buffer.
	Size() int

	// Encode writes v into dst, which is exactly Size bytes long.
	Encode(dst []byte, v T) error

	// Decode reads a value from src, which is exactly Size bytes long.
	Decode(src []byte) (T, error)
}

type uint8Codec struct{}

func (uint8Codec) Size() int { return 1 }

func (uint8Codec) Encode(dst []byte, v uint8) error {
	return payload.NewWriter(dst).WriteUint8(v).Err()
}

func (uint8Codec) Decode(src []byte) (uint8, error) {
	return payload.NewReader(src).ReadUint8()
}

type uint16Codec struct{}

func (uint16Codec) Size() int { return 2 }

func (uint16Codec) Encode(dst []byte, v uint16) error {
	return payload.NewWriter(dst).WriteUint16(v).Err()
}

func (uint16Codec) Decode(src []byte) (uint16, error) {
	return payload.NewReader(src).ReadUint16()
}

type uint32Codec struct{}

func (uint32Codec) Size() int { return 4 }

func (uint32Codec) Encode(dst []byte, v uint32) error {
	return payload.NewWriter(dst).WriteUint32(v).Err()
}

func (uint32Codec) Decode(src []byte) (uint32, error) {
	return payload.NewReader(src).ReadUint32()
}

type uint64Codec struct{}

func (uint64Codec) Size() int { return 8 }

func (uint64Codec) Encode(dst []byte, v uint64) error {
	return payload.NewWriter(dst).WriteUint64(v).Err()
}

func (uint64Codec) Decode(src []byte) (uint64, error) {
	return payload.NewReader(src).ReadUint64()
}

type int64Codec struct{}

func (int64Codec) Size() int { return 8 }

func (int64Codec) Encode(dst []byte, v int64) error {
	return payload.NewWriter(dst).WriteUint64(uint64(v)).Err()
}

func (int64Codec) Decode(src []byte) (int64, error) {
	v, err := payload.NewReader(src).ReadUint64()
	return int64(v), err
}

// Little-endian integer codecs.
var (
	Uint8  Codec[uint8]  = uint8Codec{}
	Uint16 Codec[uint16] = uint16Codec{}
	Uint32 Codec[uint32] = uint32Codec{}
	Uint64 Codec[uint64] = uint64Codec{}
	Int64  Codec[int64]  = int64Codec{}
)

// ProtoCodec stores a protobuf message per slot as a little-endian uint32 length followed by the marshaled message,
// zero-padded to the slot size. Messages whose encoding does not fit fail with payload.ErrSlotOverflow.
type ProtoCodec[T proto.Message] struct {
	size       int
	newMessage func() T
}

// NewProtoCodec returns a codec for slots of size bytes. newMessage must return an empty message to decode into.
func NewProtoCodec[T proto.Message](size int, newMessage func() T) *ProtoCodec[T] {
	return &ProtoCodec[T]{size: size, newMessage: newMessage}
}

func (c *ProtoCodec[T]) Size() int { return c.size }

func (c *ProtoCodec[T]) Encode(dst []byte, v T) error {
	buf, err := proto.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal element")
	}

	return payload.NewWriter(dst).WriteBytes(buf).Pad().Err()
}

func (c *ProtoCodec[T]) Decode(src []byte) (T, error) {
	msg := c.newMessage()

	buf, err := payload.NewReader(src).ReadBytes()
	if err != nil {
		return msg, err
	}

	if err := proto.Unmarshal(buf, msg); err != nil {
		return msg, errors.Wrap(err, "failed to unmarshal element")
	}

	return msg, nil
}
