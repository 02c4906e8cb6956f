// Package typed layers typed values over the byte-oriented ring buffer engine using a Codec per element type.
package typed

import (
	"github.com/pkg/errors"

	"github.com/perlin-network/ringbuffer"
)

// Ring stores values of T in a ringbuffer.Engine, one element per value. It is as safe for concurrent use as the
// engine it wraps.
type Ring[T any] struct {
	engine ringbuffer.Engine
	codec  Codec[T]
}

// New binds codec to engine. The codec size must equal the engine's element size.
func New[T any](engine ringbuffer.Engine, codec Codec[T]) (*Ring[T], error) {
	size, err := engine.ElementSize()
	if err != nil {
		return nil, err
	}

	if size != codec.Size() {
		return nil, errors.Wrapf(ringbuffer.ErrInvalidArgument, "codec encodes %d byte(s), element size is %d", codec.Size(), size)
	}

	return &Ring[T]{engine: engine, codec: codec}, nil
}

// Push encodes v and inserts it.
func (r *Ring[T]) Push(v T) error {
	slot := make([]byte, r.codec.Size())
	if err := r.codec.Encode(slot, v); err != nil {
		return err
	}
	return r.engine.Insert(slot)
}

// Pop retrieves and decodes the oldest value.
func (r *Ring[T]) Pop() (T, error) {
	slot := make([]byte, r.codec.Size())
	if err := r.engine.Retrieve(slot); err != nil {
		var zero T
		return zero, err
	}
	return r.codec.Decode(slot)
}

// Peek decodes the value at index without removing it. Index 0 is the oldest value.
func (r *Ring[T]) Peek(index int) (T, error) {
	slot := make([]byte, r.codec.Size())
	if err := r.engine.Peek(index, slot); err != nil {
		var zero T
		return zero, err
	}
	return r.codec.Decode(slot)
}

// Replace encodes v over the value at index.
func (r *Ring[T]) Replace(index int, v T) error {
	slot := make([]byte, r.codec.Size())
	if err := r.codec.Encode(slot, v); err != nil {
		return err
	}
	return r.engine.Replace(index, slot)
}

// Values decodes every stored value, oldest first, without removing any.
func (r *Ring[T]) Values() ([]T, error) {
	var values []T
	for i := 0; ; i++ {
		v, err := r.Peek(i)
		switch errors.Cause(err) {
		case nil:
			values = append(values, v)
		case ringbuffer.ErrInvalidIndex, ringbuffer.ErrBufferEmpty:
			return values, nil
		default:
			return nil, err
		}
	}
}

func (r *Ring[T]) IsEmpty() (bool, error)     { return r.engine.IsEmpty() }
func (r *Ring[T]) IsFull() (bool, error)      { return r.engine.IsFull() }
func (r *Ring[T]) FreeElements() (int, error) { return r.engine.FreeElements() }

// Engine returns the underlying engine.
func (r *Ring[T]) Engine() ringbuffer.Engine {
	return r.engine
}
