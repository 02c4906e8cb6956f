// Package locked provides a ring buffer that is safe for concurrent use by serializing every operation of an
// underlying ringbuffer.Engine behind a mutex.
package locked

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/perlin-network/ringbuffer"
)

var _ ringbuffer.Engine = (*Buffer)(nil)

// Buffer guards an Engine with a mutex. All of its methods may be called from multiple goroutines.
type Buffer struct {
	mu     sync.Mutex
	engine ringbuffer.Engine

	// changed is closed and replaced whenever an element is inserted or removed, waking InsertWait/RetrieveWait.
	changed chan struct{}
}

// New initializes a core ring buffer over conf and wraps it.
func New(conf ringbuffer.Config) (*Buffer, error) {
	engine, err := ringbuffer.New(conf)
	if err != nil {
		return nil, err
	}
	return Wrap(engine), nil
}

// Wrap guards engine. The caller must not use engine directly afterwards.
func Wrap(engine ringbuffer.Engine) *Buffer {
	return &Buffer{engine: engine, changed: make(chan struct{})}
}

func (b *Buffer) Deinit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.engine.Deinit()
	if err == nil {
		b.notify()
	}

	return err
}

func (b *Buffer) Insert(src []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.engine.Insert(src)
	if err == nil {
		b.notify()
	}

	return err
}

func (b *Buffer) Retrieve(dst []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.engine.Retrieve(dst)
	if err == nil {
		b.notify()
	}

	return err
}

func (b *Buffer) Peek(index int, dst []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.engine.Peek(index, dst)
}

func (b *Buffer) Replace(index int, src []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.engine.Replace(index, src)
}

func (b *Buffer) IsEmpty() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.engine.IsEmpty()
}

func (b *Buffer) IsFull() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.engine.IsFull()
}

func (b *Buffer) FreeElements() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.engine.FreeElements()
}

func (b *Buffer) ElementSize() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.engine.ElementSize()
}

// Do runs fn with exclusive access to the underlying engine, so that a sequence of operations (say, a Peek followed
// by a Replace) is not interleaved with other callers. fn must not call methods on b.
func (b *Buffer) Do(fn func(engine ringbuffer.Engine) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := fn(b.engine)
	b.notify()

	return err
}

// InsertWait inserts src, waiting for room while the buffer is full. It returns ctx.Err() if ctx is done first.
// Buffers configured to overwrite never wait.
func (b *Buffer) InsertWait(ctx context.Context, src []byte) error {
	return b.wait(ctx, ringbuffer.ErrBufferFull, func() error {
		return b.engine.Insert(src)
	})
}

// RetrieveWait retrieves the oldest element into dst, waiting while the buffer is empty. It returns ctx.Err() if ctx
// is done first.
func (b *Buffer) RetrieveWait(ctx context.Context, dst []byte) error {
	return b.wait(ctx, ringbuffer.ErrBufferEmpty, func() error {
		return b.engine.Retrieve(dst)
	})
}

// wait retries op for as long as it fails with retryOn, sleeping until the contents change in between.
func (b *Buffer) wait(ctx context.Context, retryOn error, op func() error) error {
	for {
		b.mu.Lock()
		err := op()
		if err == nil {
			b.notify()
		}
		changed := b.changed
		b.mu.Unlock()

		if errors.Cause(err) != retryOn {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

// notify wakes every waiter. Must be called with b.mu held.
func (b *Buffer) notify() {
	close(b.changed)
	b.changed = make(chan struct{})
}
