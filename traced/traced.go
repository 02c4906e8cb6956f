// Package traced logs every operation performed on a ringbuffer.Engine.
//
// Successful operations and capacity conditions (empty, full, bad index) are logged at a configurable glog
// verbosity; misuse (invalid arguments, use before Init) is always logged as a warning.
package traced

import (
	"github.com/perlin-network/ringbuffer"
	"github.com/perlin-network/ringbuffer/log"
)

var _ ringbuffer.Engine = (*Buffer)(nil)

type Option func(o *options)

type options struct {
	name  string
	level log.Level
}

var defaultOptions = options{
	name:  ringbuffer.Name,
	level: log.LevelDebug,
}

// WithName sets the name identifying the buffer in log lines.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLevel sets the verbosity at which operations are logged.
func WithLevel(level log.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// Buffer forwards to an Engine and logs each call.
type Buffer struct {
	engine ringbuffer.Engine
	opts   options
}

func Wrap(engine ringbuffer.Engine, opts ...Option) *Buffer {
	b := &Buffer{engine: engine, opts: defaultOptions}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

func (b *Buffer) Deinit() error {
	return b.trace("deinit", -1, b.engine.Deinit())
}

func (b *Buffer) Insert(src []byte) error {
	return b.trace("insert", -1, b.engine.Insert(src))
}

func (b *Buffer) Retrieve(dst []byte) error {
	return b.trace("retrieve", -1, b.engine.Retrieve(dst))
}

func (b *Buffer) Peek(index int, dst []byte) error {
	return b.trace("peek", index, b.engine.Peek(index, dst))
}

func (b *Buffer) Replace(index int, src []byte) error {
	return b.trace("replace", index, b.engine.Replace(index, src))
}

func (b *Buffer) IsEmpty() (bool, error) {
	empty, err := b.engine.IsEmpty()
	return empty, b.trace("is_empty", -1, err)
}

func (b *Buffer) IsFull() (bool, error) {
	full, err := b.engine.IsFull()
	return full, b.trace("is_full", -1, err)
}

func (b *Buffer) FreeElements() (int, error) {
	free, err := b.engine.FreeElements()
	return free, b.trace("free_elements", -1, err)
}

func (b *Buffer) ElementSize() (int, error) {
	size, err := b.engine.ElementSize()
	return size, b.trace("element_size", -1, err)
}

// trace logs the outcome of op and passes err through. index is logged when non-negative.
func (b *Buffer) trace(op string, index int, err error) error {
	status := ringbuffer.StatusOf(err)

	switch status {
	case ringbuffer.StatusInvalidArgument, ringbuffer.StatusNotInitialized, ringbuffer.StatusError:
		log.Warn(b.opts.name, op, "failed:", err)
	default:
		if !log.Enabled(b.opts.level) {
			break
		}
		if index >= 0 {
			log.Atf(b.opts.level, "%s %s[%d] %s", b.opts.name, op, index, status)
		} else {
			log.Atf(b.opts.level, "%s %s %s", b.opts.name, op, status)
		}
	}

	return err
}
