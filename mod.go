// Package ringbuffer is a fixed-capacity circular buffer of fixed-size elements for resource-constrained
// environments.
//
// The caller supplies the backing memory as a byte slice (the region) together with an element size. A Buffer never
// allocates, never copies the region, and never retains anything but a reference to it: the caller owns the region
// and must keep it alive, and untouched by anyone else, until the Buffer is deinitialized.
//
// Elements are stored back to back around the region. An element whose bytes run past the end of the region wraps
// around and continues at offset zero. When the element size does not evenly divide the region size, capacity is
// rounded down and the trailing bytes simply take part in the wrap like any other region bytes.
//
// A Buffer is not safe for concurrent use. Package locked provides a synchronized adapter implementing the same
// Engine interface, and packages traced and metrics layer logging and Prometheus instrumentation on top of any Engine.
package ringbuffer

const (
	// Name is the component name.
	Name = "RING-BUFFER"

	// Version is the component version with respect to semantic versioning.
	Version = "1.0.0"
)

//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks github.com/perlin-network/ringbuffer Engine

// Engine is the operation set of a ring buffer. It is implemented by *Buffer and by every decorator built on top of
// one, so that synchronization, tracing and instrumentation compose.
type Engine interface {
	// Deinit clears all state. Every later call but a re-initialization fails with ErrNotInitialized.
	Deinit() error

	// Insert copies one element from src into the buffer.
	Insert(src []byte) error

	// Retrieve copies the oldest element into dst and removes it.
	Retrieve(dst []byte) error

	// Peek copies the element at index, counted from the oldest, into dst without removing it.
	Peek(index int, dst []byte) error

	// Replace overwrites the element at index, counted from the oldest, with src in place.
	Replace(index int, src []byte) error

	IsEmpty() (bool, error)
	IsFull() (bool, error)

	// FreeElements returns how many elements may be inserted before the buffer is full.
	FreeElements() (int, error)

	// ElementSize returns the configured element size in bytes.
	ElementSize() (int, error)
}
