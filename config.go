package ringbuffer

import "github.com/pkg/errors"

// Config describes the memory a Buffer manages. It is read-only once passed to Init.
type Config struct {
	// Region is the backing memory. The Buffer borrows it and never frees, grows or copies it.
	Region []byte

	// ElementSize is the number of bytes of one element. It must be positive and no larger than len(Region).
	ElementSize int

	// Overwrite makes inserting into a full buffer evict the oldest element instead of failing with ErrBufferFull.
	Overwrite bool
}

// Validate reports whether c describes a usable buffer. Violations wrap ErrInvalidArgument.
func (c Config) Validate() error {
	if c.Region == nil {
		return errors.Wrap(ErrInvalidArgument, "region is nil")
	}

	if len(c.Region) == 0 {
		return errors.Wrap(ErrInvalidArgument, "region is empty")
	}

	if c.ElementSize <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "element size must be positive, got %d", c.ElementSize)
	}

	if c.ElementSize > len(c.Region) {
		return errors.Wrapf(ErrInvalidArgument, "element size %d exceeds region size %d", c.ElementSize, len(c.Region))
	}

	return nil
}

// MaxElements returns how many whole elements fit in the region. It does not validate c.
func (c Config) MaxElements() int {
	if c.ElementSize <= 0 {
		return 0
	}
	return len(c.Region) / c.ElementSize
}
