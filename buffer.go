package ringbuffer

import "github.com/pkg/errors"

var _ Engine = (*Buffer)(nil)

// Buffer is a ring buffer of fixed-size elements over caller-provided memory. The zero value is not initialized;
// call Init (or use New) before any other operation.
//
// Every operation validates all of its preconditions before touching any state, so a call that returns an error
// leaves the buffer exactly as it was.
type Buffer struct {
	conf Config

	head  int // offset at which the next inserted element starts
	tail  int // offset of the oldest live element
	count int // number of live elements

	maxElements int
}

// New returns a Buffer initialized with conf.
func New(conf Config) (*Buffer, error) {
	b := new(Buffer)
	if err := b.Init(conf); err != nil {
		return nil, err
	}
	return b, nil
}

// Init validates conf and resets b to an empty buffer over conf.Region. On failure b is left untouched.
func (b *Buffer) Init(conf Config) error {
	if b == nil {
		return errors.Wrap(ErrInvalidArgument, "buffer is nil")
	}

	if err := conf.Validate(); err != nil {
		return err
	}

	*b = Buffer{
		conf:        conf,
		maxElements: conf.MaxElements(),
	}

	return nil
}

// Deinit clears the configuration and every cursor, leaving b as it was before Init. The region itself is not
// modified.
func (b *Buffer) Deinit() error {
	if b == nil {
		return errors.Wrap(ErrInvalidArgument, "buffer is nil")
	}

	if b.conf.Region == nil {
		return ErrNotInitialized
	}

	*b = Buffer{}

	return nil
}

// Insert copies the first ElementSize bytes of src into the buffer. When the buffer is full it either fails with
// ErrBufferFull or, if the buffer was configured to overwrite, evicts the oldest element.
func (b *Buffer) Insert(src []byte) error {
	if err := b.checkArg(src, "source"); err != nil {
		return err
	}

	full := b.count >= b.maxElements
	if full && !b.conf.Overwrite {
		return ErrBufferFull
	}

	b.write(b.head, src)
	b.head = b.advance(b.head)

	if full {
		b.tail = b.advance(b.tail)
	} else {
		b.count++
	}

	return nil
}

// Retrieve copies the oldest element into the first ElementSize bytes of dst and removes it from the buffer.
func (b *Buffer) Retrieve(dst []byte) error {
	if err := b.checkArg(dst, "destination"); err != nil {
		return err
	}

	if b.count == 0 {
		return ErrBufferEmpty
	}

	b.read(b.tail, dst)
	b.tail = b.advance(b.tail)
	b.count--

	return nil
}

// Peek copies the element at index into dst. Index 0 is the oldest element. No cursor moves.
func (b *Buffer) Peek(index int, dst []byte) error {
	if err := b.checkIndex(index, dst, "destination"); err != nil {
		return err
	}

	b.read(b.offset(index), dst)

	return nil
}

// Replace overwrites the element at index with src. Index 0 is the oldest element. No cursor moves.
func (b *Buffer) Replace(index int, src []byte) error {
	if err := b.checkIndex(index, src, "source"); err != nil {
		return err
	}

	b.write(b.offset(index), src)

	return nil
}

// IsEmpty reports whether no element is stored.
func (b *Buffer) IsEmpty() (bool, error) {
	if err := b.checkInit(); err != nil {
		return false, err
	}
	return b.count == 0, nil
}

// IsFull reports whether the buffer holds as many elements as fit in the region.
func (b *Buffer) IsFull() (bool, error) {
	if err := b.checkInit(); err != nil {
		return false, err
	}
	return b.count == b.maxElements, nil
}

func (b *Buffer) FreeElements() (int, error) {
	if err := b.checkInit(); err != nil {
		return 0, err
	}
	return b.maxElements - b.count, nil
}

func (b *Buffer) ElementSize() (int, error) {
	if err := b.checkInit(); err != nil {
		return 0, err
	}
	return b.conf.ElementSize, nil
}

// Len returns the number of stored elements, or 0 if b is not initialized.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.count
}

// Cap returns the maximum number of elements, or 0 if b is not initialized.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return b.maxElements
}

func (b *Buffer) checkInit() error {
	if b == nil {
		return errors.Wrap(ErrInvalidArgument, "buffer is nil")
	}

	if b.conf.Region == nil {
		return ErrNotInitialized
	}

	return nil
}

// checkArg validates the receiver and a caller slice that must hold at least one element.
func (b *Buffer) checkArg(p []byte, what string) error {
	if b == nil {
		return errors.Wrap(ErrInvalidArgument, "buffer is nil")
	}

	if p == nil {
		return errors.Wrapf(ErrInvalidArgument, "%s is nil", what)
	}

	if b.conf.Region == nil {
		return ErrNotInitialized
	}

	if len(p) < b.conf.ElementSize {
		return errors.Wrapf(ErrInvalidArgument, "%s holds %d bytes, element size is %d", what, len(p), b.conf.ElementSize)
	}

	return nil
}

func (b *Buffer) checkIndex(index int, p []byte, what string) error {
	if err := b.checkArg(p, what); err != nil {
		return err
	}

	if b.count == 0 {
		return ErrBufferEmpty
	}

	if index < 0 || index >= b.count {
		return errors.Wrapf(ErrInvalidIndex, "index %d, %d element(s) stored", index, b.count)
	}

	return nil
}
