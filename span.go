package ringbuffer

// span returns the region bytes of the element starting at offset off. first runs from off towards the end of the
// region; second is the part that wrapped around to offset zero and is empty unless the element straddles the end.
func (b *Buffer) span(off int) (first, second []byte) {
	region, size := b.conf.Region, b.conf.ElementSize

	if end := off + size; end <= len(region) {
		return region[off:end], nil
	}

	return region[off:], region[:size-(len(region)-off)]
}

// write copies one element from src into the region at offset off.
func (b *Buffer) write(off int, src []byte) {
	first, second := b.span(off)
	n := copy(first, src)
	copy(second, src[n:])
}

// read copies one element at offset off of the region into dst.
func (b *Buffer) read(off int, dst []byte) {
	first, second := b.span(off)
	n := copy(dst, first)
	copy(dst[n:], second)
}

// advance returns the offset one element past off.
func (b *Buffer) advance(off int) int {
	return (off + b.conf.ElementSize) % len(b.conf.Region)
}

// offset returns the offset of the element at logical index i, counted from the oldest.
func (b *Buffer) offset(i int) int {
	return (b.tail + i*b.conf.ElementSize) % len(b.conf.Region)
}
