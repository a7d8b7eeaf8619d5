package bytebuffer

// Rewrite moves the write position back to the read position and runs fn,
// so whatever fn writes overwrites the unread span from its start.
//
// Afterwards the write position is the further of where it was before the
// call and where fn left it: a short patch keeps the rest of the data, a long
// one extends it. The position is merged even if fn fails or panics.
func (b *ByteBuffer) Rewrite(fn func(*ByteBuffer) error) error {
	saved := b.writeIndex
	b.writeIndex = b.readIndex

	defer func() {
		if saved > b.writeIndex {
			b.writeIndex = saved
		}
	}()

	return fn(b)
}

// Reread moves the read position back to the start of the buffer and runs
// fn, so it can read everything written so far. Writes made by fn still
// append at the write position.
//
// The read position is restored afterwards, even if fn fails or panics.
func (b *ByteBuffer) Reread(fn func(*ByteBuffer) error) error {
	saved := b.readIndex
	b.readIndex = 0

	defer func() {
		// fn may have cleared the buffer
		if saved > b.writeIndex {
			saved = b.writeIndex
		}
		b.readIndex = saved
	}()

	return fn(b)
}
