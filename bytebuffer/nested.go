package bytebuffer

import (
	"math"

	"github.com/pkg/errors"
)

// WriteBuffer writes the unread span of src with a 4 byte length prefix.
// src is only looked at, its positions do not move. It panics if src holds
// more than math.MaxUint32 unread bytes.
func (b *ByteBuffer) WriteBuffer(src *ByteBuffer) {
	view := src.View()
	b.writeLength(uint64(len(view)))
	b.WriteBytes(view)
}

// writeLength writes the 4 byte prefix used by strings and nested buffers
func (b *ByteBuffer) writeLength(n uint64) {
	if n > math.MaxUint32 {
		panic(errors.Wrapf(ErrValueTooLarge, "length %d does not fit a 4 byte prefix", n))
	}
	b.WriteUint32(uint32(n))
}

// ReadBuffer reads a buffer written by WriteBuffer and appends its bytes to
// dst, which is returned so reads can be chained on it. A nil dst gets a
// fresh ByteBuffer.
//
// On failure the read position is left where it was before the call.
func (b *ByteBuffer) ReadBuffer(dst *ByteBuffer) (*ByteBuffer, error) {
	start := b.readIndex

	n, err := b.ReadUint32()
	if err != nil {
		return dst, errors.Wrap(err, "buffer length")
	}

	if uint64(n) > uint64(b.Len()) {
		unread := b.Len()
		b.readIndex = start
		return dst, errors.Wrapf(ErrOutOfRange, "buffer of %d bytes with %d unread", n, unread)
	}

	p, _ := b.next(int(n))
	if dst == nil {
		dst = NewByteBuffer(len(p))
	}
	dst.WriteBytes(p)
	return dst, nil
}
