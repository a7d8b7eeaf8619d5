package bytebuffer

import (
	"io"

	"github.com/pkg/errors"
)

// MinCapacity is the smallest backing store a ByteBuffer is created with
const MinCapacity = 4

// ByteBuffer is a growable byte store with a read and a write position.
// The zero value is an empty buffer ready to use.
//
// The bytes between the read position and the write position are the unread
// span, everything the buffer hands out (Bytes, View, String, Len) refers to
// that span only.
type ByteBuffer struct {
	buffer     []byte
	readIndex  int
	writeIndex int
}

// NewByteBuffer creates a new empty ByteBuffer with at least n bytes of capacity
func NewByteBuffer(n int) *ByteBuffer {
	if n < MinCapacity {
		n = MinCapacity
	}

	return &ByteBuffer{
		buffer: make([]byte, n),
	}
}

// NewByteBufferSlice creates a ByteBuffer whose unread span is the passed
// slice. The slice is used as the backing store, so the caller gives up
// ownership of it.
func NewByteBufferSlice(buffer []byte) *ByteBuffer {
	if cap(buffer) < MinCapacity {
		b := make([]byte, MinCapacity)
		copy(b, buffer)
		return &ByteBuffer{buffer: b, writeIndex: len(buffer)}
	}

	return &ByteBuffer{
		buffer:     buffer[:cap(buffer)],
		writeIndex: len(buffer),
	}
}

// Len returns the number of unread bytes
func (b *ByteBuffer) Len() int { return b.writeIndex - b.readIndex }

// Cap returns the size of the backing store
func (b *ByteBuffer) Cap() int { return len(b.buffer) }

// ReadPos returns the current read position
func (b *ByteBuffer) ReadPos() int { return b.readIndex }

// WritePos returns the current write position
func (b *ByteBuffer) WritePos() int { return b.writeIndex }

// Clear resets both positions to zero, the backing store is kept as is
func (b *ByteBuffer) Clear() {
	b.readIndex = 0
	b.writeIndex = 0
}

// grow makes room for n more bytes at the write position, doubling the
// backing store as many times as needed. Any View taken before a grow
// may point at the old store.
func (b *ByteBuffer) grow(n int) {
	need := b.writeIndex + n
	if need <= len(b.buffer) {
		return
	}

	size := len(b.buffer) * 2
	if size < MinCapacity {
		size = MinCapacity
	}
	for size < need {
		size *= 2
	}

	buffer := make([]byte, size)
	copy(buffer, b.buffer[:b.writeIndex])
	b.buffer = buffer
}

// claim reserves n bytes at the write position and returns them for filling
func (b *ByteBuffer) claim(n int) []byte {
	b.grow(n)
	p := b.buffer[b.writeIndex : b.writeIndex+n]
	b.writeIndex += n
	return p
}

// next returns the next n unread bytes and moves the read position past them
func (b *ByteBuffer) next(n int) ([]byte, error) {
	if n < 0 || n > b.Len() {
		return nil, errors.Wrapf(ErrOutOfRange, "read of %d bytes with %d unread", n, b.Len())
	}

	p := b.buffer[b.readIndex : b.readIndex+n : b.readIndex+n]
	b.readIndex += n
	return p, nil
}

// WriteBytes appends the passed bytes at the write position
func (b *ByteBuffer) WriteBytes(data []byte) {
	copy(b.claim(len(data)), data)
}

func (b *ByteBuffer) Write(data []byte) (int, error) {
	b.WriteBytes(data)
	return len(data), nil
}

// WriteByte appends a single byte, it never fails
func (b *ByteBuffer) WriteByte(c byte) error {
	b.claim(1)[0] = c
	return nil
}

// ReadBytes returns the next n unread bytes without copying them.
//
// The returned slice shares the backing store and is only valid until the
// next write or Clear.
func (b *ByteBuffer) ReadBytes(n int) ([]byte, error) { return b.next(n) }

// ReadByte reads a single byte
func (b *ByteBuffer) ReadByte() (byte, error) {
	p, err := b.next(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// Read copies unread bytes into p, returning io.EOF once nothing is left
func (b *ByteBuffer) Read(p []byte) (int, error) {
	if b.Len() == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := copy(p, b.buffer[b.readIndex:b.writeIndex])
	b.readIndex += n
	return n, nil
}

// WriteTo writes the unread span to w and consumes it
func (b *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.View())
	b.readIndex += n
	if err != nil {
		return int64(n), err
	}
	if n < b.Len() {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// Skip moves the read position forward by n bytes
func (b *ByteBuffer) Skip(n int) error {
	_, err := b.next(n)
	return err
}

// Bytes returns a copy of the unread span. Later writes to the buffer never
// show up in a returned copy.
func (b *ByteBuffer) Bytes() []byte {
	p := make([]byte, b.Len())
	copy(p, b.buffer[b.readIndex:b.writeIndex])
	return p
}

// View returns the unread span without copying. It stays valid only until
// the next write, growth or Clear, and appending to it never touches the
// buffer.
func (b *ByteBuffer) View() []byte {
	return b.buffer[b.readIndex:b.writeIndex:b.writeIndex]
}
