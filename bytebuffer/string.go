package bytebuffer

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// WriteString writes s as a 4 byte UTF-8 byte count followed by the bytes.
// It panics if s is longer than math.MaxUint32 bytes.
func (b *ByteBuffer) WriteString(s string) {
	b.writeLength(uint64(len(s)))
	b.WriteRawString(s)
}

// ReadString reads a string written by WriteString.
//
// On any failure the read position is left where it was before the call.
func (b *ByteBuffer) ReadString() (s string, err error) {
	start := b.readIndex
	defer func() {
		if err != nil {
			b.readIndex = start
		}
	}()

	n, err := b.ReadUint32()
	if err != nil {
		return "", errors.Wrap(err, "string length")
	}

	if uint64(n) > uint64(b.Len()) {
		return "", errors.Wrapf(ErrOutOfRange, "string of %d bytes with %d unread", n, b.Len())
	}

	return b.ReadRawString(int(n))
}

// WriteRawString writes the UTF-8 bytes of s without a length prefix
func (b *ByteBuffer) WriteRawString(s string) {
	copy(b.claim(len(s)), s)
}

// ReadRawString reads n bytes and returns them as a string, failing with
// ErrInvalidEncoding if they are not valid UTF-8
func (b *ByteBuffer) ReadRawString(n int) (string, error) {
	if n < 0 || n > b.Len() {
		return "", errors.Wrapf(ErrOutOfRange, "string of %d bytes with %d unread", n, b.Len())
	}

	p := b.buffer[b.readIndex : b.readIndex+n]
	if !utf8.Valid(p) {
		return "", errors.Wrapf(ErrInvalidEncoding, "%d bytes are not valid utf-8", n)
	}

	b.readIndex += n
	return string(p), nil
}
