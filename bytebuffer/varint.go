package bytebuffer

import "github.com/pkg/errors"

// largest value representable by each variable-length encoding width
const (
	MaxVarint1 = 0x3F
	MaxVarint2 = 0x3FFF
	MaxVarint4 = 0x3FFFFFFF
	MaxVarint  = 0x3FFFFFFFFFFFFFFF
)

// the top 2 bits of the first byte carry the encoding width
const (
	varintTag1    = 0x00
	varintTag2    = 0x40
	varintTag4    = 0x80
	varintTag8    = 0xC0
	varintTagMask = 0xC0
)

// VarintSize returns the number of bytes v encodes to, or 0 if v is above
// MaxVarint
func VarintSize(v uint64) int {
	switch {
	case v <= MaxVarint1:
		return 1
	case v <= MaxVarint2:
		return 2
	case v <= MaxVarint4:
		return 4
	case v <= MaxVarint:
		return 8
	}
	return 0
}

// varintLen maps the first byte of an encoding to its total width
func varintLen(first byte) int {
	switch first & varintTagMask {
	case varintTag1:
		return 1
	case varintTag2:
		return 2
	case varintTag4:
		return 4
	}
	return 8
}

// WriteVarint writes v in the smallest of the 1, 2, 4 or 8 byte encodings
// that fits it. Values above MaxVarint are rejected.
func (b *ByteBuffer) WriteVarint(v uint64) error {
	switch n := VarintSize(v); n {
	case 1:
		b.WriteUint8(uint8(v))
	case 2:
		p := b.claim(2)
		p[0] = varintTag2 | byte(v>>8)
		p[1] = byte(v)
	case 4:
		p := b.claim(4)
		p[0] = varintTag4 | byte(v>>24)
		p[1] = byte(v >> 16)
		p[2] = byte(v >> 8)
		p[3] = byte(v)
	case 8:
		p := b.claim(8)
		p[0] = varintTag8 | byte(v>>56)
		for i := 1; i < 8; i++ {
			p[i] = byte(v >> uint(56-8*i))
		}
	default:
		return errors.Wrapf(ErrValueTooLarge, "varint %#x above %#x", v, uint64(MaxVarint))
	}
	return nil
}

// ReadVarint reads a variable-length integer. If the buffer holds fewer bytes
// than the first byte announces, nothing is consumed.
func (b *ByteBuffer) ReadVarint() (uint64, error) {
	if b.Len() == 0 {
		return 0, errors.Wrap(ErrTruncatedInput, "varint: empty buffer")
	}

	n := varintLen(b.buffer[b.readIndex])
	if n > b.Len() {
		return 0, errors.Wrapf(ErrTruncatedInput, "varint: need %d bytes, %d unread", n, b.Len())
	}

	p, _ := b.next(n)
	v := uint64(p[0] &^ varintTagMask)
	for _, c := range p[1:] {
		v = v<<8 | uint64(c)
	}
	return v, nil
}
