package bytebuffer

import "strings"

const hexDigits = "0123456789ABCDEF"

// hexByteStrings maps every byte value to its two digit uppercase form.
// It is filled once at package init and never written again.
var hexByteStrings = func() (t [256]string) {
	for i := range t {
		t[i] = string([]byte{hexDigits[i>>4], hexDigits[i&0x0F]})
	}
	return
}()

// HexByteString returns the two digit uppercase hex form of c
func HexByteString(c byte) string { return hexByteStrings[c] }

// Hex renders p as uppercase hex pairs with no separators
func Hex(p []byte) string {
	var sb strings.Builder
	sb.Grow(2 * len(p))
	for _, c := range p {
		sb.WriteString(hexByteStrings[c])
	}
	return sb.String()
}

// String renders the unread span as uppercase hex, e.g. "010000"
func (b *ByteBuffer) String() string { return Hex(b.View()) }
