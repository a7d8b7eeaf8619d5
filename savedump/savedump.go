// Package savedump implements a reader for wirebuf save files, along with
// helpers to print them.
//
// A save file is laid out as
//
//	magic      "WBUF"
//	version    uint32
//	generation int64
//	flags      uint32
//	payload    uint32 length, then the payload bytes
//	generation int64
//
// all little-endian. The writer stamps the same generation at both ends once
// the whole file is assembled, so a mismatch means an incomplete write.
//
// the reader is separate from the cli, with the reading implemented here while
// the cli lives in cmd/savedump
package savedump

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/wirekit/wirebuf/bytebuffer"
)

// errors returned while reading a save file
var (
	ErrBadMagic           = errors.New("savedump: bad magic")
	ErrVersion            = errors.New("savedump: unsupported version")
	ErrGenerationMismatch = errors.New("savedump: generation mismatch")
	ErrTruncated          = errors.New("savedump: truncated")
)

// BytesPerLine is the number of payload bytes Fprint puts on one line
const BytesPerLine = 16

func readHeader(b *bytebuffer.ByteBuffer) (*Header, error) {
	if b.Len() < HeaderLength {
		return nil, errors.Wrapf(ErrTruncated, "%d bytes is too small to contain a valid Header", b.Len())
	}

	h := new(Header)

	magic, _ := b.ReadBytes(len(h.Magic))
	copy(h.Magic[:], magic)
	if string(h.Magic[:]) != Magic {
		return nil, errors.Wrapf(ErrBadMagic, "%q", h.Magic[:])
	}

	h.Version, _ = b.ReadUint32()
	if h.Version != SaveVersion {
		return nil, errors.Wrapf(ErrVersion, "version %v", h.Version)
	}

	h.G1, _ = b.ReadInt64()
	h.Flags, _ = b.ReadUint32()

	return h, nil
}

// Dump decodes a save file image. The returned payload is a copy, data can be
// released or unmapped afterwards. Bytes after the trailer are ignored.
func Dump(data []byte) (*File, error) {
	b := bytebuffer.NewByteBufferSlice(data)

	h, err := readHeader(b)
	if err != nil {
		return nil, err
	}

	payload, err := b.ReadBuffer(nil)
	if err != nil {
		return nil, errors.Wrapf(ErrTruncated, "incomplete/partially written payload: %v", err)
	}

	g2, err := b.ReadInt64()
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "incomplete/partially written trailer")
	}

	if h.G1 != g2 {
		return nil, errors.Wrapf(ErrGenerationMismatch, "mismatched generations, %v and %v", h.G1, g2)
	}

	return &File{
		Header:  *h,
		G2:      g2,
		Payload: payload,
	}, nil
}

// Fprint writes a human readable description of f to w, with the payload as
// uppercase hex, BytesPerLine bytes per line
func Fprint(w io.Writer, file string, f *File) error {
	_, err := fmt.Fprintf(w, `
File       = %v
Version    = %v
Generation = %v (%v)
Flags      = 0x%x
Payload    = %v bytes

`, file, f.Header.Version, f.Header.G1, time.Unix(0, f.Header.G1).UTC().Format(time.RFC3339Nano), f.Header.Flags, f.Payload.Len())
	if err != nil {
		return err
	}

	p := f.Payload.View()
	for off := 0; off < len(p); off += BytesPerLine {
		end := off + BytesPerLine
		if end > len(p) {
			end = len(p)
		}

		if _, err := fmt.Fprintf(w, "\t[%08x] %v\n", off, bytebuffer.Hex(p[off:end])); err != nil {
			return err
		}
	}

	return nil
}
