package savedump

import "github.com/wirekit/wirebuf/bytebuffer"

// Magic identifies a save file
const Magic = "WBUF"

// SaveVersion is the current save file format version
const SaveVersion = 1

// byte lengths of the fixed parts of a save file
const (
	HeaderLength  = 20 // magic, version, generation, flags
	TrailerLength = 8  // generation
	MinFileLength = HeaderLength + 4 + TrailerLength
)

// Header describes the data at the start of a save file
type Header struct {
	Magic   [4]byte
	Version uint32
	G1      int64
	Flags   uint32
}

// NewHeader returns a header for the current format version
func NewHeader(generation int64, flags uint32) Header {
	h := Header{
		Version: SaveVersion,
		G1:      generation,
		Flags:   flags,
	}
	copy(h.Magic[:], Magic)
	return h
}

// WriteHeader writes h at the write position of b
func WriteHeader(b *bytebuffer.ByteBuffer, h Header) {
	b.WriteBytes(h.Magic[:])
	b.WriteUint32(h.Version)
	b.WriteInt64(h.G1)
	b.WriteUint32(h.Flags)
}

// File is a decoded save file
type File struct {
	Header  Header
	G2      int64
	Payload *bytebuffer.ByteBuffer
}
