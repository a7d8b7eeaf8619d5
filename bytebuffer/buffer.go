// Package bytebuffer implements a growable binary encoding buffer with
// independent read and write cursors.
//
// bytes.Buffer was the obvious starting point, but it only ever reads from the
// front and writes at the end. Message and save-data encoders need more than
// that: they want to go back and patch a length or header once the rest of the
// data is known, and they want to peek at what has already been written
// without losing their place. ByteBuffer keeps both cursors explicit and
// offers Rewrite and Reread for exactly those two cases.
//
// Everything is little-endian on the wire, except the variable-length integer
// format which is big-endian with a 2 bit length tag (the QUIC layout).
//
// A ByteBuffer is not safe for concurrent use.
package bytebuffer

import "io"

// Buffer defines the operations of a binary buffer with separate read and
// write positions
type Buffer interface {
	io.Reader
	io.Writer
	io.ByteReader
	io.ByteWriter

	Len() int
	Cap() int
	ReadPos() int
	WritePos() int
	Clear()

	Bytes() []byte
	View() []byte
	String() string

	WriteBytes([]byte)
	ReadBytes(int) ([]byte, error)
	Skip(int) error

	WriteBool(bool)
	WriteInt8(int8)
	WriteUint8(uint8)
	WriteInt16(int16)
	WriteUint16(uint16)
	WriteInt32(int32)
	WriteUint32(uint32)
	WriteInt64(int64)
	WriteUint64(uint64)
	WriteFloat32(float32)
	WriteFloat64(float64)
	WriteVal(interface{}) error

	ReadBool() (bool, error)
	ReadInt8() (int8, error)
	ReadUint8() (uint8, error)
	ReadInt16() (int16, error)
	ReadUint16() (uint16, error)
	ReadInt32() (int32, error)
	ReadUint32() (uint32, error)
	ReadInt64() (int64, error)
	ReadUint64() (uint64, error)
	ReadFloat32() (float32, error)
	ReadFloat64() (float64, error)
	ReadVal(interface{}) error

	WriteVarint(uint64) error
	ReadVarint() (uint64, error)

	WriteString(string)
	ReadString() (string, error)
	WriteRawString(string)
	ReadRawString(int) (string, error)

	WriteBuffer(*ByteBuffer)
	ReadBuffer(*ByteBuffer) (*ByteBuffer, error)

	Rewrite(func(*ByteBuffer) error) error
	Reread(func(*ByteBuffer) error) error
}

var _ Buffer = (*ByteBuffer)(nil)
