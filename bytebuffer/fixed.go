package bytebuffer

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// everything fixed-size is little-endian regardless of the host
var byteOrder = binary.LittleEndian

// Fixed is implemented by values with a fixed, padding free encoding.
//
// Size must return the same width for every value of the type, and PutBytes
// must fill exactly the first Size() bytes of p, which is always at least
// that long.
type Fixed interface {
	Size() int
	PutBytes(p []byte)
}

// FixedPtr is the decoding side of Fixed. It is satisfied by *T when T
// implements Fixed and *T has SetBytes, which reconstructs the value from
// the first Size() bytes of p.
type FixedPtr[T any] interface {
	*T
	Fixed
	SetBytes(p []byte)
}

// WriteFixed writes a Fixed value at the write position
func WriteFixed[T Fixed](b *ByteBuffer, v T) {
	v.PutBytes(b.claim(v.Size()))
}

// ReadFixed reads a Fixed value from the read position
func ReadFixed[T any, P FixedPtr[T]](b *ByteBuffer) (T, error) {
	var v T
	p := P(&v)

	data, err := b.next(p.Size())
	if err != nil {
		return v, err
	}

	p.SetBytes(data)
	return v, nil
}

// WriteFixedSlice writes all values back to back, with no padding between them
func WriteFixedSlice[T Fixed](b *ByteBuffer, vs []T) {
	if len(vs) == 0 {
		return
	}

	size := vs[0].Size()
	data := b.claim(size * len(vs))
	for i, v := range vs {
		v.PutBytes(data[i*size:])
	}
}

// ReadFixedSlice fills vs with consecutive values from the read position.
// Nothing is consumed unless the buffer holds enough bytes for all of them.
func ReadFixedSlice[T any, P FixedPtr[T]](b *ByteBuffer, vs []T) error {
	if len(vs) == 0 {
		return nil
	}

	size := P(&vs[0]).Size()
	data, err := b.next(size * len(vs))
	if err != nil {
		return err
	}

	for i := range vs {
		P(&vs[i]).SetBytes(data[i*size:])
	}
	return nil
}

// WriteVal writes an arbitrary fixed-size value, or a slice of them, using
// the encoding/binary rules in little-endian order
func (b *ByteBuffer) WriteVal(val interface{}) error {
	return binary.Write(b, byteOrder, val)
}

// ReadVal reads into val, which must be a pointer to a fixed-size value or a
// slice of fixed-size values
func (b *ByteBuffer) ReadVal(val interface{}) error {
	n := binary.Size(val)
	if n < 0 {
		return errors.Errorf("bytebuffer: cannot read into %T, not a fixed-size value", val)
	}

	data, err := b.next(n)
	if err != nil {
		return err
	}

	return binary.Read(bytes.NewReader(data), byteOrder, val)
}

// WriteBool writes a bool as a single byte, 1 for true and 0 for false
func (b *ByteBuffer) WriteBool(val bool) {
	if val {
		b.WriteUint8(1)
	} else {
		b.WriteUint8(0)
	}
}

// WriteInt8 writes an int8 to the buffer
func (b *ByteBuffer) WriteInt8(val int8) { b.WriteUint8(uint8(val)) }

// WriteUint8 writes an uint8 to the buffer
func (b *ByteBuffer) WriteUint8(val uint8) { b.claim(1)[0] = val }

// WriteInt16 writes an int16 to the buffer
func (b *ByteBuffer) WriteInt16(val int16) { b.WriteUint16(uint16(val)) }

// WriteUint16 writes an uint16 to the buffer
func (b *ByteBuffer) WriteUint16(val uint16) { byteOrder.PutUint16(b.claim(2), val) }

// WriteInt32 writes an int32 to the buffer
func (b *ByteBuffer) WriteInt32(val int32) { b.WriteUint32(uint32(val)) }

// WriteUint32 writes an uint32 to the buffer
func (b *ByteBuffer) WriteUint32(val uint32) { byteOrder.PutUint32(b.claim(4), val) }

// WriteInt64 writes an int64 to the buffer
func (b *ByteBuffer) WriteInt64(val int64) { b.WriteUint64(uint64(val)) }

// WriteUint64 writes an uint64 to the buffer
func (b *ByteBuffer) WriteUint64(val uint64) { byteOrder.PutUint64(b.claim(8), val) }

// WriteFloat32 writes the IEEE-754 bits of a float32
func (b *ByteBuffer) WriteFloat32(val float32) { b.WriteUint32(math.Float32bits(val)) }

// WriteFloat64 writes the IEEE-754 bits of a float64
func (b *ByteBuffer) WriteFloat64(val float64) { b.WriteUint64(math.Float64bits(val)) }

// ReadBool reads a single byte, anything but 0 is true
func (b *ByteBuffer) ReadBool() (bool, error) {
	v, err := b.ReadUint8()
	return v != 0, err
}

// ReadInt8 reads an int8 from the buffer
func (b *ByteBuffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

// ReadUint8 reads an uint8 from the buffer
func (b *ByteBuffer) ReadUint8() (uint8, error) { return b.ReadByte() }

// ReadInt16 reads an int16 from the buffer
func (b *ByteBuffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

// ReadUint16 reads an uint16 from the buffer
func (b *ByteBuffer) ReadUint16() (uint16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint16(p), nil
}

// ReadInt32 reads an int32 from the buffer
func (b *ByteBuffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

// ReadUint32 reads an uint32 from the buffer
func (b *ByteBuffer) ReadUint32() (uint32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint32(p), nil
}

// ReadInt64 reads an int64 from the buffer
func (b *ByteBuffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

// ReadUint64 reads an uint64 from the buffer
func (b *ByteBuffer) ReadUint64() (uint64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint64(p), nil
}

// ReadFloat32 reads a float32 from its IEEE-754 bits
func (b *ByteBuffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads a float64 from its IEEE-754 bits
func (b *ByteBuffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()
	return math.Float64frombits(v), err
}
