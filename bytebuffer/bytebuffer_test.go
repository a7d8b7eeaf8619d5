package bytebuffer

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 3} {
		b := NewByteBuffer(n)
		if b.Cap() != MinCapacity {
			t.Errorf("NewByteBuffer(%v): expected capacity %v, got %v", n, MinCapacity, b.Cap())
		}
		if b.Len() != 0 {
			t.Errorf("NewByteBuffer(%v): expected to be empty, got length %v", n, b.Len())
		}
	}

	if b := NewByteBuffer(100); b.Cap() != 100 {
		t.Errorf("expected capacity 100, got %v", b.Cap())
	}
}

func TestWriteInt32(t *testing.T) {
	cases := []int32{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 2147483647}

	for _, val := range cases {
		b := NewByteBuffer(4)
		b.WriteInt32(val)

		if b.WritePos() != 4 {
			t.Error("Not Writing 4 bytes for int32")
			return
		}

		e := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte(val >> 24),
		}

		for i := 0; i < 4; i++ {
			if b.buffer[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.buffer[i])
			}
		}
	}
}

func TestWriteInt64(t *testing.T) {
	cases := []int64{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 2147483647,
		4294967295, 10000000000000, 100000000000000000, 9223372036854775807}

	for _, val := range cases {
		b := NewByteBuffer(8)
		b.WriteInt64(val)

		if b.WritePos() != 8 {
			t.Error("Not Writing 8 bytes for int64")
			return
		}

		e := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte((val >> 24) & 0xFF),
			byte((val >> 32) & 0xFF),
			byte((val >> 40) & 0xFF),
			byte((val >> 48) & 0xFF),
			byte(val >> 56),
		}

		for i := 0; i < 8; i++ {
			if b.buffer[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.buffer[i])
			}
		}
	}
}

func TestGrowth(t *testing.T) {
	b := NewByteBuffer(4)
	var expected []byte

	for i := 0; i < 100; i++ {
		before := b.Bytes()
		b.WriteUint8(uint8(i))
		expected = append(expected, uint8(i))

		require.Equal(t, before, b.View()[:len(before)], "prefix changed after write %d", i)
		require.Equal(t, expected, b.Bytes())
	}

	// 4 -> 8 -> 16 -> 32 -> 64 -> 128
	assert.Equal(t, 128, b.Cap())

	b = NewByteBuffer(5)
	b.WriteBytes(make([]byte, 41))
	assert.Equal(t, 80, b.Cap(), "growth must double until the write fits")
}

func TestZeroValue(t *testing.T) {
	var b ByteBuffer
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())

	b.WriteUint8(1)
	assert.Equal(t, MinCapacity, b.Cap())

	b.WriteString("abc")
	nested := &ByteBuffer{}
	nested.WriteInt32(7)
	b.WriteBuffer(nested)
	assert.Equal(t, "01030000006162630400000007000000", b.String())

	v, err := b.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)

	s, err := b.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	r, err := b.ReadBuffer(nil)
	require.NoError(t, err)
	i, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(7), i)
	assert.Equal(t, 0, b.Len())
}

func TestClear(t *testing.T) {
	b := NewByteBuffer(4)
	b.WriteUint64(0x0102030405060708)
	_, err := b.ReadUint8()
	require.NoError(t, err)

	c := b.Cap()
	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.ReadPos())
	assert.Equal(t, 0, b.WritePos())
	assert.Equal(t, c, b.Cap())
	assert.Equal(t, "", b.String())

	b.WriteUint16(2)
	assert.Equal(t, "0200", b.String())
	v, err := b.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(2), v)
}

func TestBytesIsACopy(t *testing.T) {
	b := NewByteBuffer(4)
	b.WriteUint32(0x01020304)

	snapshot := b.Bytes()
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, snapshot)

	require.NoError(t, b.Rewrite(func(b *ByteBuffer) error {
		b.WriteUint32(0)
		return nil
	}))
	b.WriteBytes(make([]byte, 64))

	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, snapshot)
}

func TestViewIsClipped(t *testing.T) {
	b := NewByteBuffer(16)
	b.WriteUint16(0x0102)

	v := b.View()
	require.Equal(t, 2, len(v))
	require.Equal(t, 2, cap(v))

	_ = append(v, 0xFF)
	b.WriteUint8(0x03)
	assert.Equal(t, "020103", b.String())
}

func TestReadBytes(t *testing.T) {
	b := NewByteBuffer(4)
	b.WriteBytes([]byte{1, 2, 3})

	p, err := b.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, p)
	assert.Equal(t, 1, b.Len())

	_, err = b.ReadBytes(2)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 2, b.ReadPos(), "failed read must not move the read position")

	_, err = b.ReadBytes(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	require.NoError(t, b.Skip(1))
	assert.Equal(t, 0, b.Len())
	require.ErrorIs(t, b.Skip(1), ErrOutOfRange)
}

func TestReaderWriter(t *testing.T) {
	b := NewByteBuffer(4)

	n, err := io.Copy(b, bytes.NewReader([]byte("hello world")))
	require.NoError(t, err)
	require.EqualValues(t, 11, n)

	require.NoError(t, b.WriteByte('!'))

	c, err := b.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('h'), c)

	rest, err := io.ReadAll(b)
	require.NoError(t, err)
	assert.Equal(t, "ello world!", string(rest))

	_, err = b.Read(make([]byte, 1))
	assert.Equal(t, io.EOF, err)

	_, err = b.ReadByte()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestWriteTo(t *testing.T) {
	b := NewByteBuffer(4)
	b.WriteUint32(7)
	b.WriteUint8(1)

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.Equal(t, []byte{7, 0, 0, 0, 1}, out.Bytes())
	assert.Equal(t, 0, b.Len())
}

func TestNewByteBufferSlice(t *testing.T) {
	b := NewByteBufferSlice([]byte{0x0A, 0, 0, 0, 0x0B})
	assert.Equal(t, 5, b.Len())

	v, err := b.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)

	small := NewByteBufferSlice([]byte{1})
	assert.Equal(t, MinCapacity, small.Cap())
	assert.Equal(t, "01", small.String())

	small.WriteUint32(2)
	assert.Equal(t, "0102000000", small.String())
}

func TestCompound(t *testing.T) {
	b := NewByteBuffer(4)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())

	b.WriteUint8(1)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, "01", b.String())
	v8, err := b.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v8)

	b.WriteUint16(2)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "0200", b.String())
	v16, err := b.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(2), v16)

	b.WriteUint32(3)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, "03000000", b.String())
	v32, err := b.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), v32)

	b.WriteUint64(4)
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, "0400000000000000", b.String())
	v64, err := b.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v64)
}

func BenchmarkWriteReadInt32(b *testing.B) {
	buf := NewByteBuffer(4)
	for i := 0; i < b.N; i++ {
		buf.WriteInt32(1)
		if v, err := buf.ReadInt32(); err != nil || v != 1 {
			b.Fatal("round trip failed", buf)
		}
	}
}

func BenchmarkString(b *testing.B) {
	buf := NewByteBuffer(4)
	for i := 0; i < b.N; i++ {
		buf.WriteString("1234")
		if s, err := buf.ReadString(); err != nil || s != "1234" {
			b.Fatal("round trip failed", buf)
		}
	}
}
