// Package geom holds small fixed-layout value types used by game code, encoded
// as the raw little-endian concatenation of their float32 fields.
//
// Both types satisfy bytebuffer.Fixed, and their pointers satisfy
// bytebuffer.FixedPtr, so they can be passed to bytebuffer.WriteFixed and
// bytebuffer.ReadFixed directly.
package geom

import (
	"encoding/binary"
	"math"
)

// byte widths of the encoded types
const (
	Vector3Size    = 12
	QuaternionSize = 16
)

// Vector3 is a 3 component float32 vector
type Vector3 struct {
	X, Y, Z float32
}

// Size returns the encoded width of a Vector3
func (Vector3) Size() int { return Vector3Size }

// PutBytes writes x, y and z into the first 12 bytes of p
func (v Vector3) PutBytes(p []byte) {
	putFloats(p, v.X, v.Y, v.Z)
}

// SetBytes reads x, y and z from the first 12 bytes of p
func (v *Vector3) SetBytes(p []byte) {
	getFloats(p, &v.X, &v.Y, &v.Z)
}

// Add returns the component wise sum
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Quaternion is a rotation stored as x, y, z, w
type Quaternion struct {
	X, Y, Z, W float32
}

// Identity is the quaternion for no rotation
var Identity = Quaternion{W: 1}

// Size returns the encoded width of a Quaternion
func (Quaternion) Size() int { return QuaternionSize }

// PutBytes writes x, y, z and w into the first 16 bytes of p
func (q Quaternion) PutBytes(p []byte) {
	putFloats(p, q.X, q.Y, q.Z, q.W)
}

// SetBytes reads x, y, z and w from the first 16 bytes of p
func (q *Quaternion) SetBytes(p []byte) {
	getFloats(p, &q.X, &q.Y, &q.Z, &q.W)
}

func putFloats(p []byte, fs ...float32) {
	for i, f := range fs {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(f))
	}
}

func getFloats(p []byte, fs ...*float32) {
	for i, f := range fs {
		*f = math.Float32frombits(binary.LittleEndian.Uint32(p[4*i:]))
	}
}
