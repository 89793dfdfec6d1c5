// Package wire implements the primitive codec (unaligned fixed-width
// scalar read/write, and the five variable-length size-prefix
// encodings) that every other package in this module builds on.
//
// FlatMsg is a little-endian-only format, so this package fixes a
// single package-level engine rather than taking one per call.
package wire

import (
	"math"

	"github.com/flatmsg-dev/flatmsg/endian"
)

// engine is the fixed little-endian engine used by every read/write in
// this package and, transitively, by field and record.
var engine = endian.GetLittleEndianEngine()

// Uint128 stores a 128-bit unsigned integer as two 64-bit words, low
// word first. Storage and comparison only; no arithmetic is provided
// because the wire format never requires it.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 stores a 128-bit signed integer as a 64-bit low word and a
// signed 64-bit high word, matching native little-endian 128-bit
// layout when the two words are concatenated Lo-then-Hi.
type Int128 struct {
	Lo uint64
	Hi int64
}

// PutUint8 writes a single byte at buf[offset] and returns 1.
func PutUint8(buf []byte, offset int, v uint8) int {
	buf[offset] = v
	return 1
}

// Uint8 reads a single byte at buf[offset].
func Uint8(buf []byte, offset int) uint8 {
	return buf[offset]
}

// PutUint16 writes v at buf[offset:offset+2] and returns 2.
func PutUint16(buf []byte, offset int, v uint16) int {
	engine.PutUint16(buf[offset:], v)
	return 2
}

// Uint16 reads a uint16 at buf[offset:offset+2].
func Uint16(buf []byte, offset int) uint16 {
	return engine.Uint16(buf[offset:])
}

// PutUint32 writes v at buf[offset:offset+4] and returns 4.
func PutUint32(buf []byte, offset int, v uint32) int {
	engine.PutUint32(buf[offset:], v)
	return 4
}

// Uint32 reads a uint32 at buf[offset:offset+4].
func Uint32(buf []byte, offset int) uint32 {
	return engine.Uint32(buf[offset:])
}

// PutUint64 writes v at buf[offset:offset+8] and returns 8.
func PutUint64(buf []byte, offset int, v uint64) int {
	engine.PutUint64(buf[offset:], v)
	return 8
}

// Uint64 reads a uint64 at buf[offset:offset+8].
func Uint64(buf []byte, offset int) uint64 {
	return engine.Uint64(buf[offset:])
}

// PutUint128 writes v at buf[offset:offset+16] low word first and
// returns 16.
func PutUint128(buf []byte, offset int, v Uint128) int {
	engine.PutUint64(buf[offset:], v.Lo)
	engine.PutUint64(buf[offset+8:], v.Hi)
	return 16
}

// Uint128At reads a Uint128 at buf[offset:offset+16].
func Uint128At(buf []byte, offset int) Uint128 {
	return Uint128{
		Lo: engine.Uint64(buf[offset:]),
		Hi: engine.Uint64(buf[offset+8:]),
	}
}

// PutInt8 writes v at buf[offset] and returns 1.
func PutInt8(buf []byte, offset int, v int8) int {
	buf[offset] = uint8(v)
	return 1
}

// Int8 reads an int8 at buf[offset].
func Int8(buf []byte, offset int) int8 {
	return int8(buf[offset])
}

// PutInt16 writes v at buf[offset:offset+2] and returns 2.
func PutInt16(buf []byte, offset int, v int16) int {
	engine.PutUint16(buf[offset:], uint16(v))
	return 2
}

// Int16 reads an int16 at buf[offset:offset+2].
func Int16(buf []byte, offset int) int16 {
	return int16(engine.Uint16(buf[offset:]))
}

// PutInt32 writes v at buf[offset:offset+4] and returns 4.
func PutInt32(buf []byte, offset int, v int32) int {
	engine.PutUint32(buf[offset:], uint32(v))
	return 4
}

// Int32 reads an int32 at buf[offset:offset+4].
func Int32(buf []byte, offset int) int32 {
	return int32(engine.Uint32(buf[offset:]))
}

// PutInt64 writes v at buf[offset:offset+8] and returns 8.
func PutInt64(buf []byte, offset int, v int64) int {
	engine.PutUint64(buf[offset:], uint64(v))
	return 8
}

// Int64 reads an int64 at buf[offset:offset+8].
func Int64(buf []byte, offset int) int64 {
	return int64(engine.Uint64(buf[offset:]))
}

// PutInt128 writes v at buf[offset:offset+16] low word first and
// returns 16.
func PutInt128(buf []byte, offset int, v Int128) int {
	engine.PutUint64(buf[offset:], v.Lo)
	engine.PutUint64(buf[offset+8:], uint64(v.Hi))
	return 16
}

// Int128At reads an Int128 at buf[offset:offset+16].
func Int128At(buf []byte, offset int) Int128 {
	return Int128{
		Lo: engine.Uint64(buf[offset:]),
		Hi: int64(engine.Uint64(buf[offset+8:])),
	}
}

// PutFloat32 writes v at buf[offset:offset+4] and returns 4.
func PutFloat32(buf []byte, offset int, v float32) int {
	engine.PutUint32(buf[offset:], math.Float32bits(v))
	return 4
}

// Float32 reads a float32 at buf[offset:offset+4].
func Float32(buf []byte, offset int) float32 {
	return math.Float32frombits(engine.Uint32(buf[offset:]))
}

// PutFloat64 writes v at buf[offset:offset+8] and returns 8.
func PutFloat64(buf []byte, offset int, v float64) int {
	engine.PutUint64(buf[offset:], math.Float64bits(v))
	return 8
}

// Float64 reads a float64 at buf[offset:offset+8].
func Float64(buf []byte, offset int) float64 {
	return math.Float64frombits(engine.Uint64(buf[offset:]))
}

// PutBool writes v as a single 0/1 byte and returns 1.
func PutBool(buf []byte, offset int, v bool) int {
	if v {
		buf[offset] = 1
	} else {
		buf[offset] = 0
	}

	return 1
}

// Bool reads a bool byte without validating it is 0 or 1.
func Bool(buf []byte, offset int) bool {
	return buf[offset] != 0
}

// BoolChecked reads a bool byte, rejecting any value other than 0 or 1.
func BoolChecked(buf []byte, offset int) (bool, bool) {
	switch buf[offset] {
	case 0:
		return false, true
	case 1:
		return true, true
	default:
		return false, false
	}
}
