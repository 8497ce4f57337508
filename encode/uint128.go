package encode

import (
	"encoding/binary"

	"github.com/quickwritereader/appendix/buffer"
)

// Uint128 is an unsigned 128-bit value held as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit value in two's complement, Hi carrying the
// sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128From64 widens v to 128 bits.
func Uint128From64(v uint64) Uint128 { return Uint128{Lo: v} }

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 { return Int128{Hi: v >> 63, Lo: uint64(v)} }

// Uint128LE appends the 16 little-endian bytes of v: Lo's bytes, then Hi's.
func Uint128LE(dst buffer.Appender[byte], v Uint128) error {
	var s [16]byte
	binary.LittleEndian.PutUint64(s[:8], v.Lo)
	binary.LittleEndian.PutUint64(s[8:], v.Hi)
	return dst.AppendSlice(s[:])
}

// Uint128BE appends the 16 big-endian bytes of v: Hi's bytes, then Lo's.
func Uint128BE(dst buffer.Appender[byte], v Uint128) error {
	var s [16]byte
	binary.BigEndian.PutUint64(s[:8], v.Hi)
	binary.BigEndian.PutUint64(s[8:], v.Lo)
	return dst.AppendSlice(s[:])
}

// Uint128NE appends v in the platform's natural two-word layout.
func Uint128NE(dst buffer.Appender[byte], v Uint128) error {
	if nativeLittle {
		return Uint128LE(dst, v)
	}
	return Uint128BE(dst, v)
}

// Int128LE appends the 16 little-endian bytes of v.
func Int128LE(dst buffer.Appender[byte], v Int128) error {
	return Uint128LE(dst, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// Int128BE appends the 16 big-endian bytes of v.
func Int128BE(dst buffer.Appender[byte], v Int128) error {
	return Uint128BE(dst, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

// Int128NE appends v in the platform's natural two-word layout.
func Int128NE(dst buffer.Appender[byte], v Int128) error {
	return Uint128NE(dst, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}
