// Package encode provides stateless helpers that translate numeric and
// textual values into byte representations and forward them through the
// buffer capability. Each helper assembles its bytes in stack scratch and
// hands them over in a single append, so against a fixed-capacity store
// every helper call is all-or-nothing.
package encode

import (
	"encoding/binary"
	"math"

	"github.com/quickwritereader/appendix/buffer"
)

// nativeLittle reports whether the platform stores integers least
// significant byte first.
var nativeLittle = func() bool {
	var p [2]byte
	binary.NativeEndian.PutUint16(p[:], 1)
	return p[0] == 1
}()

// Uint8LE appends v as a single byte.
func Uint8LE(dst buffer.Appender[byte], v uint8) error { return dst.Append(v) }

// Uint8BE appends v as a single byte.
func Uint8BE(dst buffer.Appender[byte], v uint8) error { return dst.Append(v) }

// Uint8NE appends v as a single byte.
func Uint8NE(dst buffer.Appender[byte], v uint8) error { return dst.Append(v) }

// Int8LE appends v as a single byte.
func Int8LE(dst buffer.Appender[byte], v int8) error { return dst.Append(byte(v)) }

// Int8BE appends v as a single byte.
func Int8BE(dst buffer.Appender[byte], v int8) error { return dst.Append(byte(v)) }

// Int8NE appends v as a single byte.
func Int8NE(dst buffer.Appender[byte], v int8) error { return dst.Append(byte(v)) }

// Uint16LE appends the 2 little-endian bytes of v.
func Uint16LE(dst buffer.Appender[byte], v uint16) error {
	var s [2]byte
	binary.LittleEndian.PutUint16(s[:], v)
	return dst.AppendSlice(s[:])
}

// Uint16BE appends the 2 big-endian bytes of v.
func Uint16BE(dst buffer.Appender[byte], v uint16) error {
	var s [2]byte
	binary.BigEndian.PutUint16(s[:], v)
	return dst.AppendSlice(s[:])
}

// Uint16NE appends the 2 native-endian bytes of v.
func Uint16NE(dst buffer.Appender[byte], v uint16) error {
	var s [2]byte
	binary.NativeEndian.PutUint16(s[:], v)
	return dst.AppendSlice(s[:])
}

// Uint32LE appends the 4 little-endian bytes of v.
func Uint32LE(dst buffer.Appender[byte], v uint32) error {
	var s [4]byte
	binary.LittleEndian.PutUint32(s[:], v)
	return dst.AppendSlice(s[:])
}

// Uint32BE appends the 4 big-endian bytes of v.
func Uint32BE(dst buffer.Appender[byte], v uint32) error {
	var s [4]byte
	binary.BigEndian.PutUint32(s[:], v)
	return dst.AppendSlice(s[:])
}

// Uint32NE appends the 4 native-endian bytes of v.
func Uint32NE(dst buffer.Appender[byte], v uint32) error {
	var s [4]byte
	binary.NativeEndian.PutUint32(s[:], v)
	return dst.AppendSlice(s[:])
}

// Uint64LE appends the 8 little-endian bytes of v.
func Uint64LE(dst buffer.Appender[byte], v uint64) error {
	var s [8]byte
	binary.LittleEndian.PutUint64(s[:], v)
	return dst.AppendSlice(s[:])
}

// Uint64BE appends the 8 big-endian bytes of v.
func Uint64BE(dst buffer.Appender[byte], v uint64) error {
	var s [8]byte
	binary.BigEndian.PutUint64(s[:], v)
	return dst.AppendSlice(s[:])
}

// Uint64NE appends the 8 native-endian bytes of v.
func Uint64NE(dst buffer.Appender[byte], v uint64) error {
	var s [8]byte
	binary.NativeEndian.PutUint64(s[:], v)
	return dst.AppendSlice(s[:])
}

// Int16LE appends the 2 little-endian bytes of v.
func Int16LE(dst buffer.Appender[byte], v int16) error { return Uint16LE(dst, uint16(v)) }

// Int16BE appends the 2 big-endian bytes of v.
func Int16BE(dst buffer.Appender[byte], v int16) error { return Uint16BE(dst, uint16(v)) }

// Int16NE appends the 2 native-endian bytes of v.
func Int16NE(dst buffer.Appender[byte], v int16) error { return Uint16NE(dst, uint16(v)) }

// Int32LE appends the 4 little-endian bytes of v.
func Int32LE(dst buffer.Appender[byte], v int32) error { return Uint32LE(dst, uint32(v)) }

// Int32BE appends the 4 big-endian bytes of v.
func Int32BE(dst buffer.Appender[byte], v int32) error { return Uint32BE(dst, uint32(v)) }

// Int32NE appends the 4 native-endian bytes of v.
func Int32NE(dst buffer.Appender[byte], v int32) error { return Uint32NE(dst, uint32(v)) }

// Int64LE appends the 8 little-endian bytes of v.
func Int64LE(dst buffer.Appender[byte], v int64) error { return Uint64LE(dst, uint64(v)) }

// Int64BE appends the 8 big-endian bytes of v.
func Int64BE(dst buffer.Appender[byte], v int64) error { return Uint64BE(dst, uint64(v)) }

// Int64NE appends the 8 native-endian bytes of v.
func Int64NE(dst buffer.Appender[byte], v int64) error { return Uint64NE(dst, uint64(v)) }

// Float32LE appends the 4 little-endian bytes of v's IEEE 754 form.
func Float32LE(dst buffer.Appender[byte], v float32) error {
	return Uint32LE(dst, math.Float32bits(v))
}

// Float32BE appends the 4 big-endian bytes of v's IEEE 754 form.
func Float32BE(dst buffer.Appender[byte], v float32) error {
	return Uint32BE(dst, math.Float32bits(v))
}

// Float32NE appends the 4 native-endian bytes of v's IEEE 754 form.
func Float32NE(dst buffer.Appender[byte], v float32) error {
	return Uint32NE(dst, math.Float32bits(v))
}

// Float64LE appends the 8 little-endian bytes of v's IEEE 754 form.
func Float64LE(dst buffer.Appender[byte], v float64) error {
	return Uint64LE(dst, math.Float64bits(v))
}

// Float64BE appends the 8 big-endian bytes of v's IEEE 754 form.
func Float64BE(dst buffer.Appender[byte], v float64) error {
	return Uint64BE(dst, math.Float64bits(v))
}

// Float64NE appends the 8 native-endian bytes of v's IEEE 754 form.
func Float64NE(dst buffer.Appender[byte], v float64) error {
	return Uint64NE(dst, math.Float64bits(v))
}
