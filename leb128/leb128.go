// Package leb128 encodes and decodes 64-bit integers as LEB128: seven
// payload bits per byte, high bit set while more bytes follow, least
// significant group first. The signed variant uses two's-complement sign
// extension, so -1 is the single byte 0x7f.
package leb128

import "encoding/binary"

// MaxLen is the worst-case encoded length of a 64-bit value, for both
// variants.
const MaxLen = binary.MaxVarintLen64

// AppendUint appends the unsigned LEB128 encoding of v to dst and returns
// the extended slice. The bytes match encoding/binary's unsigned varint
// exactly.
func AppendUint(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// AppendInt appends the signed LEB128 encoding of v to dst and returns the
// extended slice. This is sign extension, not zigzag: small negative values
// stay short.
func AppendInt(dst []byte, v int64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

// UintLen reports the encoded length of v, 1..MaxLen.
func UintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// IntLen reports the encoded length of v, 1..MaxLen.
func IntLen(v int64) int {
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		n++
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return n
		}
	}
}

// Uint decodes an unsigned LEB128 value from the start of buf. It returns
// the value and the number of bytes read; n == 0 means buf is truncated,
// n < 0 means the encoding does not fit 64 bits and -n bytes were read.
func Uint(buf []byte) (uint64, int) {
	return binary.Uvarint(buf)
}

// Int decodes a signed LEB128 value from the start of buf, with the same n
// conventions as Uint.
func Int(buf []byte) (int64, int) {
	var v int64
	var shift uint
	for i, b := range buf {
		if b&0x80 == 0 {
			if i == MaxLen-1 && b != 0x00 && b != 0x7f {
				return 0, -(i + 1) // bits beyond the 64th would be lost
			}
			v |= int64(b&0x7f) << shift
			if shift+7 < 64 && b&0x40 != 0 {
				v |= -1 << (shift + 7)
			}
			return v, i + 1
		}
		if i == MaxLen-1 {
			return 0, -(i + 1) // continuation past the maximum length
		}
		v |= int64(b&0x7f) << shift
		shift += 7
	}
	return 0, 0
}
