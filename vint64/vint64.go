// Package vint64 implements a little-endian prefix varint for 64-bit
// integers: the count of trailing zero bits in the first byte, plus one,
// is the total encoded length, so a decoder needs no external length
// information. Values occupy 1..9 bytes. The signed variant maps through
// zigzag first, keeping small magnitudes short.
package vint64

import (
	"encoding/binary"
	"math/bits"
)

// MaxLen is the worst-case encoded length of a 64-bit value.
const MaxLen = 9

// Len reports the encoded length of v, 1..MaxLen.
func Len(v uint64) int {
	switch {
	case v == 0:
		return 1
	case v >= 1<<56:
		return MaxLen
	default:
		return (bits.Len64(v) + 6) / 7
	}
}

// SignedLen reports the encoded length of v, 1..MaxLen.
func SignedLen(v int64) int { return Len(Zigzag(v)) }

// Length reports the total encoded length announced by the first encoded
// byte.
func Length(first byte) int { return bits.TrailingZeros8(first) + 1 }

// Append appends the encoding of v to dst and returns the extended slice.
// Values below 1<<56 become ((v<<1)|1) << (length-1) in length little-endian
// bytes; larger values become a zero marker byte followed by the 8
// little-endian bytes of v.
func Append(dst []byte, v uint64) []byte {
	n := Len(v)
	if n == MaxLen {
		var scratch [8]byte
		binary.LittleEndian.PutUint64(scratch[:], v)
		return append(append(dst, 0x00), scratch[:]...)
	}
	e := (v<<1 | 1) << (n - 1)
	for i := 0; i < n; i++ {
		dst = append(dst, byte(e>>(8*i)))
	}
	return dst
}

// AppendSigned appends the zigzag encoding of v to dst and returns the
// extended slice.
func AppendSigned(dst []byte, v int64) []byte { return Append(dst, Zigzag(v)) }

// Zigzag maps a signed value onto the unsigned space ordered by magnitude:
// 0, -1, 1, -2, 2, ...
func Zigzag(v int64) uint64 { return uint64(v<<1) ^ uint64(v>>63) }

// Unzigzag is the inverse of Zigzag.
func Unzigzag(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) }

// Decode reads one encoded value from the start of buf. It returns the
// value and the number of bytes read; n == 0 means buf is truncated, n < 0
// means the encoding is malformed (longer than the value requires, with -n
// bytes read).
func Decode(buf []byte) (uint64, int) {
	if len(buf) == 0 {
		return 0, 0
	}
	n := Length(buf[0])
	if len(buf) < n {
		return 0, 0
	}
	var v uint64
	if n == MaxLen {
		v = binary.LittleEndian.Uint64(buf[1:MaxLen])
	} else {
		var e uint64
		for i := 0; i < n; i++ {
			e |= uint64(buf[i]) << (8 * i)
		}
		v = e >> n
	}
	if Len(v) != n {
		return 0, -n
	}
	return v, n
}

// DecodeSigned reads one zigzag-encoded value, with Decode's n conventions.
func DecodeSigned(buf []byte) (int64, int) {
	u, n := Decode(buf)
	if n <= 0 {
		return 0, n
	}
	return Unzigzag(u), n
}
