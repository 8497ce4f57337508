package encode

import (
	"golang.org/x/exp/constraints"

	"github.com/quickwritereader/appendix/buffer"
	"github.com/quickwritereader/appendix/leb128"
	"github.com/quickwritereader/appendix/vint64"
)

// Uleb128 appends the unsigned LEB128 encoding of v, at most
// leb128.MaxLen bytes. Any unsigned integer type is accepted and widened to
// 64 bits.
func Uleb128[T constraints.Unsigned](dst buffer.Appender[byte], v T) error {
	var s [leb128.MaxLen]byte
	return dst.AppendSlice(leb128.AppendUint(s[:0], uint64(v)))
}

// Sleb128 appends the signed LEB128 encoding of v, at most leb128.MaxLen
// bytes. Any signed integer type is accepted and widened to 64 bits.
func Sleb128[T constraints.Signed](dst buffer.Appender[byte], v T) error {
	var s [leb128.MaxLen]byte
	return dst.AppendSlice(leb128.AppendInt(s[:0], int64(v)))
}

// Uvint64 appends v in the self-describing prefix varint format, at most
// vint64.MaxLen bytes.
func Uvint64(dst buffer.Appender[byte], v uint64) error {
	var s [vint64.MaxLen]byte
	return dst.AppendSlice(vint64.Append(s[:0], v))
}

// Svint64 appends v in the signed (zigzag) prefix varint format, at most
// vint64.MaxLen bytes.
func Svint64(dst buffer.Appender[byte], v int64) error {
	var s [vint64.MaxLen]byte
	return dst.AppendSlice(vint64.AppendSigned(s[:0], v))
}
