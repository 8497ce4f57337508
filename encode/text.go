package encode

import (
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/unicode/norm"

	"github.com/quickwritereader/appendix/buffer"
)

// String appends the raw UTF-8 bytes of s, using a zero-copy view of the
// string. The target store copies the bytes before String returns.
func String(dst buffer.Appender[byte], s string) error {
	if len(s) == 0 {
		return nil
	}
	return dst.AppendSlice(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// StringNFC appends the NFC-normalized UTF-8 bytes of s, so composed and
// decomposed spellings of the same text serialize to identical bytes.
func StringNFC(dst buffer.Appender[byte], s string) error {
	if norm.NFC.IsNormalString(s) {
		return String(dst, s)
	}
	return dst.AppendSlice(norm.NFC.Bytes([]byte(s)))
}

// Rune appends the UTF-8 encoding of r, 1 to 4 bytes.
func Rune(dst buffer.Appender[byte], r rune) error {
	var s [utf8.UTFMax]byte
	return dst.AppendSlice(utf8.AppendRune(s[:0], r))
}

// Runes appends the runes of s, in order, to a character store. The runes
// are produced lazily, so a fixed store that runs out of capacity rolls
// back as usual.
func Runes(dst buffer.Appender[rune], s string) error {
	return dst.AppendSeq(func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	})
}
