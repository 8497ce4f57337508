package encode

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/quickwritereader/appendix/buffer"
)

func TestString_AppendsUTF8Bytes(t *testing.T) {
	var out buffer.Slice[byte]

	require.NoError(t, String(&out, "héllo"))
	assert.Equal(t, []byte("héllo"), out.Values())

	require.NoError(t, String(&out, ""))
	assert.Equal(t, []byte("héllo"), out.Values(), "empty string must append nothing")

	require.NoError(t, String(&out, " 日本"))
	assert.Equal(t, []byte("héllo 日本"), out.Values())
}

func TestRune_EncodedWidths(t *testing.T) {
	tests := []struct {
		r        rune
		expected []byte
	}{
		{'A', []byte{0x41}},
		{'é', []byte{0xC3, 0xA9}},
		{'€', []byte{0xE2, 0x82, 0xAC}},
		{'🚀', []byte{0xF0, 0x9F, 0x9A, 0x80}},
	}
	for _, tt := range tests {
		var out buffer.Slice[byte]
		require.NoError(t, Rune(&out, tt.r))
		assert.Equalf(t, tt.expected, out.Values(), "encoding of %q", tt.r)
		assert.Equalf(t, utf8.RuneLen(tt.r), out.Len(), "width of %q", tt.r)
	}
}

func TestRunes_ToTextStore(t *testing.T) {
	var text buffer.Text
	require.NoError(t, Runes(&text, "héllo🚀"))
	assert.Equal(t, "héllo🚀", text.String())
}

func TestRunes_FixedStoreRollback(t *testing.T) {
	f := buffer.NewFixed[rune](3)

	err := Runes(f, "hello")
	assert.ErrorIs(t, err, buffer.ErrNotEnoughCapacity)
	assert.Equal(t, 0, f.Len(), "failed append must roll back")

	require.NoError(t, Runes(f, "héo"))
	assert.Equal(t, []rune{'h', 'é', 'o'}, f.Values())
}

func TestStringNFC_CanonicalizesSpellings(t *testing.T) {
	composed := "café"    // é as one code point
	decomposed := "café" // e followed by combining acute

	var a, b buffer.Slice[byte]
	require.NoError(t, StringNFC(&a, composed))
	require.NoError(t, StringNFC(&b, decomposed))

	assert.Equal(t, a.Values(), b.Values(), "both spellings must serialize identically")
	assert.Equal(t, []byte(composed), a.Values())
	assert.Equal(t, norm.NFC.Bytes([]byte(decomposed)), b.Values())

	// The raw append keeps the decomposed form, one byte longer.
	var raw buffer.Slice[byte]
	require.NoError(t, String(&raw, decomposed))
	assert.Equal(t, len(composed)+1, raw.Len())
}
