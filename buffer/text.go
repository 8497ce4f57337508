package buffer

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Text is a character store over a strings.Builder; the zero value is ready
// to use. Rune and string appends cannot fail. AppendBytes is the one
// fallible path: it validates UTF-8 before touching storage.
type Text struct {
	sb strings.Builder
}

func (t *Text) Append(r rune) error {
	t.sb.WriteRune(r)
	return nil
}

func (t *Text) AppendSeq(rs iter.Seq[rune]) error {
	for r := range rs {
		t.sb.WriteRune(r)
	}
	return nil
}

func (t *Text) AppendSlice(rs []rune) error {
	for _, r := range rs {
		t.sb.WriteRune(r)
	}
	return nil
}

// AppendString appends the UTF-8 bytes of s.
func (t *Text) AppendString(s string) error {
	t.sb.WriteString(s)
	return nil
}

// AppendBytes appends p after checking it is well-formed UTF-8. If it is
// not, AppendBytes returns ErrInvalidUTF8 and the store is left unchanged.
func (t *Text) AppendBytes(p []byte) error {
	if !utf8.Valid(p) {
		return ErrInvalidUTF8
	}
	t.sb.Write(p)
	return nil
}

// String returns the accumulated text.
func (t *Text) String() string { return t.sb.String() }

// Len reports the accumulated size in bytes, not runes.
func (t *Text) Len() int { return t.sb.Len() }

func (t *Text) Empty() bool { return t.sb.Len() == 0 }
