package buffer

import (
	"iter"
	"slices"
)

// Slice is a growable backing store over a plain slice. Storage grows on
// demand, so appends never fail.
type Slice[T any] []T

func (s *Slice[T]) Append(v T) error {
	*s = append(*s, v)
	return nil
}

func (s *Slice[T]) AppendSeq(vs iter.Seq[T]) error {
	*s = slices.AppendSeq(*s, vs)
	return nil
}

func (s *Slice[T]) AppendSlice(vs []T) error {
	*s = append(*s, vs...)
	return nil
}

// Values returns the appended elements. The slice aliases the store's
// storage and is valid until the next append.
func (s *Slice[T]) Values() []T { return *s }

func (s *Slice[T]) Len() int { return len(*s) }

func (s *Slice[T]) Empty() bool { return len(*s) == 0 }

// Reset truncates to length zero keeping capacity for reuse. The abandoned
// elements are cleared so they do not pin heap objects.
func (s *Slice[T]) Reset() {
	clear(*s)
	*s = (*s)[:0]
}
