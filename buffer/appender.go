// Package buffer provides an append-only buffer capability with
// interchangeable backing stores: a growable slice, a text builder, and a
// fixed-capacity store with all-or-nothing multi-element appends.
package buffer

import (
	"errors"
	"iter"
)

var (
	// ErrNotEnoughCapacity reports an append that would exceed a fixed
	// store's capacity. The store stays valid and usable.
	ErrNotEnoughCapacity = errors.New("buffer: not enough capacity")

	// ErrInvalidUTF8 reports a byte sequence rejected by the text store's
	// UTF-8 precondition. The target store is not modified.
	ErrInvalidUTF8 = errors.New("buffer: invalid UTF-8")
)

// Appender is the append capability every backing store satisfies for its
// element type. Append is the unconditional primitive; AppendSeq consumes a
// sequence lazily; AppendSlice copies from a contiguous slice without
// consuming it.
type Appender[T any] interface {
	Append(v T) error
	AppendSeq(vs iter.Seq[T]) error
	AppendSlice(vs []T) error
}

// AppendSeq appends each value of vs in order using a.Append and stops at
// the first error. Values appended before the failure are kept, not rolled
// back. Stores that need all-or-nothing semantics implement AppendSeq
// directly instead of delegating here.
func AppendSeq[T any](a Appender[T], vs iter.Seq[T]) error {
	for v := range vs {
		if err := a.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// AppendSlice appends each element of vs in order using a.Append and stops
// at the first error, with the same kept-prefix semantics as AppendSeq.
func AppendSlice[T any](a Appender[T], vs []T) error {
	for _, v := range vs {
		if err := a.Append(v); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Appender[byte]   = (*Slice[byte])(nil)
	_ Appender[rune]   = (*Text)(nil)
	_ Appender[string] = (*Fixed[string])(nil)
)
