package buffer

import "iter"

// Fixed is a fixed-capacity backing store. Capacity is decided at
// construction and never grows; an append that does not fit fails with
// ErrNotEnoughCapacity and leaves the store observably unchanged.
//
// Storage is a full-length slice with a logical length. Slots beyond the
// logical length are dead: Values never reaches them, and slots abandoned
// by a rolled-back append are cleared so they hold no references.
type Fixed[T any] struct {
	buf []T // backing storage, len(buf) is the capacity
	n   int // live prefix length, 0 <= n <= len(buf)
}

// NewFixed returns a store with the given fixed capacity.
func NewFixed[T any](capacity int) *Fixed[T] {
	return &Fixed[T]{buf: make([]T, capacity)}
}

// FixedOver returns a store that adopts storage as its backing: capacity is
// len(storage), length starts at zero, prior contents are ignored. No
// allocation takes place.
func FixedOver[T any](storage []T) *Fixed[T] {
	return &Fixed[T]{buf: storage}
}

// Append appends one element, or fails with ErrNotEnoughCapacity when the
// store is full.
func (f *Fixed[T]) Append(v T) error {
	if f.n == len(f.buf) {
		return ErrNotEnoughCapacity
	}
	f.buf[f.n] = v
	f.n++
	return nil
}

// AppendSeq appends every element of vs in order, consuming the sequence
// lazily. If capacity runs out before the sequence ends, consumption stops,
// the length is restored, the slots written by this call are cleared, and
// AppendSeq fails with ErrNotEnoughCapacity. A failed call leaves the store
// observably identical to before it.
func (f *Fixed[T]) AppendSeq(vs iter.Seq[T]) error {
	start := f.n
	for v := range vs {
		if f.n == len(f.buf) {
			clear(f.buf[start:f.n])
			f.n = start
			return ErrNotEnoughCapacity
		}
		f.buf[f.n] = v
		f.n++
	}
	return nil
}

// AppendSlice appends every element of vs. The capacity check runs before
// any write, so a failing call has written nothing at all.
func (f *Fixed[T]) AppendSlice(vs []T) error {
	if f.n+len(vs) > len(f.buf) {
		return ErrNotEnoughCapacity
	}
	f.n += copy(f.buf[f.n:], vs)
	return nil
}

// Values returns the live prefix. The slice aliases the store's storage, is
// valid until the next append, and is capacity-capped so appending to it
// cannot touch the store's dead tail.
func (f *Fixed[T]) Values() []T { return f.buf[:f.n:f.n] }

func (f *Fixed[T]) Len() int { return f.n }

func (f *Fixed[T]) Cap() int { return len(f.buf) }

func (f *Fixed[T]) Empty() bool { return f.n == 0 }

func (f *Fixed[T]) Full() bool { return f.n == len(f.buf) }
