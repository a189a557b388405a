package vector

import (
	"fmt"
	"iter"
)

// Data returns the elements as a slice that shares v's storage.
// The slice is capped at Len(), so appending to it never writes into v's
// spare capacity. It is invalidated by any reallocation of v.
func (v *Vector[T]) Data() []T {
	return v.buf.Slice()[:v.size:v.size]
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.Get(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.Get(i)) {
				return
			}
		}
	}
}

// String formats the elements the way fmt prints a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}
