package vector

import "cmp"

// Comparison operators. Every relation is derived from a single
// lexicographic less-than, so Equal and Compare always agree with Less.

// Less reports whether a sorts before b lexicographically.
// Elements are ordered by cmp.Less, so NaN sorts before any other value.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// Greater reports whether a sorts after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// LessEqual reports whether a does not sort after b.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// GreaterEqual reports whether a does not sort before b.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// Equal reports whether neither vector sorts before the other.
func Equal[T cmp.Ordered](a, b *Vector[T]) bool {
	return EqualFunc(a, b, cmp.Less[T])
}

// NotEqual reports whether one vector sorts before the other.
func NotEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Compare returns -1 if a sorts before b, +1 if b sorts before a, and 0
// otherwise.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Less[T])
}

// LessFunc is Less with element order given by less, which must be a
// strict weak ordering.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		x, y := a.buf.Get(i), b.buf.Get(i)
		if less(x, y) {
			return true
		}
		if less(y, x) {
			return false
		}
	}
	return a.size < b.size
}

// EqualFunc is Equal with element order given by less.
func EqualFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	return !LessFunc(a, b, less) && !LessFunc(b, a, less)
}

// CompareFunc is Compare with element order given by less.
func CompareFunc[T any](a, b *Vector[T], less func(x, y T) bool) int {
	switch {
	case LessFunc(a, b, less):
		return -1
	case LessFunc(b, a, less):
		return 1
	default:
		return 0
	}
}
