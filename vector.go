// Package vector implements a generic growable array.
// Typical usage: append with PushBack, read with Get or At, and let the
// vector double its storage as it fills up.
package vector

// Vector is a contiguous, growable sequence of T. Not goroutine-safe.
// The zero value is an empty vector ready to use.
//
// Slots [0, Len()) hold the logical sequence. Slots [Len(), Cap()) are
// allocated but not part of it.
type Vector[T any] struct {
	buf      Buffer[T]
	size     int
	capacity int
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots currently allocated.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i. The caller must ensure 0 <= i < Len().
func (v *Vector[T]) Get(i int) T {
	precondition(i >= 0 && i < v.size, "Get index out of range")
	return v.buf.Get(i)
}

// Set stores x at index i. The caller must ensure 0 <= i < Len().
func (v *Vector[T]) Set(i int, x T) {
	precondition(i >= 0 && i < v.size, "Set index out of range")
	v.buf.Set(i, x)
}

// Ref returns a pointer to the element at index i. The caller must ensure
// 0 <= i < Len(). The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) *T {
	precondition(i >= 0 && i < v.size, "Ref index out of range")
	return v.buf.Ref(i)
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	precondition(v.size > 0, "Front on empty vector")
	return v.buf.Get(0)
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	precondition(v.size > 0, "Back on empty vector")
	return v.buf.Get(v.size - 1)
}

// At returns the element at index i, or an error matching ErrOutOfRange
// if i is outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.buf.Get(i), nil
}

// SetAt stores x at index i, or returns an error matching ErrOutOfRange.
func (v *Vector[T]) SetAt(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.buf.Set(i, x)
	return nil
}

// RefAt returns a pointer to the element at index i, or an error matching
// ErrOutOfRange.
func (v *Vector[T]) RefAt(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return v.buf.Ref(i), nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.size {
		return &OutOfRangeError{Index: i, Size: v.size}
	}
	return nil
}

// Clear sets the length to zero. Capacity and stored values are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize changes the length to n.
//
// Shrinking only moves the logical end. Growing within capacity zeroes the
// new slots. Growing past capacity reallocates to NextCapacity(Len(), n).
// Panics if n < 0.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}

	switch {
	case n < v.size:
		v.size = n
	case n <= v.capacity:
		clear(v.buf.Slice()[v.size:n])
		v.size = n
	default:
		newCapacity := NextCapacity(v.size, n)
		v.reallocate(newCapacity)
		// Slots [size, n) of a fresh buffer are already zero.
		v.size = n
	}
}

// Reserve grows the capacity to exactly n if n > Cap(). Otherwise it does
// nothing. The length is unchanged.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.reallocate(n)
	}
}

// ShrinkToFit drops spare capacity so that Cap() == Len().
func (v *Vector[T]) ShrinkToFit() {
	if v.capacity == v.size {
		return
	}
	if v.size == 0 {
		v.buf.Release()
		v.capacity = 0
		return
	}
	v.reallocate(v.size)
}

// reallocate moves the live elements into a fresh buffer of n slots and
// releases the old one.
func (v *Vector[T]) reallocate(n int) {
	next := NewBuffer[T](n)
	copy(next.Slice(), v.buf.Slice()[:v.size])
	v.buf.Swap(&next)
	next.Release()
	v.capacity = n
}

// PushBack appends x, doubling the capacity when the vector is full.
func (v *Vector[T]) PushBack(x T) {
	v.Resize(v.size + 1)
	v.buf.Set(v.size-1, x)
}

// PopBack removes the last element. It does nothing on an empty vector.
// The removed value stays in storage until overwritten.
func (v *Vector[T]) PopBack() {
	if v.IsEmpty() {
		return
	}
	v.size--
}

// Insert places x at position pos, shifting later elements right, and
// returns the position of the inserted element. pos == Len() appends.
// The caller must ensure 0 <= pos <= Len().
func (v *Vector[T]) Insert(pos int, x T) int {
	precondition(pos >= 0 && pos <= v.size, "Insert position out of range")

	// Resize may reallocate, so everything below works on offsets.
	v.Resize(v.size + 1)
	data := v.buf.Slice()
	copy(data[pos+1:v.size], data[pos:v.size-1])
	data[pos] = x
	return pos
}

// Erase removes the element at position pos, shifting later elements left,
// and returns pos, which now holds the element that followed the erased
// one (or equals Len() if the last element was erased).
// The caller must ensure 0 <= pos < Len().
func (v *Vector[T]) Erase(pos int) int {
	precondition(pos >= 0 && pos < v.size, "Erase position out of range")

	data := v.buf.Slice()
	copy(data[pos:v.size-1], data[pos+1:v.size])
	v.size--
	return pos
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}
