package vector

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n zero-valued elements with Cap() == n.
// Panics if n < 0.
func NewSized[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vector: negative size")
	}
	return &Vector[T]{buf: NewBuffer[T](n), size: n, capacity: n}
}

// NewFilled returns a vector of n copies of x with Cap() == n.
// Panics if n < 0.
func NewFilled[T any](n int, x T) *Vector[T] {
	v := NewSized[T](n)
	data := v.buf.Slice()
	for i := range data {
		data[i] = x
	}
	return v
}

// Of returns a vector holding a copy of items, in order, with
// Cap() == len(items).
func Of[T any](items ...T) *Vector[T] {
	v := NewSized[T](len(items))
	copy(v.buf.Slice(), items)
	return v
}

// NewReserved returns an empty vector with r.Capacity() slots allocated.
func NewReserved[T any](r ReserveRequest) *Vector[T] {
	return &Vector[T]{buf: NewBuffer[T](r.Capacity()), capacity: r.Capacity()}
}

// Clone returns a deep copy of v's elements. Spare capacity is not
// carried over: the clone has Cap() == Len().
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewSized[T](v.size)
	copy(c.buf.Slice(), v.buf.Slice()[:v.size])
	return c
}

// Move returns a vector that takes over src's storage, length and
// capacity. src is left empty with no allocation.
func Move[T any](src *Vector[T]) *Vector[T] {
	dst := &Vector[T]{}
	dst.Swap(src)
	return dst
}

// Assign replaces v's contents with a copy of other's. Assigning a vector
// to itself does nothing. v is only modified once the copy is complete.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	c := other.Clone()
	v.Swap(c)
	c.Release()
}

// MoveFrom releases v's storage and takes over other's. other is left
// empty with no allocation. Moving a vector into itself does nothing.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.Swap(other)
}

// Release drops the storage. The vector is left empty and may be reused.
func (v *Vector[T]) Release() {
	v.buf.Release()
	v.size = 0
	v.capacity = 0
}
