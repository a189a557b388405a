package vector

// Buffer exclusively owns one contiguous allocation of T.
// Not goroutine-safe. A Buffer must not be copied by value once it holds
// an allocation; ownership moves between buffers only through Swap.
type Buffer[T any] struct {
	data []T // backing memory, nil when nothing is allocated
}

// NewBuffer allocates a buffer of n zero-valued elements.
// If n == 0, the buffer holds no allocation. Panics if n < 0.
func NewBuffer[T any](n int) Buffer[T] {
	if n < 0 {
		panic("vector: negative buffer length")
	}
	if n == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{data: make([]T, n)}
}

// Len returns the number of slots in the allocation.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Get returns the element in slot i.
func (b *Buffer[T]) Get(i int) T {
	return b.data[i]
}

// Set stores v in slot i.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[i] = v
}

// Ref returns a pointer to slot i. The pointer is valid until the
// buffer is released or swapped away.
func (b *Buffer[T]) Ref(i int) *T {
	return &b.data[i]
}

// Slice returns the whole allocation as a slice view.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Swap exchanges allocations with other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Release drops the allocation. The buffer stays usable as an empty buffer.
func (b *Buffer[T]) Release() {
	b.data = nil
}
