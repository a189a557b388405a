package vector

// NextCapacity returns the capacity to allocate when a vector holding size
// elements must grow to hold newSize elements.
//
// Doubling keeps a run of appends amortized O(1); taking the max with newSize
// still honors a single large resize.
func NextCapacity(size, newSize int) int {
	return max(newSize, size*2)
}
