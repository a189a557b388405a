package vector

// Spare returns the number of allocated slots past the logical end.
func (v *Vector[T]) Spare() int {
	return v.capacity - v.size
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of the vector's storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:        v.size,
		Capacity:    v.capacity,
		Spare:       v.Spare(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains storage statistics about a vector.
type VectorMetrics struct {
	Size        int     // Elements in the logical sequence
	Capacity    int     // Slots allocated
	Spare       int     // Slots allocated past the logical end
	Utilization float64 // Ratio of size to capacity (0.0-1.0)
}
