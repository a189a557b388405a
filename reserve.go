package vector

// ReserveRequest carries a capacity hint for NewReserved.
type ReserveRequest struct {
	capacity int
}

// Reserve returns a request for a vector with room for capacity elements.
// Panics if capacity < 0.
func Reserve(capacity int) ReserveRequest {
	if capacity < 0 {
		panic("vector: negative capacity")
	}
	return ReserveRequest{capacity: capacity}
}

// Capacity returns the requested capacity.
func (r ReserveRequest) Capacity() int {
	return r.capacity
}
