// Package vector implements a generic, growable array with explicit
// capacity management.
//
// # Overview
//
// A Vector owns one contiguous buffer and tracks how much of it holds live
// elements (Len) and how much is allocated (Cap). When an append or resize
// needs more room than is allocated, the vector reallocates to
// max(requested, 2*Len), which keeps appends amortized O(1).
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(3)
//	v.Insert(1, 2)            // [1 2 3]
//	v.Erase(0)                // [2 3]
//
//	x := v.Get(0)             // unchecked access
//	y, err := v.At(5)         // checked access, err matches ErrOutOfRange
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Construction
//
//	vector.New[int]()                        // empty, no allocation
//	vector.NewSized[int](5)                  // [0 0 0 0 0]
//	vector.NewFilled(3, "x")                 // [x x x]
//	vector.Of(1, 2, 3)                       // [1 2 3]
//	vector.NewReserved[int](vector.Reserve(64)) // Len 0, Cap 64
//
// Clone and Assign copy elements into a buffer sized to Len. Move and
// MoveFrom transfer the buffer and leave the source empty.
//
// # Positions
//
// Insert and Erase take and return integer positions. Insert accepts
// positions in [0, Len()], where Len() means append. Erase accepts
// positions in [0, Len()). Positions are offsets, so they stay meaningful
// across a reallocation; pointers from Ref and slices from Data do not.
//
// # Unchecked Access
//
// Get, Set, Ref, Front, Back, Insert and Erase do not validate their
// arguments. Build with -tags vectordebug to turn violations into panics.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized
//   - Get, Set, At: O(1)
//   - Insert, Erase: O(Len - pos)
//   - Clear, PopBack, Swap, Move: O(1)
//   - Clone, Assign: O(Len)
//
// # Important Notes
//
//   - Not goroutine-safe
//   - Shrinking (Resize, PopBack, Erase, Clear) never releases storage;
//     use ShrinkToFit or Release for that
//   - Values past Len stay in storage until overwritten
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Spare slots: %d\n", m.Spare)
package vector
