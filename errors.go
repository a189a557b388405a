package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every error returned from checked access.
var ErrOutOfRange = errors.New("vector: index out of range")

// OutOfRangeError reports a checked access outside [0, Size).
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d)", e.Index, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
