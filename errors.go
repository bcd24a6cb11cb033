package drain

import (
	"fmt"
)

// ErrIndexOutOfRange indicates a removal index outside the bounds of the
// slice.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

// ErrIndexOrder indicates a removal index that is not strictly greater than
// its predecessor. Index == Prev means a duplicate.
type ErrIndexOrder struct {
	Index int
	Prev  int
}

func (e *ErrIndexOrder) Error() string {
	return fmt.Sprintf("index %d does not follow %d in strictly increasing order", e.Index, e.Prev)
}
