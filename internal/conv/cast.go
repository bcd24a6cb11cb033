package conv

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ToInt converts v to int safely.
func ToInt[I constraints.Integer](v I) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (negative)", v)
	}
	// v >= 0, so widening to uint64 is value-preserving for every integer type.
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
