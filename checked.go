package drain

import (
	"golang.org/x/exp/constraints"

	"github.com/JohnScience/drain-at-sorted-unchecked/internal/conv"
)

// AtSorted is the validating variant of AtSortedUnchecked. It verifies that
// every index is in bounds for s and that the indices are strictly
// increasing (duplicates are rejected as ordering violations), then defers
// to the unchecked core.
//
// On success the vacated tail slots are zeroed, so removed elements no
// longer pin referenced values against garbage collection. On error the
// slice is returned unchanged.
func AtSorted[S ~[]E, E any, I constraints.Integer](s S, indices []I) (S, error) {
	if err := validateIndices(indices, len(s)); err != nil {
		return s, err
	}
	out := AtSortedUnchecked(s, indices)
	clear(s[len(out):])
	return out, nil
}

func validateIndices[I constraints.Integer](indices []I, n int) error {
	prev := -1
	for _, raw := range indices {
		idx, err := conv.ToInt(raw)
		if err != nil {
			return err
		}
		if idx >= n {
			return &ErrIndexOutOfRange{Index: idx, Len: n}
		}
		if idx <= prev {
			return &ErrIndexOrder{Index: idx, Prev: prev}
		}
		prev = idx
	}
	return nil
}
