package drain

import (
	"iter"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/JohnScience/drain-at-sorted-unchecked/internal/mem"
)

// AtSortedUnchecked removes the elements of s at the given indices and
// returns the shortened slice. Survivors keep their relative order; each is
// relocated at most once, directly to its final position, so the whole
// operation costs len(s)-len(indices) element moves and zero allocations.
//
// The caller guarantees:
//   - the indices are strictly increasing (which makes them unique);
//   - every index is in bounds for s.
//
// None of this is validated. A violated precondition leaves the slice
// contents unspecified. Use AtSorted for the validating variant.
//
// The vacated tail slots s[len(result):len(s)] are left untouched; they
// retain stale copies of earlier elements and may pin referenced values
// against garbage collection until overwritten or cleared.
func AtSortedUnchecked[S ~[]E, E any, I constraints.Integer](s S, indices []I) S {
	k := len(indices)
	if k == 0 {
		return s
	}
	n := len(s)
	base := unsafe.SliceData(s)

	// Walk the gaps between consecutive removed indices. The survivors
	// strictly between two removed indices form one gap; after j removals
	// the gap's final position is j slots to the left, tracked by dst.
	// Adjacent removed indices produce an empty gap and no move.
	dst := int(indices[0])
	src := dst + 1
	for _, rem := range indices[1:] {
		idx := int(rem)
		if g := idx - src; g > 0 {
			mem.MoveRange(base, dst, src, g)
			dst += g
		}
		src = idx + 1
	}
	// Tail gap: everything after the last removed index.
	if g := n - src; g > 0 {
		mem.MoveRange(base, dst, src, g)
	}
	return s[:n-k]
}

// AtSortedSeqUnchecked is AtSortedUnchecked for an index iterator. The
// sequence must yield indices in strictly ascending order, all in bounds for
// s; this is not validated.
//
// The iterator is pulled lazily, so index sequences need never be
// materialized. Unlike AtSortedUnchecked this allocates the pull machinery;
// prefer the slice form in hot paths.
func AtSortedSeqUnchecked[S ~[]E, E any, I constraints.Integer](s S, indices iter.Seq[I]) S {
	next, stop := iter.Pull(indices)
	defer stop()
	newLen := drainSorted(s, func() (int, bool) {
		idx, ok := next()
		return int(idx), ok
	})
	return s[:newLen]
}

// drainSorted is the gap walk for streaming index sources. Same algorithm as
// AtSortedUnchecked, consuming indices from next instead of a slice; returns
// the new length. Moves always target positions at or before their source,
// so the left-to-right walk never overwrites un-relocated survivors even
// when the runs overlap.
func drainSorted[S ~[]E, E any](s S, next func() (int, bool)) int {
	n := len(s)
	first, ok := next()
	if !ok {
		return n
	}
	base := unsafe.SliceData(s)
	removed := 1
	dst := first
	src := first + 1
	for {
		idx, ok := next()
		end := n
		if ok {
			end = idx
		}
		if g := end - src; g > 0 {
			mem.MoveRange(base, dst, src, g)
			dst += g
		}
		if !ok {
			return n - removed
		}
		removed++
		src = idx + 1
	}
}
