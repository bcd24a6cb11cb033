// Package drain removes a batch of elements from a slice at a given set of
// index positions with the minimum possible number of element relocations.
//
// Removing k elements one at a time from a length-n slice costs O(k*n)
// element moves in the worst case, because every removal re-shifts the whole
// tail. The functions in this package instead walk the gaps between removed
// indices and relocate each surviving run exactly once, directly to its final
// position: n-k element moves total, which is optimal.
//
// # Quick Start
//
//	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
//	s = drain.AtSortedUnchecked(s, []int{2, 4, 6})
//	// s is now [0, 1, 3, 5, 7, 8]
//
// # Unchecked vs Checked
//
// The *Unchecked functions are the core of the package. They perform no
// validation and operate on the slice's raw backing storage;
// AtSortedUnchecked additionally performs zero allocations. The caller guarantees that the indices are strictly increasing,
// unique, and in bounds; violating that contract corrupts the slice contents
// in unspecified ways (it cannot corrupt unrelated memory — the relocations
// stay within the slice's own backing array, but the result is garbage).
//
// AtSorted and AtBitmap are the validating layer on top: they check the
// index contract, return a typed error on violation, and additionally zero
// the vacated tail slots so the garbage collector can reclaim whatever the
// removed elements referenced. Unchecked callers that care about reference
// retention can clear the tail themselves.
//
// # Index Sources
//
// Indices can be supplied as a slice of any integer type, as an iter.Seq, or
// as a roaring bitmap. A bitmap is a natural fit: it yields its members in
// ascending order without duplicates, so only the bounds precondition
// remains with the caller.
//
//	rb := roaring.New()
//	rb.AddMany([]uint32{2, 4, 6})
//	s = drain.AtBitmapUnchecked(s, rb)
//
// # Aliasing
//
// All functions mutate the slice in place and return the shortened slice,
// which shares the original backing array. Like append, the caller is
// expected to reassign the result; other slices aliasing the same array will
// observe the compaction.
package drain
