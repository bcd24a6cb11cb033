package drain

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// AtBitmapUnchecked removes the elements of s whose indices are set in rb
// and returns the shortened slice.
//
// A roaring bitmap yields its members in ascending order without duplicates,
// so the ordering and uniqueness preconditions of AtSortedUnchecked hold by
// construction. The caller still guarantees rb.Maximum() < len(s); this is
// not validated. Use AtBitmap for the validating variant.
//
// The bitmap is streamed, never materialized into an index slice.
func AtBitmapUnchecked[S ~[]E, E any](s S, rb *roaring.Bitmap) S {
	it := rb.Iterator()
	newLen := drainSorted(s, func() (int, bool) {
		if !it.HasNext() {
			return 0, false
		}
		return int(it.Next()), true
	})
	return s[:newLen]
}

// AtBitmap is the validating variant of AtBitmapUnchecked. Only the bounds
// precondition needs checking; ordering and uniqueness are structural
// properties of the bitmap.
//
// On success the vacated tail slots are zeroed. On error the slice is
// returned unchanged. A nil or empty bitmap is a no-op.
func AtBitmap[S ~[]E, E any](s S, rb *roaring.Bitmap) (S, error) {
	if rb == nil || rb.IsEmpty() {
		return s, nil
	}
	if max := rb.Maximum(); uint64(max) >= uint64(len(s)) {
		return s, &ErrIndexOutOfRange{Index: int(max), Len: len(s)}
	}
	out := AtBitmapUnchecked(s, rb)
	clear(s[len(out):])
	return out, nil
}
