package mem

import (
	"unsafe"
)

// MoveRange relocates n elements within the storage rooted at base, copying
// the run starting at element index srcIdx so that it begins at dstIdx.
// Source and destination may overlap; the copy has memmove semantics.
//
// The relocation is typed (element-wise under the hood), so pointer-carrying
// element types stay visible to the garbage collector throughout the move.
//
// No bounds are checked. Both runs must lie within the allocation that base
// points into, and n must be non-negative.
func MoveRange[E any](base *E, dstIdx, srcIdx, n int) {
	size := unsafe.Sizeof(*base)
	dst := (*E)(unsafe.Add(unsafe.Pointer(base), uintptr(dstIdx)*size)) //nolint:gosec // raw storage access is the point of this package
	src := (*E)(unsafe.Add(unsafe.Pointer(base), uintptr(srcIdx)*size)) //nolint:gosec // raw storage access is the point of this package
	copy(unsafe.Slice(dst, n), unsafe.Slice(src, n))
}
