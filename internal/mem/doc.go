// Package mem provides raw block relocation over contiguous element storage.
//
// # Block Relocation
//
// MoveRange is a memmove-equivalent that views the backing store as a base
// pointer plus element indices. It performs no bounds checking; callers own
// the proof that both runs lie within the same allocation.
package mem
