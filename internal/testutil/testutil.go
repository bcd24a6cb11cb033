// Package testutil provides seeded random input generation for tests and
// benchmarks.
package testutil

import (
	"math/rand"
	"sort"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// IntSequence generates a sequence 0..n-1, handy as a removal target because
// every element equals its original index.
func (r *RNG) IntSequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// SortedUniqueIndices generates k sorted, unique indices in [0, n).
func (r *RNG) SortedUniqueIndices(n, k int) []int {
	indices := r.rand.Perm(n)[:k]
	sort.Ints(indices)
	return indices
}

// Intn returns a uniform random value in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}
