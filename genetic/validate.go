package genetic

import (
	"fmt"
	"slices"
)

// IsValid reports whether c's order is a permutation of [0,N): sorting it
// must yield exactly 0, 1, …, N-1.
//
// Complexity: O(n log n) time, O(n) space.
func (c *Chromosome) IsValid() bool {
	return isPermutation(c.order)
}

// isPermutation is the sort-based canonical permutation check.
func isPermutation(order []int) bool {
	sorted := slices.Clone(order)
	slices.Sort(sorted)

	var i int
	for i = range sorted {
		if sorted[i] != i {
			return false
		}
	}

	return true
}

// mustBeValid panics when c is not a permutation. A broken tour is corrupted
// state, so it is never repaired or reported as an error.
func mustBeValid(c *Chromosome, op string) {
	if !c.IsValid() {
		panic(fmt.Sprintf("genetic: %s produced an invalid chromosome %v", op, c.order))
	}
}
