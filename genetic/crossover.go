// Package genetic - ordered crossover (OX).
//
// For cut points b<e the child copies parent1[b:e) verbatim and fills every
// other position, left to right, with parent2's cities in parent2's own order,
// skipping the cities already taken from parent1[b:e). When both parents are
// permutations the child is one as well.
package genetic

import (
	"fmt"
	"math/rand"
)

// Recombine returns two children of c and other. The first keeps a segment of
// c and the order of other; the second keeps a segment of other and the order
// of c. Each child uses its own independently drawn cut points.
// It panics if the parents have different lengths.
//
// Complexity: O(n·(e-b)) per child.
func (c *Chromosome) Recombine(other *Chromosome, rng *rand.Rand) (*Chromosome, *Chromosome) {
	if len(c.order) != len(other.order) {
		panic(fmt.Sprintf("genetic: recombine of lengths %d and %d", len(c.order), len(other.order)))
	}
	var n = len(c.order)

	b, e := cutPoints(n, rng)
	child1 := OrderedCrossover(c, other, b, e)

	b, e = cutPoints(n, rng)
	child2 := OrderedCrossover(other, c, b, e)

	return child1, child2
}

// OrderedCrossover builds the OX child of p1 and p2 for the segment [b,e).
// The child inherits p1's fitness scale and cost provider.
// It panics unless 0 <= b < e <= N and both parents have length N.
//
// Complexity: O(n·(e-b)).
func OrderedCrossover(p1, p2 *Chromosome, b, e int) *Chromosome {
	var n = len(p1.order)
	if len(p2.order) != n {
		panic(fmt.Sprintf("genetic: crossover of lengths %d and %d", n, len(p2.order)))
	}
	if b < 0 || e > n || b >= e {
		panic(fmt.Sprintf("genetic: crossover cut points [%d,%d) invalid for length %d", b, e, n))
	}

	order := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		if i >= b && i < e {
			order[i] = p1.order[i]
			continue
		}
		// Skip p2's cities that p1 already contributed through [b,e).
		for j < n && p1.InRange(p2.order[j], b, e) {
			j++
		}
		if j >= n {
			panic(fmt.Sprintf("genetic: crossover ran out of cities (parents %v, %v)", p1.order, p2.order))
		}
		order[i] = p2.order[j]
		j++
	}

	return newChromosome(p1.cost, order, p1.scale, "crossover")
}

// cutPoints draws two distinct positions in [0,n) and returns them ordered, b<e.
func cutPoints(n int, rng *rand.Rand) (int, int) {
	b, e := distinctPair(n, rng)
	if b > e {
		b, e = e, b
	}

	return b, e
}
