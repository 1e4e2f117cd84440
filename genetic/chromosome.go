// Package genetic - Chromosome: one candidate tour.
//
// A Chromosome stores its visiting order and caches its tour length, which is
// recomputed whenever the order changes (Mutate). Fitness and Distance are
// therefore O(1) reads, and concurrent readers never write.
package genetic

import (
	"fmt"
	"math/rand"
)

// Chromosome is a candidate tour over the cities of a CostProvider.
// The zero value is not usable; build one with NewChromosome,
// NewChromosomeFromOrder or by recombining two chromosomes.
type Chromosome struct {
	cost     CostProvider // shared, read-only
	order    []int        // permutation of [0,N)
	distance float64      // cached cost.TotalPathDistance(order)
	scale    float64      // fitness numerator K
}

// NewChromosome returns a uniformly random tour over cp drawn from rng.
// Fitness uses DefaultFitnessScale. It panics if cp is nil.
//
// Complexity: O(n) plus one tour costing.
func NewChromosome(cp CostProvider, rng *rand.Rand) *Chromosome {
	return newRandomChromosome(cp, rng, DefaultFitnessScale)
}

// NewChromosomeFromOrder returns a chromosome visiting order (copied).
//
// Errors:
//   - ErrNilCostProvider if cp is nil;
//   - ErrInvalidPermutation if order is not a permutation of [0,cp.Size()).
func NewChromosomeFromOrder(cp CostProvider, order []int) (*Chromosome, error) {
	if cp == nil {
		return nil, ErrNilCostProvider
	}
	if len(order) != cp.Size() || !isPermutation(order) {
		return nil, ErrInvalidPermutation
	}
	own := make([]int, len(order))
	copy(own, order)

	return newChromosome(cp, own, DefaultFitnessScale, "construction"), nil
}

// newRandomChromosome builds a random tour with the given fitness scale.
func newRandomChromosome(cp CostProvider, rng *rand.Rand, scale float64) *Chromosome {
	return newChromosome(cp, randomOrder(cp.Size(), rng), scale, "random construction")
}

// newChromosome takes ownership of order, checks the permutation invariant
// (op names the producing operation in the panic) and caches the distance.
func newChromosome(cp CostProvider, order []int, scale float64, op string) *Chromosome {
	c := &Chromosome{cost: cp, order: order, scale: scale}
	mustBeValid(c, op)
	c.distance = cp.TotalPathDistance(order)

	return c
}

// Mutate swaps the cities at two distinct, uniformly drawn positions.
//
// Complexity: O(n log n) for the invariant check plus one tour costing.
func (c *Chromosome) Mutate(rng *rand.Rand) {
	i, j := distinctPair(len(c.order), rng)
	c.order[i], c.order[j] = c.order[j], c.order[i]
	mustBeValid(c, "mutation")
	c.distance = c.cost.TotalPathDistance(c.order)
}

// Fitness returns FitnessScale / Distance; shorter tours score higher.
// A zero-length tour yields +Inf.
func (c *Chromosome) Fitness() float64 {
	return c.scale / c.distance
}

// Distance returns the closed-tour length.
func (c *Chromosome) Distance() float64 {
	return c.distance
}

// Len returns the number of cities N.
func (c *Chromosome) Len() int {
	return len(c.order)
}

// Order returns a copy of the visiting order.
func (c *Chromosome) Order() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)

	return out
}

// At returns the city visited at position i.
func (c *Chromosome) At(i int) int {
	return c.order[i]
}

// SameOrder reports whether c and other visit the cities in exactly the same order.
func (c *Chromosome) SameOrder(other *Chromosome) bool {
	if len(c.order) != len(other.order) {
		return false
	}
	var i int
	for i = range c.order {
		if c.order[i] != other.order[i] {
			return false
		}
	}

	return true
}

// InRange reports whether city v appears within positions [begin,end) of c.
//
// Complexity: O(end-begin).
func (c *Chromosome) InRange(v, begin, end int) bool {
	for ; begin < end; begin++ {
		if c.order[begin] == v {
			return true
		}
	}

	return false
}

// Clone returns an independent copy sharing the same cost provider.
func (c *Chromosome) Clone() *Chromosome {
	return &Chromosome{
		cost:     c.cost,
		order:    c.Order(),
		distance: c.distance,
		scale:    c.scale,
	}
}

// Tour returns a reporting snapshot of c.
func (c *Chromosome) Tour() Tour {
	return Tour{Order: c.Order(), Distance: c.distance, Fitness: c.Fitness()}
}

// String renders the order and distance, e.g. "[0 2 1 3] d=4.83".
func (c *Chromosome) String() string {
	return fmt.Sprintf("%v d=%.6g", c.order, c.distance)
}
