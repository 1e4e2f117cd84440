package genetic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gatsp/genetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewChromosome_RandomIsPermutation checks permutation closure of random construction.
func TestNewChromosome_RandomIsPermutation(t *testing.T) {
	cp := circle(t, 17, 10)
	rng := newRNG(seedDet)
	for i := 0; i < 200; i++ {
		c := genetic.NewChromosome(cp, rng)
		require.True(t, c.IsValid())
		requirePermutation(t, c.Order(), 17)
		assert.InDelta(t, cp.TotalPathDistance(c.Order()), c.Distance(), 1e-12)
	}
}

// TestNewChromosome_Uniform checks that all 3! orderings of three cities appear
// with roughly equal frequency.
func TestNewChromosome_Uniform(t *testing.T) {
	cp := line{n: 3}
	rng := newRNG(seedDet)
	counts := map[[3]int]int{}
	const draws = 6000
	for i := 0; i < draws; i++ {
		o := genetic.NewChromosome(cp, rng).Order()
		counts[[3]int{o[0], o[1], o[2]}]++
	}
	require.Len(t, counts, 6)
	for perm, c := range counts {
		assert.InDelta(t, draws/6, c, 150, "permutation %v", perm)
	}
}

// TestNewChromosomeFromOrder_Errors covers invalid orderings and a nil provider.
func TestNewChromosomeFromOrder_Errors(t *testing.T) {
	cp := unitSquare(t)
	var tests = []struct {
		name  string
		order []int
	}{
		{"short", []int{0, 1, 2}},
		{"duplicate", []int{0, 1, 1, 3}},
		{"out of range", []int{0, 1, 2, 4}},
		{"negative", []int{-1, 0, 1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := genetic.NewChromosomeFromOrder(cp, tc.order)
			require.ErrorIs(t, err, genetic.ErrInvalidPermutation)
		})
	}

	_, err := genetic.NewChromosomeFromOrder(nil, []int{0})
	require.ErrorIs(t, err, genetic.ErrNilCostProvider)
}

// TestNewChromosomeFromOrder_Copies ensures the caller's slice is not aliased.
func TestNewChromosomeFromOrder_Copies(t *testing.T) {
	order := []int{3, 2, 1, 0}
	c, err := genetic.NewChromosomeFromOrder(unitSquare(t), order)
	require.NoError(t, err)
	order[0] = 99
	require.Equal(t, []int{3, 2, 1, 0}, c.Order())

	out := c.Order()
	out[1] = 77
	require.Equal(t, 2, c.At(1))
}

// TestMutate_SwapsExactlyTwo checks that a mutation swaps two positions and
// refreshes the cached distance.
func TestMutate_SwapsExactlyTwo(t *testing.T) {
	cp := circle(t, 9, 1)
	rng := newRNG(seedDet)
	for i := 0; i < 100; i++ {
		c := genetic.NewChromosome(cp, rng)
		before := c.Order()
		c.Mutate(rng)
		after := c.Order()

		require.True(t, c.IsValid())
		var diff []int
		for k := range before {
			if before[k] != after[k] {
				diff = append(diff, k)
			}
		}
		require.Len(t, diff, 2, "before %v after %v", before, after)
		require.Equal(t, before[diff[0]], after[diff[1]])
		require.Equal(t, before[diff[1]], after[diff[0]])
		require.InDelta(t, cp.TotalPathDistance(after), c.Distance(), 1e-12)
	}
}

// TestFitness_InverseOfDistance checks fitness = K/d and monotonicity.
func TestFitness_InverseOfDistance(t *testing.T) {
	cp := unitSquare(t)
	perimeter, err := genetic.NewChromosomeFromOrder(cp, []int{0, 1, 2, 3})
	require.NoError(t, err)
	crossing, err := genetic.NewChromosomeFromOrder(cp, []int{0, 2, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, 4.0, perimeter.Distance())
	assert.Equal(t, fitnessK/4, perimeter.Fitness())
	// Tour lengths come rounded to 1e-9 from the provider; fitness uses that value.
	assert.InDelta(t, 2+2*math.Sqrt2, crossing.Distance(), 1e-9)
	assert.Equal(t, fitnessK/crossing.Distance(), crossing.Fitness())

	require.Less(t, perimeter.Distance(), crossing.Distance())
	require.Greater(t, perimeter.Fitness(), crossing.Fitness())
}

// TestInRange covers the containment query.
func TestInRange(t *testing.T) {
	c, err := genetic.NewChromosomeFromOrder(line{n: 5}, []int{4, 0, 3, 1, 2})
	require.NoError(t, err)

	assert.True(t, c.InRange(0, 1, 3))
	assert.True(t, c.InRange(3, 1, 3))
	assert.False(t, c.InRange(1, 1, 3))
	assert.False(t, c.InRange(4, 1, 3))
	assert.False(t, c.InRange(4, 2, 2))
	assert.True(t, c.InRange(2, 0, 5))
}

// TestSameOrderAndClone covers equality and independent clones.
func TestSameOrderAndClone(t *testing.T) {
	c, err := genetic.NewChromosomeFromOrder(line{n: 4}, []int{0, 1, 2, 3})
	require.NoError(t, err)
	cl := c.Clone()
	require.True(t, c.SameOrder(cl))
	require.NotSame(t, c, cl)

	cl.Mutate(newRNG(seedDet))
	require.False(t, c.SameOrder(cl))
	require.Equal(t, []int{0, 1, 2, 3}, c.Order())
	require.Equal(t, 4, c.Len())
	require.Equal(t, "[0 1 2 3] d=6", c.String())

	tour := c.Tour()
	require.Equal(t, []int{0, 1, 2, 3}, tour.Order)
	require.Equal(t, 6.0, tour.Distance)
	require.Equal(t, fitnessK/6, tour.Fitness)
}
