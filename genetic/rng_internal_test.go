package genetic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRNGFromSeed_ZeroPolicy checks that seed 0 maps to defaultRNGSeed.
func TestRNGFromSeed_ZeroPolicy(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)
	for i := 0; i < 10; i++ {
		require.Equal(t, b.Int63(), a.Int63())
	}
}

// TestDeriveRNG_IndependentStreams checks that derived streams are reproducible
// and differ across stream ids.
func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base1, base2 := rngFromSeed(9), rngFromSeed(9)
	s1 := deriveRNG(base1, 0)
	s2 := deriveRNG(base2, 0)
	require.Equal(t, s1.Int63(), s2.Int63())

	x := deriveRNG(rngFromSeed(9), 0).Int63()
	y := deriveRNG(rngFromSeed(9), 1).Int63()
	require.NotEqual(t, x, y)
	require.NotEqual(t, deriveSeed(1, 0), deriveSeed(1, 1))
}

// TestDistinctPair never returns equal positions.
func TestDistinctPair(t *testing.T) {
	rng := rngFromSeed(3)
	for i := 0; i < 1000; i++ {
		a, b := distinctPair(2+i%5, rng)
		require.NotEqual(t, a, b)
	}
	for i := 0; i < 100; i++ {
		b, e := cutPoints(4, rng)
		require.Less(t, b, e)
		require.GreaterOrEqual(t, b, 0)
		require.Less(t, e, 4)
	}
}

// TestRandomOrder checks the permutation property and the sort-based validator.
func TestRandomOrder(t *testing.T) {
	rng := rngFromSeed(5)
	for n := 1; n < 30; n++ {
		require.True(t, isPermutation(randomOrder(n, rng)))
	}
	require.False(t, isPermutation([]int{1, 2, 3}))
	require.False(t, isPermutation([]int{0, 0, 1}))
	require.True(t, isPermutation(nil))
}

// TestMustBeValid_Panics checks the fail-fast invariant guard.
func TestMustBeValid_Panics(t *testing.T) {
	c := &Chromosome{order: []int{0, 2, 2}}
	require.Panics(t, func() { mustBeValid(c, "test") })
	c.order = []int{2, 0, 1}
	require.NotPanics(t, func() { mustBeValid(c, "test") })
}
