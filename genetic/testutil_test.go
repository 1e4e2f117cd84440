// Package genetic_test holds shared fixtures for the genetic package tests.
package genetic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the deterministic seed used across tests.
	seedDet = int64(42)

	// fitnessK is the default fitness numerator.
	fitnessK = 10000.0
)

// unitSquare returns the four corners of the unit square.
func unitSquare(t testing.TB) *cities.Cities {
	t.Helper()
	c, err := cities.New([]cities.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)

	return c
}

// circle returns n cities evenly spaced on a circle of radius r.
func circle(t testing.TB, n int, r float64) *cities.Cities {
	t.Helper()
	pts := make([]cities.Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = cities.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	c, err := cities.New(pts)
	require.NoError(t, err)

	return c
}

// line is a CostProvider with n cities on a line whose tour length is the
// sum of |a-b| over closing edges; used to craft exact fitness values.
type line struct{ n int }

func (l line) Size() int { return l.n }

func (l line) TotalPathDistance(order []int) float64 {
	var sum float64
	for i := range order {
		sum += math.Abs(float64(order[i] - order[(i+1)%len(order)]))
	}

	return sum
}

// flat is a CostProvider whose every tour has zero length.
type flat struct{ n int }

func (f flat) Size() int { return f.n }

func (f flat) TotalPathDistance([]int) float64 { return 0 }

// newRNG returns a deterministic stream for tests.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// requirePermutation asserts that order is a permutation of [0,n).
func requirePermutation(t testing.TB, order []int, n int) {
	t.Helper()
	require.Len(t, order, n)
	seen := make([]bool, n)
	for _, v := range order {
		require.True(t, v >= 0 && v < n, "value %d out of range in %v", v, order)
		require.False(t, seen[v], "duplicate %d in %v", v, order)
		seen[v] = true
	}
}
