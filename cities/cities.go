// Package cities - instance type and tour costing.
//
// Costing follows the closed-cycle convention: for an ordering o of length n
// the tour visits o[0], o[1], …, o[n-1] and returns to o[0].
//
// Design:
//   - Distances are computed once at construction (O(n²) memory).
//   - TourCost validates its input and reports sentinel errors.
//   - TotalPathDistance is the trusted hot path used by the engine: it panics on
//     malformed orderings, which are programming defects upstream.
//   - Costs are rounded to 1e-9 to keep results stable across platforms.
package cities

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Cities is an immutable set of planar cities with precomputed distances.
type Cities struct {
	points []Point
	dist   *matrix.Dense
}

// New builds an instance from the given points (copied).
//
// Errors: ErrNoCities for an empty slice; matrix.ErrNaNInf for non-finite coordinates.
//
// Complexity: O(n²).
func New(points []Point) (*Cities, error) {
	if len(points) == 0 {
		return nil, ErrNoCities
	}

	var (
		n   = len(points)
		pts = make([]matrix.Point, n)
		i   int
	)
	for i = 0; i < n; i++ {
		pts[i] = matrix.Point{points[i].X, points[i].Y}
	}
	dist, err := matrix.NewEuclidean(pts)
	if err != nil {
		return nil, err
	}

	own := make([]Point, n)
	copy(own, points)

	return &Cities{points: own, dist: dist}, nil
}

// Size returns the number of cities N.
func (c *Cities) Size() int {
	return len(c.points)
}

// Point returns the coordinates of city i. It panics if i is out of range.
func (c *Cities) Point(i int) Point {
	return c.points[i]
}

// Points returns a copy of all city coordinates in index order.
func (c *Cities) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)

	return out
}

// Distance returns the Euclidean distance between cities i and j.
func (c *Cities) Distance(i, j int) (float64, error) {
	return c.dist.At(i, j)
}

// Matrix returns a deep copy of the distance matrix.
func (c *Cities) Matrix() matrix.Matrix {
	return c.dist.Clone()
}

// TourCost returns the closed-tour length of order.
//
// Contract:
//   - order is a permutation of [0,N) (ErrDimensionMismatch otherwise).
//   - every edge weight is finite and non-negative (ErrBadDistance otherwise).
//
// Complexity: O(n) time, O(n) space for the permutation check.
func (c *Cities) TourCost(order []int) (float64, error) {
	var n = len(c.points)
	if len(order) != n {
		return 0, ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i, v int
		sum  float64
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n || seen[v] {
			return 0, ErrDimensionMismatch
		}
		seen[v] = true
	}

	for i = 0; i < n; i++ {
		// (i+1)%n closes the loop back to order[0].
		w, err = c.dist.At(order[i], order[(i+1)%n])
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, ErrBadDistance
		}
		sum += w
	}

	return round1e9(sum), nil
}

// TotalPathDistance returns the closed-tour length of order.
// It panics when order is not a permutation of [0,N).
//
// Complexity: O(n).
func (c *Cities) TotalPathDistance(order []int) float64 {
	d, err := c.TourCost(order)
	if err != nil {
		panic(fmt.Sprintf("cities: TotalPathDistance(%v): %v", order, err))
	}

	return d
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
