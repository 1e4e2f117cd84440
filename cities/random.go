package cities

import (
	"math"
	"math/rand"
)

// Random places n cities uniformly at random inside [0,width)×[0,height)
// using rng. Equal rng state yields an identical instance.
//
// Errors: ErrNoCities for n<=0, ErrBadBounds for non-positive or non-finite extents.
//
// Complexity: O(n²) (distance matrix).
func Random(n int, rng *rand.Rand, width, height float64) (*Cities, error) {
	if n <= 0 {
		return nil, ErrNoCities
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, ErrBadBounds
	}

	pts := make([]Point, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = Point{X: rng.Float64() * width, Y: rng.Float64() * height}
	}

	return New(pts)
}
