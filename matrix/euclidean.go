// SPDX-License-Identifier: MIT

// Package matrix - Euclidean distance matrices.
//
// NewEuclidean turns a list of planar points into the symmetric n×n matrix of
// straight-line distances. The diagonal is exactly zero. Distances are computed
// once, for the upper triangle only, and mirrored.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NewEuclidean builds the n×n Euclidean distance matrix for pts.
//
// Contract:
//   - len(pts) >= 1, otherwise ErrInvalidDimensions.
//   - every coordinate is finite, otherwise ErrNaNInf.
//
// Complexity: O(n²) time and memory.
func NewEuclidean(pts []Point) (*Dense, error) {
	var n = len(pts)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !finite(pts[i][0]) || !finite(pts[i][1]) {
			return nil, ErrNaNInf
		}
	}

	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = floats.Distance(pts[i][:], pts[j][:], 2)
			// Symmetric by construction: one computation, two writes.
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
