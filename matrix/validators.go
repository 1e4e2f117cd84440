// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the canonical shape and metric checks for distance matrices.
//   - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "math"

// ValidateSquare ensures m is non-nil and has Rows()==Cols()>0.
//
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows() != m.Cols() || m.Rows() <= 0 {
		return ErrNonSquare
	}

	return nil
}

// ValidateDistance performs full distance-matrix validation:
//   - non-nil and square,
//   - diagonal ≈ 0 (|a_ii| ≤ tol),
//   - every entry finite, off-diagonal entries non-negative,
//   - |a_ij − a_ji| ≤ tol.
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return err
			}
			if !finite(aij) {
				return ErrNaNInf
			}
			if i == j {
				if math.Abs(aij) > tol {
					return ErrNonZeroDiagonal
				}
				continue
			}
			if aij < 0 {
				return ErrNegativeWeight
			}
		}
	}

	// Upper triangle only; the lower one is compared against it.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}
