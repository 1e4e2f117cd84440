// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance-matrix primitives used by gatsp.
//
// The package offers:
//
//   - Matrix: a minimal two-dimensional float64 interface with bounds-checked access.
//   - Dense: a row-major implementation backed by one flat slice.
//   - NewEuclidean: a symmetric distance matrix built from planar coordinates.
//   - ValidateSquare / ValidateDistance: shape and metric sanity checks.
//
// Public accessors never panic on bad indices; they return sentinel errors from
// errors.go, which callers match with errors.Is.
package matrix
