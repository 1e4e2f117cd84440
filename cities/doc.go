// Package cities is the city/cost collaborator of the genetic TSP engine.
//
// A Cities value holds planar city coordinates and their precomputed
// Euclidean distance matrix (matrix.Dense). It exposes exactly what the
// evolutionary engine consumes:
//
//   - Size(): the number of cities N;
//   - TotalPathDistance(order): the closed-tour length of a permutation of [0,N).
//
// Around that core it offers checked costing (TourCost), reading and writing
// the plain "x y" city file format, and random instances for experiments.
//
// Cities is immutable after construction and safe for concurrent readers.
package cities
