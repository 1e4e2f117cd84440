// Package genetic provides a genetic-algorithm optimizer for the Travelling
// Salesman Problem.
//
// A Chromosome is one candidate tour: a permutation of the city indices
// 0..N-1, visited in order and closed back to the first city. A Population
// (deme) owns a fixed, even number of chromosomes and evolves them one
// generation at a time:
//
//   - parents are drawn by fitness-proportionate (roulette-wheel) selection;
//   - each parent swaps two cities with probability MutationRate;
//   - every parent pair yields two children by ordered crossover (OX);
//   - the children replace the whole previous generation (no elitism).
//
// Fitness is FitnessScale / tour length, so shorter tours score higher.
//
// Cost data comes from any CostProvider (see package cities for the planar
// Euclidean one). Randomness is never global: every Population owns an explicit
// *rand.Rand seeded from Options.Seed, so equal seeds give equal runs. With
// Options.Workers > 1 the parent pairs of a generation are bred concurrently
// on independent derived streams; results stay deterministic for a given
// seed and worker-count independent.
//
// A chromosome that is not a permutation is a programming defect. Every
// construction, mutation and crossover path checks the invariant and panics
// on violation instead of returning an error. Configuration mistakes are
// reported by NewPopulation as sentinel errors.
package genetic
