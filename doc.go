// Package gatsp is a genetic-algorithm optimizer for the Travelling Salesman
// Problem: it evolves a population of candidate tours with roulette-wheel
// selection, ordered crossover and swap mutation, converging toward short
// closed tours.
//
// Everything is organized under a few subpackages:
//
//	matrix/     Matrix interface, row-major Dense, Euclidean distance matrices
//	cities/     city instances: coordinates, tour costing, "x y" file format
//	genetic/    Chromosome (one tour) and Population (generational engine)
//	cmd/gatsp/  command-line driver: TOML config, logging, metrics, plots
//
// Quick example:
//
//	cs, _ := cities.ReadFile("cities.tsv")
//	pop, _ := genetic.NewPopulation(cs, 100, 0.05, genetic.DefaultOptions())
//	for g := 0; g < 1000; g++ {
//		pop.Advance()
//	}
//	best := pop.BestTour()
//
// Runs are deterministic for a given seed, sequential or parallel.
package gatsp
