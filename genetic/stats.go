package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the current generation.
//
// Complexity: O(n).
func (p *Population) Stats() Stats {
	var (
		n         = len(p.members)
		fitness   = make([]float64, n)
		distances = make([]float64, n)
		i         int
	)
	for i = range p.members {
		fitness[i] = p.members[i].Fitness()
		distances[i] = p.members[i].Distance()
	}
	mean, std := stat.MeanStdDev(fitness, nil)

	return Stats{
		Generation:    p.generation,
		Size:          n,
		BestFitness:   floats.Max(fitness),
		MeanFitness:   mean,
		StdDevFitness: std,
		BestDistance:  floats.Min(distances),
		MeanDistance:  stat.Mean(distances, nil),
		WorstDistance: floats.Max(distances),
	}
}
