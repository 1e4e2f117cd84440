package genetic

import "math/rand"

// totalFitness sums the fitness of all members.
//
// Complexity: O(n).
func totalFitness(members []*Chromosome) float64 {
	var (
		sum float64
		i   int
	)
	for i = range members {
		sum += members[i].Fitness()
	}

	return sum
}

// rouletteSelect draws u uniformly from [0,total) and returns the first member
// whose running fitness sum exceeds u. If rounding leaves the scan short of u,
// the last member is returned. All fitness values must be positive.
//
// Complexity: O(n).
func rouletteSelect(members []*Chromosome, total float64, rng *rand.Rand) *Chromosome {
	var (
		u   = rng.Float64() * total
		acc float64
		i   int
	)
	for i = range members {
		acc += members[i].Fitness()
		if acc > u {
			return members[i]
		}
	}

	return members[len(members)-1]
}
