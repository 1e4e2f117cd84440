// Package genetic - Population: the generational engine.
//
// Each call to Advance replaces every member. For popSize/2 pairs it:
//  1. draws two parents by roulette wheel, re-drawing the second while it has
//     the same ordering as the first (bounded by Options.MaxReselect);
//  2. flips one mutation coin per parent and swap-mutates on success;
//  3. recombines the parents into two children by ordered crossover.
//
// Sequential mode (Workers<=1) reads one stream in a fixed order: parent 1,
// parent 2 (and re-draws), coin 1 (and swap), coin 2 (and swap), child 1 cut
// points, child 2 cut points. Parents are mutated in place, so a mutated parent
// is seen mutated by later pairs of the same generation.
//
// Parallel mode (Workers>1) derives one stream per pair up front, then breeds
// pairs on a bounded goroutine pool. The previous generation is read-only there;
// a parent that draws a mutation is cloned and the clone mutated.
package genetic

import (
	"context"
	"math"
	"math/rand"

	"github.com/sourcegraph/conc/pool"
)

// Population is a fixed-size deme of chromosomes evolved by generational replacement.
// It is not safe for concurrent use.
//
// Re-drawing a second parent that repeats the first stops after
// Options.MaxReselect tries, so a converged deme whose members all share one
// ordering still advances: it recombines identical parents, and OX of two
// equal tours returns that same tour.
type Population struct {
	cost         CostProvider
	members      []*Chromosome
	mutationRate float64
	opts         Options
	rng          *rand.Rand
	generation   int
}

// NewPopulation builds popSize random chromosomes over cp.
//
// Errors (checked in this order):
//   - ErrNilCostProvider, ErrTooFewCities (cp.Size() < 2);
//   - ErrPopulationSize (popSize < 2), ErrOddPopulationSize;
//   - ErrMutationRate (NaN or outside [0,1]);
//   - ErrFitnessScale, ErrWorkers, ErrMaxReselect from opts;
//   - ErrDegenerateTour when some initial tour has a zero, negative or non-finite length.
//
// Complexity: O(popSize·n) plus popSize tour costings.
func NewPopulation(cp CostProvider, popSize int, mutationRate float64, opts Options) (*Population, error) {
	if cp == nil {
		return nil, ErrNilCostProvider
	}
	if cp.Size() < 2 {
		return nil, ErrTooFewCities
	}
	if popSize < 2 {
		return nil, ErrPopulationSize
	}
	if popSize%2 != 0 {
		return nil, ErrOddPopulationSize
	}
	if math.IsNaN(mutationRate) || mutationRate < 0 || mutationRate > 1 {
		return nil, ErrMutationRate
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	p := &Population{
		cost:         cp,
		members:      make([]*Chromosome, popSize),
		mutationRate: mutationRate,
		opts:         opts,
		rng:          rngFromSeed(opts.Seed),
	}

	var (
		i int
		d float64
	)
	for i = 0; i < popSize; i++ {
		p.members[i] = newRandomChromosome(cp, p.rng, opts.FitnessScale)
		d = p.members[i].Distance()
		if !(d > 0) || math.IsInf(d, 0) {
			return nil, ErrDegenerateTour
		}
	}

	return p, nil
}

// Size returns the number of members.
func (p *Population) Size() int {
	return len(p.members)
}

// Generation returns how many times Advance has completed.
func (p *Population) Generation() int {
	return p.generation
}

// MutationRate returns the per-parent mutation probability.
func (p *Population) MutationRate() float64 {
	return p.mutationRate
}

// Members returns the current generation in index order. The slice is a copy;
// the chromosomes are owned by the population and must be treated as read-only.
func (p *Population) Members() []*Chromosome {
	out := make([]*Chromosome, len(p.members))
	copy(out, p.members)

	return out
}

// Best returns the fittest member; ties go to the lowest index.
// The result is read-only and is replaced by the next Advance.
//
// Complexity: O(n).
func (p *Population) Best() *Chromosome {
	var (
		best = p.members[0]
		i    int
	)
	for i = 1; i < len(p.members); i++ {
		if p.members[i].Fitness() > best.Fitness() {
			best = p.members[i]
		}
	}

	return best
}

// BestTour returns a snapshot of Best that stays valid across generations.
func (p *Population) BestTour() Tour {
	return p.Best().Tour()
}

// SelectParent returns one member drawn with probability proportional to fitness.
// It consumes one draw from the population stream.
//
// Complexity: O(n).
func (p *Population) SelectParent() *Chromosome {
	return rouletteSelect(p.members, totalFitness(p.members), p.rng)
}

// Advance evolves one generation and replaces every member.
func (p *Population) Advance() {
	var next []*Chromosome
	if p.opts.Workers > 1 {
		next = p.advanceParallel()
	} else {
		next = p.advanceSequential()
	}
	p.members = next
	p.generation++
}

// Evolve calls Advance up to generations times. After each generation the
// optional observe callback receives the generation Stats; returning false
// stops early. ctx is checked between generations and its error returned.
func (p *Population) Evolve(ctx context.Context, generations int, observe func(Stats) bool) error {
	var g int
	for g = 0; g < generations; g++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Advance()
		if observe != nil && !observe(p.Stats()) {
			return nil
		}
	}

	return nil
}

// advanceSequential is the reference single-stream loop.
func (p *Population) advanceSequential() []*Chromosome {
	var (
		pairs = len(p.members) / 2
		next  = make([]*Chromosome, 0, 2*pairs)
		i     int
		tries int
	)
	for i = 0; i < pairs; i++ {
		p1 := p.SelectParent()
		p2 := p.SelectParent()
		for tries = 0; p1.SameOrder(p2) && tries < p.opts.MaxReselect; tries++ {
			p2 = p.SelectParent()
		}

		if p.rng.Float64() < p.mutationRate {
			p1.Mutate(p.rng)
		}
		if p.rng.Float64() < p.mutationRate {
			p2.Mutate(p.rng)
		}

		c1, c2 := p1.Recombine(p2, p.rng)
		next = append(next, c1, c2)
	}

	return next
}

// advanceParallel breeds pairs concurrently; pair i writes slots 2i and 2i+1.
func (p *Population) advanceParallel() []*Chromosome {
	var (
		pairs   = len(p.members) / 2
		next    = make([]*Chromosome, 2*pairs)
		total   = totalFitness(p.members)
		streams = make([]*rand.Rand, pairs)
		i       int
	)
	// Derived on this goroutine so the streams do not depend on scheduling.
	for i = 0; i < pairs; i++ {
		streams[i] = deriveRNG(p.rng, uint64(i))
	}

	wp := pool.New().WithMaxGoroutines(p.opts.Workers)
	for i = 0; i < pairs; i++ {
		slot := i
		wp.Go(func() {
			next[2*slot], next[2*slot+1] = p.breedDetached(total, streams[slot])
		})
	}
	// A panicking worker (broken invariant) re-panics here.
	wp.Wait()

	return next
}

// breedDetached produces one pair of children without writing to the current generation.
func (p *Population) breedDetached(total float64, rng *rand.Rand) (*Chromosome, *Chromosome) {
	p1 := rouletteSelect(p.members, total, rng)
	p2 := rouletteSelect(p.members, total, rng)

	var tries int
	for tries = 0; p1.SameOrder(p2) && tries < p.opts.MaxReselect; tries++ {
		p2 = rouletteSelect(p.members, total, rng)
	}

	if rng.Float64() < p.mutationRate {
		p1 = p1.Clone()
		p1.Mutate(rng)
	}
	if rng.Float64() < p.mutationRate {
		p2 = p2.Clone()
		p2.Mutate(rng)
	}

	return p1.Recombine(p2, rng)
}
