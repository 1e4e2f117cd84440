package genetic

import "errors"

var (
	// ErrNilCostProvider is returned when no cost provider is supplied.
	ErrNilCostProvider = errors.New("genetic: nil cost provider")

	// ErrTooFewCities is returned for instances with fewer than two cities;
	// swap mutation and crossover both need two distinct positions.
	ErrTooFewCities = errors.New("genetic: at least two cities are required")

	// ErrPopulationSize is returned when the population would hold fewer than two members.
	ErrPopulationSize = errors.New("genetic: population size must be >= 2")

	// ErrOddPopulationSize is returned for odd population sizes: each parent pair
	// yields exactly two children, so only even sizes are preserved across generations.
	ErrOddPopulationSize = errors.New("genetic: population size must be even")

	// ErrMutationRate is returned when the mutation rate is NaN or outside [0,1].
	ErrMutationRate = errors.New("genetic: mutation rate must be within [0,1]")

	// ErrFitnessScale is returned when Options.FitnessScale is negative, NaN or infinite.
	ErrFitnessScale = errors.New("genetic: fitness scale must be positive and finite")

	// ErrWorkers is returned when Options.Workers is negative.
	ErrWorkers = errors.New("genetic: workers must be >= 0")

	// ErrMaxReselect is returned when Options.MaxReselect is negative.
	ErrMaxReselect = errors.New("genetic: max reselect must be >= 0")

	// ErrInvalidPermutation is returned by NewChromosomeFromOrder when the
	// ordering is not a permutation of [0,N).
	ErrInvalidPermutation = errors.New("genetic: ordering is not a permutation")

	// ErrDegenerateTour is returned when the cost provider reports a zero,
	// negative or non-finite tour length, which would make fitness meaningless.
	ErrDegenerateTour = errors.New("genetic: tour length must be positive and finite")
)

// CostProvider is the city/cost collaborator consumed by the engine.
//
// Implementations must be safe for concurrent readers when Options.Workers > 1.
type CostProvider interface {
	// Size returns the number of cities N; it defines the permutation length.
	Size() int

	// TotalPathDistance returns the closed-tour length of a permutation of [0,N),
	// including the edge from the last city back to the first.
	TotalPathDistance(order []int) float64
}

// Tour is a read-only snapshot of one chromosome, for reporting.
type Tour struct {
	// Order is the visiting order, a permutation of [0,N). It is a copy.
	Order []int

	// Distance is the closed-tour length.
	Distance float64

	// Fitness is FitnessScale / Distance.
	Fitness float64
}

// Stats summarizes one generation.
type Stats struct {
	Generation int
	Size       int

	BestFitness   float64
	MeanFitness   float64
	StdDevFitness float64

	BestDistance  float64
	MeanDistance  float64
	WorstDistance float64
}
