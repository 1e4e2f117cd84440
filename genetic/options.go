package genetic

import "math"

// DefaultFitnessScale is the numerator K of fitness = K / distance.
const DefaultFitnessScale = 10000.0

// DefaultMaxReselect bounds how many times the second parent is re-drawn
// while it carries the same ordering as the first.
const DefaultMaxReselect = 32

// Options tunes a Population beyond its size and mutation rate.
// Zero values select the documented defaults, so Options{} is valid.
type Options struct {
	// Seed feeds the population's random stream. 0 ⇒ defaultRNGSeed.
	Seed int64

	// FitnessScale is K in fitness = K / distance. 0 ⇒ DefaultFitnessScale.
	FitnessScale float64

	// Workers is the number of goroutines breeding parent pairs.
	// 0 or 1 runs the sequential loop; parents are mutated in place there.
	// Above 1, parents are read-only and a mutating parent is cloned first.
	Workers int

	// MaxReselect caps clone re-selection per pair. 0 ⇒ DefaultMaxReselect.
	MaxReselect int
}

// DefaultOptions returns the options used when nothing is customized.
func DefaultOptions() Options {
	return Options{
		Seed:         defaultRNGSeed,
		FitnessScale: DefaultFitnessScale,
		Workers:      1,
		MaxReselect:  DefaultMaxReselect,
	}
}

// normalize validates opts and fills zero fields with defaults.
func (o Options) normalize() (Options, error) {
	if math.IsNaN(o.FitnessScale) || math.IsInf(o.FitnessScale, 0) || o.FitnessScale < 0 {
		return o, ErrFitnessScale
	}
	if o.Workers < 0 {
		return o, ErrWorkers
	}
	if o.MaxReselect < 0 {
		return o, ErrMaxReselect
	}
	if o.FitnessScale == 0 {
		o.FitnessScale = DefaultFitnessScale
	}
	if o.MaxReselect == 0 {
		o.MaxReselect = DefaultMaxReselect
	}
	if o.Workers == 0 {
		o.Workers = 1
	}

	return o, nil
}
