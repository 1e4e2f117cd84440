package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/sirupsen/logrus"
)

// result is the outcome of one run.
type result struct {
	// Best is the shortest tour seen in any generation. Replacement is
	// generational, so it may be absent from the final population.
	Best        genetic.Tour
	BestAt      int
	Generations int
	History     []genetic.Stats
	Stopped     string // "completed", "stagnation" or "canceled"
}

// loadCities builds the instance described by c.
func loadCities(c CitiesConfig) (*cities.Cities, error) {
	if c.File != "" {
		return cities.ReadFile(c.File)
	}

	return cities.Random(c.Random, rand.New(rand.NewSource(c.Seed)), c.Width, c.Height)
}

// run evolves a population as configured. Metrics may be nil.
func run(ctx context.Context, cfg Config, log *logrus.Entry, m *runMetrics) (result, error) {
	var res result

	cs, err := loadCities(cfg.Cities)
	if err != nil {
		return res, fmt.Errorf("load cities: %w", err)
	}

	pc := cfg.Population
	pop, err := genetic.NewPopulation(cs, pc.Size, pc.MutationRate, genetic.Options{
		Seed:         pc.Seed,
		FitnessScale: pc.FitnessScale,
		Workers:      pc.Workers,
		MaxReselect:  pc.MaxReselect,
	})
	if err != nil {
		return res, fmt.Errorf("new population: %w", err)
	}
	log.WithFields(logrus.Fields{
		"cities":        cs.Size(),
		"population":    pop.Size(),
		"mutation_rate": pop.MutationRate(),
		"workers":       pc.Workers,
	}).Info("population ready")

	res.Best = pop.BestTour()
	res.History = make([]genetic.Stats, 0, cfg.Run.Generations)
	log.WithField("distance", res.Best.Distance).Info("initial best tour")

	var stale int
	err = pop.Evolve(ctx, cfg.Run.Generations, func(s genetic.Stats) bool {
		res.History = append(res.History, s)
		res.Generations = s.Generation

		improved := s.BestDistance < res.Best.Distance
		if improved {
			res.Best = pop.BestTour()
			res.BestAt = s.Generation
			stale = 0
			log.WithFields(logrus.Fields{
				"generation": s.Generation,
				"distance":   res.Best.Distance,
			}).Debug("new best tour")
		} else {
			stale++
		}
		if m != nil {
			m.observe(s, res.Best.Distance, improved)
		}

		if every := cfg.Run.ReportEvery; every > 0 && s.Generation%every == 0 {
			log.WithFields(logrus.Fields{
				"generation":    s.Generation,
				"best_distance": res.Best.Distance,
				"gen_best":      s.BestDistance,
				"mean_fitness":  s.MeanFitness,
				"stddev":        s.StdDevFitness,
			}).Info("progress")
		}

		if cfg.Run.Stagnation > 0 && stale >= cfg.Run.Stagnation {
			res.Stopped = "stagnation"
			return false
		}

		return true
	})

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		res.Stopped = "canceled"
		log.WithError(err).Warn("run interrupted")
	case err != nil:
		return res, err
	case res.Stopped == "":
		res.Stopped = "completed"
	}

	if cfg.Run.Output != "" {
		if err = cities.WriteFile(cfg.Run.Output, cs, res.Best.Order); err != nil {
			return res, fmt.Errorf("write tour: %w", err)
		}
		log.WithField("path", cfg.Run.Output).Info("best tour written")
	}
	if cfg.Plot.Output != "" && len(res.History) > 0 {
		if err = writeConvergencePlot(cfg.Plot.Output, res.History); err != nil {
			return res, fmt.Errorf("write plot: %w", err)
		}
		log.WithField("path", cfg.Plot.Output).Info("convergence plot written")
	}

	return res, nil
}
