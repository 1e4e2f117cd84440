// Command gatsp evolves short closed tours through a set of cities with a
// genetic algorithm.
//
// Usage:
//
//	gatsp --config gatsp.toml
//	gatsp --cities cities.tsv --generations 5000 --pop-size 200 --output shortest.tsv
//
// The city file holds one "x y" pair per line. Without --cities, a random
// instance is generated from the [cities] section of the config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires flags over the TOML configuration.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:          "gatsp",
		Short:        "Genetic-algorithm optimizer for the travelling salesman problem",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, flags)
			if err = cfg.Validate(); err != nil {
				return err
			}

			logger := cfg.Log.newLogger()
			logger.SetOutput(cmd.ErrOrStderr())
			runID := uuid.Must(uuid.NewV4()).String()
			log := logger.WithField("run_id", runID)

			var m *runMetrics
			if cfg.Metrics.Listen != "" {
				m = newRunMetrics(runID)
				m.serve(cmd.Context(), cfg.Metrics.Listen, cfg.Metrics.Path, log)
			}

			res, err := run(cmd.Context(), cfg, log, m)
			if err != nil {
				log.WithError(err).Error("run failed")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "best distance %.6f (generation %d of %d, %s)\n",
				res.Best.Distance, res.BestAt, res.Generations, res.Stopped)
			fmt.Fprintf(cmd.OutOrStdout(), "order %v\n", res.Best.Order)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML config file")
	f.StringVar(&flags.Cities.File, "cities", "", "city file, one \"x y\" per line")
	f.IntVar(&flags.Cities.Random, "random", flags.Cities.Random, "number of random cities when no city file is given")
	f.IntVarP(&flags.Run.Generations, "generations", "g", flags.Run.Generations, "number of generations")
	f.IntVar(&flags.Run.Stagnation, "stagnation", 0, "stop after N generations without improvement (0 = never)")
	f.StringVarP(&flags.Run.Output, "output", "o", "", "write the best tour's cities here")
	f.IntVarP(&flags.Population.Size, "pop-size", "p", flags.Population.Size, "population size (even)")
	f.Float64VarP(&flags.Population.MutationRate, "mutation-rate", "m", flags.Population.MutationRate, "per-parent mutation probability")
	f.Int64Var(&flags.Population.Seed, "seed", flags.Population.Seed, "random seed (0 = default seed)")
	f.IntVarP(&flags.Population.Workers, "workers", "w", flags.Population.Workers, "parallel breeding workers")
	f.StringVar(&flags.Plot.Output, "plot", "", "write a convergence plot (png/svg/pdf)")
	f.StringVar(&flags.Metrics.Listen, "metrics-listen", "", "serve Prometheus metrics on this address")
	f.StringVar(&flags.Log.Level, "log-level", flags.Log.Level, "log level")

	return cmd
}

// applyFlags copies explicitly set flags from flags into cfg.
func applyFlags(cmd *cobra.Command, cfg *Config, flags Config) {
	set := cmd.Flags().Changed
	if set("cities") {
		cfg.Cities.File = flags.Cities.File
	}
	if set("random") {
		cfg.Cities.Random = flags.Cities.Random
		if !set("cities") {
			cfg.Cities.File = ""
		}
	}
	if set("generations") {
		cfg.Run.Generations = flags.Run.Generations
	}
	if set("stagnation") {
		cfg.Run.Stagnation = flags.Run.Stagnation
	}
	if set("output") {
		cfg.Run.Output = flags.Run.Output
	}
	if set("pop-size") {
		cfg.Population.Size = flags.Population.Size
	}
	if set("mutation-rate") {
		cfg.Population.MutationRate = flags.Population.MutationRate
	}
	if set("seed") {
		cfg.Population.Seed = flags.Population.Seed
	}
	if set("workers") {
		cfg.Population.Workers = flags.Population.Workers
	}
	if set("plot") {
		cfg.Plot.Output = flags.Plot.Output
	}
	if set("metrics-listen") {
		cfg.Metrics.Listen = flags.Metrics.Listen
	}
	if set("log-level") {
		cfg.Log.Level = flags.Log.Level
	}
}
