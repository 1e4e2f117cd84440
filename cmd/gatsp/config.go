package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Config is the driver configuration, usually read from a TOML file.
type Config struct {
	Population PopulationConfig `toml:"population"`
	Run        RunConfig        `toml:"run"`
	Cities     CitiesConfig     `toml:"cities"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Plot       PlotConfig       `toml:"plot"`
	Log        LogConfig        `toml:"log"`
}

// PopulationConfig maps onto genetic.NewPopulation and genetic.Options.
type PopulationConfig struct {
	Size         int     `toml:"size"`
	MutationRate float64 `toml:"mutation_rate"`
	Seed         int64   `toml:"seed"`
	Workers      int     `toml:"workers"`
	FitnessScale float64 `toml:"fitness_scale"`
	MaxReselect  int     `toml:"max_reselect"`
}

// RunConfig controls the evolution loop and its outputs.
type RunConfig struct {
	Generations int `toml:"generations"`
	// ReportEvery logs a progress line every N generations; 0 disables it.
	ReportEvery int `toml:"report_every"`
	// Stagnation stops the run after N generations without a new best; 0 disables it.
	Stagnation int `toml:"stagnation"`
	// Output receives the best tour's cities in visiting order.
	Output string `toml:"output"`
}

// CitiesConfig selects the instance: a city file, or Random cities when File is empty.
type CitiesConfig struct {
	File   string  `toml:"file"`
	Random int     `toml:"random"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Seed   int64   `toml:"seed"`
}

// MetricsConfig enables the Prometheus endpoint when Listen is set.
type MetricsConfig struct {
	Listen string `toml:"listen"`
	Path   string `toml:"path"`
}

// PlotConfig writes a convergence PNG when Output is set.
type PlotConfig struct {
	Output string `toml:"output"`
}

// LogConfig selects the logrus level and formatter ("text" or "json").
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

var (
	errGenerations = errors.New("config: run.generations must be > 0")
	errReport      = errors.New("config: run.report_every and run.stagnation must be >= 0")
	errNoCities    = errors.New("config: set cities.file or cities.random > 0")
	errLogFormat   = errors.New("config: log.format must be text or json")
	errMetricsPath = errors.New("config: metrics.path must start with / when metrics.listen is set")
)

// DefaultConfig returns a runnable configuration: 50 random cities, 100 tours.
func DefaultConfig() Config {
	return Config{
		Population: PopulationConfig{
			Size:         100,
			MutationRate: 0.05,
			Seed:         1,
			Workers:      1,
		},
		Run: RunConfig{
			Generations: 1000,
			ReportEvery: 100,
		},
		Cities: CitiesConfig{
			Random: 50,
			Width:  1000,
			Height: 1000,
			Seed:   1,
		},
		Metrics: MetricsConfig{Path: "/metrics"},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig overlays the TOML file at path onto DefaultConfig.
// Unknown keys are rejected so typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks the driver-level fields. Population fields are checked by
// genetic.NewPopulation, which reports its own sentinels.
func (c Config) Validate() error {
	if c.Run.Generations <= 0 {
		return errGenerations
	}
	if c.Run.ReportEvery < 0 || c.Run.Stagnation < 0 {
		return errReport
	}
	if c.Cities.File == "" && c.Cities.Random <= 0 {
		return errNoCities
	}
	if c.Metrics.Listen != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errMetricsPath
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errLogFormat
	}

	return nil
}

// newLogger builds the logrus logger described by c.
func (c LogConfig) newLogger() *logrus.Logger {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(c.Level); err == nil {
		logger.SetLevel(lvl)
	}
	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
