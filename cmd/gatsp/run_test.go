package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// quietLog discards log output.
func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return logrus.NewEntry(l)
}

// smallConfig is a fast random instance.
func smallConfig(dir string) Config {
	cfg := DefaultConfig()
	cfg.Cities.Random = 12
	cfg.Population.Size = 10
	cfg.Run.Generations = 30
	cfg.Run.ReportEvery = 10
	cfg.Run.Output = filepath.Join(dir, "best.tsv")
	cfg.Plot.Output = filepath.Join(dir, "convergence.png")

	return cfg
}

// TestRun_WritesOutputs runs end to end and checks the tour file, plot and metrics.
func TestRun_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig(dir)
	m := newRunMetrics("test")

	res, err := run(context.Background(), cfg, quietLog(), m)
	require.NoError(t, err)
	require.Equal(t, "completed", res.Stopped)
	require.Equal(t, 30, res.Generations)
	require.Len(t, res.History, 30)
	require.Len(t, res.Best.Order, 12)
	require.Equal(t, genetic.DefaultFitnessScale/res.Best.Distance, res.Best.Fitness)

	// The best-so-far tour is never worse than any recorded generation best.
	for _, s := range res.History {
		require.LessOrEqual(t, res.Best.Distance, s.BestDistance)
	}

	// The written file lists the tour's cities in visiting order.
	written, err := cities.ReadFile(cfg.Run.Output)
	require.NoError(t, err)
	require.Equal(t, 12, written.Size())
	identity := make([]int, 12)
	for i := range identity {
		identity[i] = i
	}
	d, err := written.TourCost(identity)
	require.NoError(t, err)
	require.InDelta(t, res.Best.Distance, d, 1e-6)

	info, err := os.Stat(cfg.Plot.Output)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	require.Equal(t, 30.0, testutil.ToFloat64(m.generation))
	require.Equal(t, res.Best.Distance, testutil.ToFloat64(m.bestDistance))
}

// TestRun_Stagnation stops once no new best appears for the configured span.
func TestRun_Stagnation(t *testing.T) {
	cfg := smallConfig(t.TempDir())
	cfg.Run.Generations = 10000
	cfg.Run.Stagnation = 5
	cfg.Plot.Output = ""

	res, err := run(context.Background(), cfg, quietLog(), nil)
	require.NoError(t, err)
	require.Equal(t, "stagnation", res.Stopped)
	require.Less(t, res.Generations, 10000)
	require.Equal(t, 5, res.Generations-res.BestAt)
}

// TestRun_Canceled keeps the initial best and reports cancellation.
func TestRun_Canceled(t *testing.T) {
	cfg := smallConfig(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := run(ctx, cfg, quietLog(), nil)
	require.NoError(t, err)
	require.Equal(t, "canceled", res.Stopped)
	require.Empty(t, res.History)
	require.Len(t, res.Best.Order, 12)
}

// TestRun_BadPopulation surfaces genetic sentinels.
func TestRun_BadPopulation(t *testing.T) {
	cfg := smallConfig(t.TempDir())
	cfg.Population.Size = 7

	_, err := run(context.Background(), cfg, quietLog(), nil)
	require.ErrorIs(t, err, genetic.ErrOddPopulationSize)
}

// TestRootCmd_CityFile drives the cobra command with a city file.
func TestRootCmd_CityFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "square.tsv")
	require.NoError(t, os.WriteFile(src, []byte("0 0\n1 0\n1 1\n0 1\n"), 0o600))

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--cities", src, "-g", "50", "-p", "4", "--log-level", "warn"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	require.True(t, strings.HasPrefix(out.String(), "best distance 4.000000"), out.String())
	require.Contains(t, out.String(), "completed")
}
