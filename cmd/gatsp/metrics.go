package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/katalvlaran/gatsp/genetic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// runMetrics exports per-generation progress of one run.
type runMetrics struct {
	reg          *prometheus.Registry
	generation   prometheus.Gauge
	bestDistance prometheus.Gauge
	genBest      prometheus.Gauge
	meanFitness  prometheus.Gauge
	improvements prometheus.Counter
}

// newRunMetrics registers the run's collectors on a private registry labelled with runID.
func newRunMetrics(runID string) *runMetrics {
	labels := prometheus.Labels{"run_id": runID}
	m := &runMetrics{
		reg: prometheus.NewRegistry(),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gatsp_generation", Help: "Completed generations.", ConstLabels: labels,
		}),
		bestDistance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gatsp_best_distance", Help: "Shortest tour length seen so far.", ConstLabels: labels,
		}),
		genBest: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gatsp_generation_best_distance", Help: "Shortest tour length in the current generation.", ConstLabels: labels,
		}),
		meanFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gatsp_mean_fitness", Help: "Mean fitness of the current generation.", ConstLabels: labels,
		}),
		improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gatsp_improvements_total", Help: "Generations that produced a new best tour.", ConstLabels: labels,
		}),
	}
	m.reg.MustRegister(m.generation, m.bestDistance, m.genBest, m.meanFitness, m.improvements)

	return m
}

// observe records one generation. improved marks a new best-so-far tour.
func (m *runMetrics) observe(s genetic.Stats, bestEver float64, improved bool) {
	m.generation.Set(float64(s.Generation))
	m.genBest.Set(s.BestDistance)
	m.meanFitness.Set(s.MeanFitness)
	m.bestDistance.Set(bestEver)
	if improved {
		m.improvements.Inc()
	}
}

// serve exposes the registry on addr until ctx is done.
func (m *runMetrics) serve(ctx context.Context, addr, path string, log *logrus.Entry) {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		log.WithField("addr", addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
}
