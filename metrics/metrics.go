// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors of a matrix run and an
// optional /metrics endpoint. Collectors are registered on a caller-supplied
// registry so that tests and concurrent runs never share global state.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "routematrix"

// Provider call results (label values of ProviderCalls).
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultCache = "cache_hit"
)

// Matrix label values.
const (
	MatrixDistance = "distance"
	MatrixTime     = "time"
)

// Collectors groups every metric a run updates. A nil *Collectors is valid
// and turns every method into a no-op.
type Collectors struct {
	// ProviderCalls counts routing provider calls by result.
	ProviderCalls *prometheus.CounterVec

	// ProviderLatency tracks routing provider latency.
	ProviderLatency prometheus.Histogram

	// PairsCompleted counts pairs whose evaluation finished (ok or failed).
	PairsCompleted prometheus.Counter

	// Progress is completed/total in [0,1].
	Progress prometheus.Gauge

	// ClosurePasses is the number of relaxation passes per matrix.
	ClosurePasses *prometheus.GaugeVec

	// ClosureRelaxed is the number of cells lowered by the closure per matrix.
	ClosureRelaxed *prometheus.GaugeVec

	// Unresolved is the number of off-diagonal cells left at the sentinel.
	Unresolved prometheus.Gauge
}

// New registers the collectors on reg. Registering twice on the same
// registry panics (promauto semantics), so build one Collectors per registry.
func New(reg prometheus.Registerer) *Collectors {
	f := promauto.With(reg)

	return &Collectors{
		ProviderCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Routing provider calls by result",
		}, []string{"result"}),
		ProviderLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_latency_seconds",
			Help:      "Routing provider latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}),
		PairsCompleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_completed_total",
			Help:      "Pairs evaluated by the worker pool",
		}),
		Progress: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "progress_ratio",
			Help:      "Completed pairs over total pairs",
		}),
		ClosurePasses: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "closure_passes",
			Help:      "Relaxation passes of the last triangle-inequality closure",
		}, []string{"matrix"}),
		ClosureRelaxed: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "closure_relaxed_cells",
			Help:      "Cells lowered by the last triangle-inequality closure",
		}, []string{"matrix"}),
		Unresolved: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unresolved_cells",
			Help:      "Off-diagonal cells without a routing result after the parallel phase",
		}),
	}
}

// ObserveCall records one provider call.
func (c *Collectors) ObserveCall(result string, seconds float64) {
	if c == nil {
		return
	}
	c.ProviderCalls.WithLabelValues(result).Inc()
	if result != ResultCache {
		c.ProviderLatency.Observe(seconds)
	}
}

// PairDone records one finished pair and the new progress ratio.
func (c *Collectors) PairDone(ratio float64) {
	if c == nil {
		return
	}
	c.PairsCompleted.Inc()
	c.Progress.Set(ratio)
}

// ObserveClosure records the closure statistics of one matrix.
func (c *Collectors) ObserveClosure(matrixName string, passes, relaxed int) {
	if c == nil {
		return
	}
	c.ClosurePasses.WithLabelValues(matrixName).Set(float64(passes))
	c.ClosureRelaxed.WithLabelValues(matrixName).Set(float64(relaxed))
}

// SetUnresolved records the number of sentinel cells after the parallel phase.
func (c *Collectors) SetUnresolved(n int) {
	if c == nil {
		return
	}
	c.Unresolved.Set(float64(n))
}
