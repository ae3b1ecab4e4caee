// Package metrics exposes Prometheus counters and histograms for the
// output-materialization and local-recoding hot paths, following the
// teacher's registration idiom (a package-level sync.Once guarding
// prometheus.MustRegister, one vector per metric, labeled rather than
// duplicated per instance).
package metrics

import (
	"sync"
	"time"

	"github.com/arxgo/arxgo/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	outputRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arxgo",
			Subsystem: "result",
			Name:      "output_requests_total",
			Help:      "Total number of AnonymizationResult.Output() calls, by outcome.",
		},
		[]string{"outcome"})

	outputDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arxgo",
			Subsystem: "result",
			Name:      "output_duration_seconds",
			Help:      "Time spent materializing an output buffer.",
			Buckets:   util.DecimalExponentialBuckets(-3, 4, 3),
		},
		[]string{"fork"})

	optimizeStepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arxgo",
			Subsystem: "recoding",
			Name:      "optimize_steps_total",
			Help:      "Total number of local-recoding steps, by outcome.",
		},
		[]string{"outcome"})

	optimizeRowsOptimizedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arxgo",
			Subsystem: "recoding",
			Name:      "optimize_rows_optimized_total",
			Help:      "Total number of rows moved out of the outlier set by local recoding.",
		})

	lockedHandlesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arxgo",
			Subsystem: "registry",
			Name:      "locked_handles",
			Help:      "1 if a ResultRegistry currently has an outstanding unforked handle, 0 otherwise.",
		})
)

// Register installs every metric with the default Prometheus registry.
// Safe to call more than once; registration happens at most once per
// process.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			outputRequestsTotal,
			outputDurationSeconds,
			optimizeStepsTotal,
			optimizeRowsOptimizedTotal,
			lockedHandlesGauge,
		)
	})
}

// ObserveOutput records the outcome and duration of one Output() call.
func ObserveOutput(outcome string, forked bool, duration time.Duration) {
	outputRequestsTotal.WithLabelValues(outcome).Inc()
	forkLabel := "false"
	if forked {
		forkLabel = "true"
	}
	outputDurationSeconds.WithLabelValues(forkLabel).Observe(duration.Seconds())
}

// ObserveOptimizeStep records the outcome of one optimize*() step and,
// on success, how many rows it moved out of the outlier set.
func ObserveOptimizeStep(outcome string, rowsOptimized int) {
	optimizeStepsTotal.WithLabelValues(outcome).Inc()
	if rowsOptimized > 0 {
		optimizeRowsOptimizedTotal.Add(float64(rowsOptimized))
	}
}

// SetLocked reflects the registry's current lock state.
func SetLocked(locked bool) {
	if locked {
		lockedHandlesGauge.Set(1)
	} else {
		lockedHandlesGauge.Set(0)
	}
}
