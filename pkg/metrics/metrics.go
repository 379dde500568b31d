// Package metrics holds the Prometheus instruments shared across the
// application, plus common helper values for building new ones.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// BorrowsTotal counts borrow attempts by outcome. The result label is "ok"
	// for successful borrows and the semantic error kind otherwise.
	BorrowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lending_borrows_total",
		Help: "Borrow attempts partitioned by outcome.",
	}, []string{"result"})

	// ReturnsTotal counts return attempts by outcome, same labeling as BorrowsTotal.
	ReturnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lending_returns_total",
		Help: "Return attempts partitioned by outcome.",
	}, []string{"result"})

	// OverdueLoans tracks the number of active loans currently past the late
	// threshold, as observed by the periodic overdue audit.
	OverdueLoans = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lending_overdue_loans",
		Help: "Active loans past the late-return threshold.",
	})
)
