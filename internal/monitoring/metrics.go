package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters exposed on the standalone metrics server.
var (
	// IngestedItems counts receipt line items by ingestion outcome
	// (inserted, replaced, discarded).
	IngestedItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakeshop_ingested_items_total",
		Help: "Receipt line items processed by catalog ingestion, by outcome.",
	}, []string{"outcome"})

	// SkippedLines counts recipe lines dropped from a computation, by
	// stage (costing, nutrition) and reason.
	SkippedLines = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakeshop_skipped_lines_total",
		Help: "Recipe lines skipped during cost or nutrition computation.",
	}, []string{"stage", "reason"})

	// Recomputations counts full recipe recompute runs.
	Recomputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bakeshop_recomputations_total",
		Help: "Recipe cost recomputation runs.",
	})
)
