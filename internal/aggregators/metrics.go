package aggregators

import (
	"pageview-analytics/internal/shared/metrics"
)

// metricURLsTotal counts URLs handed to the aggregator, by outcome:
// "ingested", "filtered" (rejected by the URL filter) or "malformed" (not a path).
var (
	metricURLsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "urls_total",
		},
		[]string{"outcome"},
	)
)
