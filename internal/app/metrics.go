package app

import (
	"pageview-analytics/internal/shared/metrics"
)

var (
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "runs_total",
		},
		[]string{"mode", metrics.FieldErrorCode},
	)

	metricTreeNodes = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "tree_nodes",
		},
		[]string{"role"},
	)
)
