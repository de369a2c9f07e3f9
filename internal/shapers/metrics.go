package shapers

import (
	"pageview-analytics/internal/shared/metrics"
)

const (
	outcomeKept      = "kept"
	outcomeThreshold = "pruned_threshold"
	outcomeCap       = "pruned_cap"
)

var (
	metricNodesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubShaping,
			Name:      "nodes_total",
		},
		[]string{"outcome"},
	)
)
