package ingestors

import (
	"pageview-analytics/internal/shared/metrics"
)

var (
	metricRowsReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "rows_read_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricIngestionRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
