package stores

import (
	"pageview-analytics/internal/shared/metrics"
)

var (
	metricDocumentsWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubOutput,
			Name:      "documents_written_total",
		},
		[]string{"kind", metrics.FieldErrorCode},
	)

	metricBytesWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubOutput,
			Name:      "bytes_written_total",
		},
		[]string{"kind"},
	)
)
