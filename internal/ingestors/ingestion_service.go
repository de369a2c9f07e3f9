package ingestors

import (
	"context"
	"encoding/csv"
	"errors"
	"io"

	"pageview-analytics/internal/aggregators"
	"pageview-analytics/internal/shared/loggers"
	"pageview-analytics/internal/shared/metrics"
	"pageview-analytics/internal/shared/svcerrors"
)

// IngestResult summarises one pass over an export.
type IngestResult struct {
	Rows      int      // data rows read
	Ingested  int      // rows merged into the tree
	Filtered  int      // rows rejected by the URL filter
	Malformed int      // rows whose URL is not a path
	Metrics   []string // metrics provided by the export
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest reads a CSV export and feeds every row to the aggregator. Any format
	// error aborts the whole pass.
	Ingest(ctx context.Context, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	aggregator aggregators.URLAggregator
}

func NewIngestionService(aggregator aggregators.URLAggregator) IngestionService {
	return &ingestionService{
		aggregator: aggregator,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, r io.Reader) (*IngestResult, error) {
	result, err := s.ingest(ctx, r)
	if err != nil {
		errorCode := metrics.ValueNoError
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
		metricIngestionRunsTotal.WithLabelValues(errorCode).Inc()
		return nil, err
	}
	metricIngestionRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

func (s *ingestionService) ingest(ctx context.Context, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	reader := csv.NewReader(r)
	// Analytics exports open with "# ----" comment blocks.
	reader.Comment = '#'
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errMissingColumn(ColumnPage)
		}
		return nil, errInvalidCSV("invalid header row", err)
	}

	layout, svcErr := newColumnLayout(header)
	if svcErr != nil {
		return nil, svcErr
	}
	logger.Debug().Strs("metrics", layout.MetricNames()).Msg("resolved export columns")

	result := &IngestResult{Metrics: layout.MetricNames()}
	for {
		if err := ctx.Err(); err != nil {
			return nil, errInternalIngestionAborted(err)
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			metricRowsReadTotal.WithLabelValues(codeInvalidCSV).Inc()
			return nil, errInvalidCSV("invalid row", err)
		}

		line, _ := reader.FieldPos(0)
		row, svcErr := layout.parse(record, line)
		if svcErr != nil {
			metricRowsReadTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		metricRowsReadTotal.WithLabelValues(metrics.ValueNoError).Inc()
		result.Rows++

		switch s.aggregator.Ingest(row.URL, row.Metrics) {
		case aggregators.OutcomeIngested:
			result.Ingested++
		case aggregators.OutcomeFiltered:
			result.Filtered++
		case aggregators.OutcomeMalformed:
			result.Malformed++
			logger.Debug().
				Int(loggers.FieldRow, line).
				Str(loggers.FieldURL, row.URL).
				Msg("skipped url without a leading slash")
		}
	}

	logger.Info().
		Int("rows", result.Rows).
		Int("ingested", result.Ingested).
		Int("filtered", result.Filtered).
		Int("malformed", result.Malformed).
		Msg("finished ingesting export")

	return result, nil
}
