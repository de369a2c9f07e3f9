package ingestors

import (
	"fmt"
	"strconv"
	"strings"

	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/svcerrors"
)

// Column names of a Google Analytics "All Pages" export.
const (
	ColumnPage            = "Page"
	ColumnPageviews       = "Pageviews"
	ColumnUniquePageviews = "Unique Pageviews"
	ColumnPageLoadSample  = "Page Load Sample"
	ColumnAvgTimeOnPage   = "Avg. Time on Page"
	ColumnAvgPageLoadTime = "Avg. Page Load Time (sec)"
)

const byteOrderMark = "\ufeff"

type metricColumn struct {
	column string
	metric string
	parse  func(cell string) (float64, error)
}

// metricColumns lists the optional columns read into each row's metrics.
var metricColumns = []metricColumn{
	{column: ColumnPageviews, metric: models.MetricViews, parse: parseCount},
	{column: ColumnUniquePageviews, metric: models.MetricUnique, parse: parseCount},
	{column: ColumnPageLoadSample, metric: models.MetricLoadSample, parse: parseCount},
	{column: ColumnAvgTimeOnPage, metric: models.MetricAvgTime, parse: parseClock},
	{column: ColumnAvgPageLoadTime, metric: models.MetricAvgLoad, parse: parseDecimal},
}

type boundColumn struct {
	metricColumn
	index int
}

// columnLayout maps the columns of one export to row fields.
type columnLayout struct {
	pageIndex int
	metrics   []boundColumn
}

// newColumnLayout reads the header row. Page is required; metric columns are
// read when present.
func newColumnLayout(header []string) (*columnLayout, *svcerrors.ServiceError) {
	indexByName := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}
		indexByName[strings.TrimSpace(name)] = i
	}

	pageIndex, ok := indexByName[ColumnPage]
	if !ok {
		return nil, errMissingColumn(ColumnPage)
	}

	layout := &columnLayout{pageIndex: pageIndex}
	for _, column := range metricColumns {
		if index, ok := indexByName[column.column]; ok {
			layout.metrics = append(layout.metrics, boundColumn{metricColumn: column, index: index})
		}
	}
	return layout, nil
}

// MetricNames returns the metrics this export provides, in column order of metricColumns.
func (l *columnLayout) MetricNames() []string {
	names := make([]string, 0, len(l.metrics))
	for _, column := range l.metrics {
		names = append(names, column.metric)
	}
	return names
}

func (l *columnLayout) parse(record []string, line int) (*models.PageRow, *svcerrors.ServiceError) {
	row := &models.PageRow{
		URL:     record[l.pageIndex],
		Metrics: make(models.MetricSet, len(l.metrics)),
	}
	for _, column := range l.metrics {
		value, err := column.parse(record[column.index])
		if err != nil {
			return nil, errInvalidNumber(line, column.column, err)
		}
		row.Metrics[column.metric] = value
	}
	return row, nil
}

// parseCount parses an integer that may carry thousands separators, e.g. "1,234".
func parseCount(cell string) (float64, error) {
	n, err := strconv.ParseInt(stripSeparators(cell), 10, 64)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

// parseDecimal parses a decimal that may carry thousands separators.
func parseDecimal(cell string) (float64, error) {
	return strconv.ParseFloat(stripSeparators(cell), 64)
}

// parseClock converts "HH:MM:SS" (or "MM:SS", "SS") to seconds.
func parseClock(cell string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(cell), ":")
	seconds := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", cell, err)
		}
		seconds = seconds*60 + n
	}
	return float64(seconds), nil
}

func stripSeparators(cell string) string {
	return strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
}
