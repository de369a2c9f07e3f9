package models

// PageRow is one row of an analytics export: a page URL and the metrics reported
// for it.
type PageRow struct {
	URL     string
	Metrics MetricSet
}
