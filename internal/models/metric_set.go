package models

import (
	"fmt"
	"sort"
	"strings"
)

const (
	MetricViews      = "views"
	MetricUnique     = "unique"
	MetricLoadSample = "load_sample"
	MetricAvgTime    = "avg_time"
	MetricAvgLoad    = "avg_load"
)

// knownMetrics lists the recognised metrics in render order.
var knownMetrics = []string{MetricViews, MetricUnique, MetricLoadSample, MetricAvgTime, MetricAvgLoad}

// weightedBy maps each averaged metric to the count metric that weights it.
var weightedBy = map[string]string{
	MetricAvgTime: MetricViews,
	MetricAvgLoad: MetricLoadSample,
}

var metricFormats = map[string]string{
	MetricViews:      "%.0f views",
	MetricUnique:     "%.0f unique",
	MetricLoadSample: "%.0f load samples",
	MetricAvgTime:    "%.2fs average time",
	MetricAvgLoad:    "%.2fs average load",
}

// MetricSet accumulates the numeric fields of one tree node, keyed by metric name.
// Count metrics are summed; averaged metrics are combined weighted by their count
// metric, so merging row by row gives the same averages as summing every sample.
// Metrics without a known meaning are summed.
//
// Example:
//
//	node := MetricSet{"views": 10, "avg_time": 100}
//	node.Merge(MetricSet{"views": 20, "avg_time": 10})
//	// node == MetricSet{"views": 30, "avg_time": 40}
type MetricSet map[string]float64

// IsAveraged reports whether key is combined as a weighted average.
func IsAveraged(key string) bool {
	_, ok := weightedBy[key]
	return ok
}

// Get returns the value of key, zero when absent.
func (m MetricSet) Get(key string) float64 {
	return m[key]
}

// Merge accumulates other into m.
//
// A weighted average is only updated when other carries the field and the combined
// weight is positive; a contribution of zero weight leaves the average as it was.
// Zero counts are skipped.
func (m MetricSet) Merge(other MetricSet) {
	// Averages use the weights as they stood before this merge, whatever order the
	// keys of other are visited in.
	weightsBefore := make(map[string]float64, len(weightedBy))
	for _, weightKey := range weightedBy {
		weightsBefore[weightKey] = m[weightKey]
	}

	for key, value := range other {
		weightKey, averaged := weightedBy[key]
		if !averaged {
			if value != 0 {
				m[key] += value
			}
			continue
		}

		otherWeight := other[weightKey]
		if otherWeight == 0 {
			continue
		}
		total := weightsBefore[weightKey] + otherWeight
		if total == 0 {
			continue
		}
		m[key] = (value*otherWeight + m[key]*weightsBefore[weightKey]) / total
	}
}

// Clone returns an independent copy of m.
func (m MetricSet) Clone() MetricSet {
	clone := make(MetricSet, len(m))
	for key, value := range m {
		clone[key] = value
	}
	return clone
}

// Keys returns the metrics present in m: known metrics first in render order,
// then the others sorted by name.
func (m MetricSet) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, key := range knownMetrics {
		if _, ok := m[key]; ok {
			keys = append(keys, key)
		}
	}

	var extra []string
	for key := range m {
		if _, ok := metricFormats[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)

	return append(keys, extra...)
}

// String renders the metrics present, e.g. "30 views, 12 unique, 40.00s average time".
func (m MetricSet) String() string {
	keys := m.Keys()
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		format, ok := metricFormats[key]
		if !ok {
			parts = append(parts, fmt.Sprintf("%g %s", m[key], key))
			continue
		}
		parts = append(parts, fmt.Sprintf(format, m[key]))
	}
	return strings.Join(parts, ", ")
}
