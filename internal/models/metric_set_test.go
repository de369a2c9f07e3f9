package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricSet_Merge_SumsCounts(t *testing.T) {
	t.Parallel()

	agg := MetricSet{MetricViews: 5, MetricUnique: 3}
	agg.Merge(MetricSet{MetricViews: 2, MetricUnique: 1, MetricLoadSample: 4})

	assert.Equal(t, MetricSet{MetricViews: 7, MetricUnique: 4, MetricLoadSample: 4}, agg)
}

func TestMetricSet_Merge_WeightedAverage(t *testing.T) {
	t.Parallel()

	agg := MetricSet{}
	agg.Merge(MetricSet{MetricViews: 10, MetricAvgTime: 100})
	agg.Merge(MetricSet{MetricViews: 20, MetricAvgTime: 10})

	// (10*100 + 20*10) / 30
	assert.InDelta(t, 40.0, agg.Get(MetricAvgTime), 1e-9)
	assert.Equal(t, float64(30), agg.Get(MetricViews))
}

func TestMetricSet_Merge_AverageWeightedByItsOwnCount(t *testing.T) {
	t.Parallel()

	agg := MetricSet{}
	agg.Merge(MetricSet{MetricViews: 100, MetricLoadSample: 1, MetricAvgTime: 5, MetricAvgLoad: 2})
	agg.Merge(MetricSet{MetricViews: 100, MetricLoadSample: 3, MetricAvgTime: 5, MetricAvgLoad: 6})

	assert.InDelta(t, 5.0, agg.Get(MetricAvgTime), 1e-9)
	// (1*2 + 3*6) / 4
	assert.InDelta(t, 5.0, agg.Get(MetricAvgLoad), 1e-9)
}

func TestMetricSet_Merge_ZeroWeightIsNoop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming MetricSet
	}{
		{name: "zero views with average", incoming: MetricSet{MetricViews: 0, MetricAvgTime: 900}},
		{name: "missing views with average", incoming: MetricSet{MetricAvgTime: 900}},
		{name: "empty set", incoming: MetricSet{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			agg := MetricSet{MetricViews: 10, MetricAvgTime: 42}
			agg.Merge(tt.incoming)

			assert.Equal(t, float64(42), agg.Get(MetricAvgTime))
			assert.Equal(t, float64(10), agg.Get(MetricViews))
		})
	}
}

func TestMetricSet_Merge_ZeroTotalWeightIntoEmpty(t *testing.T) {
	t.Parallel()

	agg := MetricSet{}
	agg.Merge(MetricSet{MetricLoadSample: 0, MetricAvgLoad: 3.5})

	assert.Equal(t, float64(0), agg.Get(MetricAvgLoad))
	assert.NotContains(t, agg, MetricAvgLoad)
}

func TestMetricSet_Merge_ZeroAverageWithWeightCounts(t *testing.T) {
	t.Parallel()

	agg := MetricSet{MetricViews: 10, MetricAvgTime: 60}
	agg.Merge(MetricSet{MetricViews: 10, MetricAvgTime: 0})

	assert.InDelta(t, 30.0, agg.Get(MetricAvgTime), 1e-9)
}

func TestMetricSet_Merge_UnknownKeysSummed(t *testing.T) {
	t.Parallel()

	agg := MetricSet{"entrances": 2}
	agg.Merge(MetricSet{"entrances": 3, "exits": 1})

	assert.Equal(t, MetricSet{"entrances": 5, "exits": 1}, agg)
}

func TestMetricSet_Merge_OrderIndependent(t *testing.T) {
	t.Parallel()

	rows := []MetricSet{
		{MetricViews: 10, MetricUnique: 8, MetricAvgTime: 100, MetricLoadSample: 2, MetricAvgLoad: 1.5},
		{MetricViews: 20, MetricUnique: 15, MetricAvgTime: 10, MetricLoadSample: 0, MetricAvgLoad: 0},
		{MetricViews: 0, MetricUnique: 0, MetricAvgTime: 0},
		{MetricViews: 7, MetricUnique: 7, MetricAvgTime: 33, MetricLoadSample: 5, MetricAvgLoad: 4.2},
		{MetricViews: 1, MetricUnique: 1, MetricAvgTime: 0, MetricLoadSample: 1, MetricAvgLoad: 0.3},
	}

	reference := MetricSet{}
	for _, row := range rows {
		reference.Merge(row)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		order := rng.Perm(len(rows))
		agg := MetricSet{}
		for _, idx := range order {
			agg.Merge(rows[idx])
		}

		assert.Equal(t, reference.Keys(), agg.Keys())
		for _, key := range reference.Keys() {
			assert.InDelta(t, reference.Get(key), agg.Get(key), 1e-9, "metric %s with order %v", key, order)
		}
	}

	// (10*100 + 20*10 + 7*33 + 1*0) / 38
	assert.InDelta(t, 1431.0/38.0, reference.Get(MetricAvgTime), 1e-9)
	// (2*1.5 + 5*4.2 + 1*0.3) / 8
	assert.InDelta(t, 24.3/8.0, reference.Get(MetricAvgLoad), 1e-9)
}

func TestMetricSet_Clone(t *testing.T) {
	t.Parallel()

	original := MetricSet{MetricViews: 1}
	clone := original.Clone()
	clone.Merge(MetricSet{MetricViews: 1})

	assert.Equal(t, float64(1), original.Get(MetricViews))
	assert.Equal(t, float64(2), clone.Get(MetricViews))
}

func TestMetricSet_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		metrics  MetricSet
		expected string
	}{
		{
			name:     "known metrics in render order",
			metrics:  MetricSet{MetricAvgTime: 40, MetricUnique: 12, MetricViews: 30},
			expected: "30 views, 12 unique, 40.00s average time",
		},
		{
			name:     "all known metrics",
			metrics:  MetricSet{MetricViews: 3, MetricUnique: 2, MetricLoadSample: 1, MetricAvgTime: 1.5, MetricAvgLoad: 0.25},
			expected: "3 views, 2 unique, 1 load samples, 1.50s average time, 0.25s average load",
		},
		{
			name:     "unknown metrics follow sorted",
			metrics:  MetricSet{MetricViews: 3, "exits": 2, "entrances": 1},
			expected: "3 views, 1 entrances, 2 exits",
		},
		{
			name:     "empty",
			metrics:  MetricSet{},
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.metrics.String())
		})
	}
}
