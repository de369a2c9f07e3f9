package ingestors_test

import (
	"context"
	"strings"
	"testing"

	"pageview-analytics/internal/aggregators"
	"pageview-analytics/internal/ingestors"
	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `# ----------------------------------------
# All Web Site Data
# Pages
# 20240101-20240131
# ----------------------------------------

Page,Pageviews,Unique Pageviews,Avg. Time on Page,Page Load Sample,Avg. Page Load Time (sec)
/a/b?x=1,10,8,00:01:40,2,1.50
/a/b?x=2,20,15,00:00:10,0,0.00
"/https://example.com/a","1,000",900,00:00:05,10,2.00
(not set),5,5,00:00:00,0,0.00
`

type prefixMatcher string

func (p prefixMatcher) MatchString(s string) bool {
	return strings.HasPrefix(s, string(p))
}

func TestIngest_Success(t *testing.T) {
	t.Parallel()

	aggregator := aggregators.NewURLAggregator(models.MetricViews)
	service := ingestors.NewIngestionService(aggregator)

	result, err := service.Ingest(context.Background(), strings.NewReader(sampleExport))
	require.NoError(t, err)
	assert.Equal(t, 4, result.Rows)
	assert.Equal(t, 3, result.Ingested)
	assert.Equal(t, 1, result.Malformed)
	assert.Equal(t, 0, result.Filtered)
	assert.Equal(t, []string{models.MetricViews, models.MetricUnique, models.MetricLoadSample, models.MetricAvgTime, models.MetricAvgLoad}, result.Metrics)

	root := aggregator.Root()
	assert.Equal(t, float64(1030), root.Metrics().Get(models.MetricViews))

	a, ok := root.Child("a")
	require.True(t, ok)
	assert.Equal(t, float64(1030), a.Metrics().Get(models.MetricViews))
	assert.Equal(t, float64(923), a.Metrics().Get(models.MetricUnique))
	assert.True(t, a.IsLeaf())

	b, ok := a.Child("b")
	require.True(t, ok)
	// (10*100 + 20*10) / 30
	assert.InDelta(t, 40.0, b.Metrics().Get(models.MetricAvgTime), 1e-9)
	// only the first row carries load samples
	assert.InDelta(t, 1.5, b.Metrics().Get(models.MetricAvgLoad), 1e-9)
}

func TestIngest_Filtered(t *testing.T) {
	t.Parallel()

	aggregator := aggregators.NewURLAggregator(models.MetricViews, aggregators.WithURLFilter(prefixMatcher("/a/b")))
	service := ingestors.NewIngestionService(aggregator)

	result, err := service.Ingest(context.Background(), strings.NewReader(sampleExport))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Ingested)
	assert.Equal(t, 2, result.Filtered)
	assert.Equal(t, float64(30), aggregator.Root().Metrics().Get(models.MetricViews))
}

func TestIngest_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{
			name:     "empty input",
			input:    "",
			wantCode: "ING_1001",
		},
		{
			name:     "missing page column",
			input:    "URL,Pageviews\n/a,1\n",
			wantCode: "ING_1001",
		},
		{
			name:     "unparsable pageviews",
			input:    "Page,Pageviews\n/a,1\n/b,lots\n",
			wantCode: "ING_1002",
		},
		{
			name:     "unparsable time on page",
			input:    "Page,Avg. Time on Page\n/a,1 minute\n",
			wantCode: "ING_1002",
		},
		{
			name:     "ragged row",
			input:    "Page,Pageviews\n/a,1,2\n",
			wantCode: "ING_1000",
		},
		{
			name:     "unterminated quote",
			input:    "Page,Pageviews\n\"/a,1\n",
			wantCode: "ING_1000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			aggregator := aggregators.NewURLAggregator(models.MetricViews)
			service := ingestors.NewIngestionService(aggregator)

			result, err := service.Ingest(context.Background(), strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, result)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, "invalid_input", svcErr.Category)
			assert.Equal(t, svcerrors.ExitCodeInvalidInput, svcErr.ExitCode)
		})
	}
}

func TestIngest_ContextCancelled(t *testing.T) {
	t.Parallel()

	aggregator := aggregators.NewURLAggregator(models.MetricViews)
	service := ingestors.NewIngestionService(aggregator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := service.Ingest(ctx, strings.NewReader(sampleExport))
	require.Error(t, err)
	assert.Nil(t, result)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_9000", svcErr.Code)
	assert.ErrorIs(t, err, context.Canceled)
}
