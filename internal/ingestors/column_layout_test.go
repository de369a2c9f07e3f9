package ingestors

import (
	"testing"

	"pageview-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cell    string
		want    float64
		wantErr bool
	}{
		{cell: "42", want: 42},
		{cell: "1,234", want: 1234},
		{cell: "12,345,678", want: 12345678},
		{cell: " 7 ", want: 7},
		{cell: "", wantErr: true},
		{cell: "1.5", wantErr: true},
		{cell: "n/a", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.cell, func(t *testing.T) {
			t.Parallel()

			got, err := parseCount(tt.cell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	got, err := parseDecimal("1,002.25")
	require.NoError(t, err)
	assert.Equal(t, 1002.25, got)

	_, err = parseDecimal("fast")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cell    string
		want    float64
		wantErr bool
	}{
		{cell: "00:00:00", want: 0},
		{cell: "00:01:05", want: 65},
		{cell: "01:02:03", want: 3723},
		{cell: "02:30", want: 150},
		{cell: "45", want: 45},
		{cell: "00:xx:10", wantErr: true},
		{cell: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.cell, func(t *testing.T) {
			t.Parallel()

			got, err := parseClock(tt.cell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewColumnLayout(t *testing.T) {
	t.Parallel()

	header := []string{"\ufeffPage", "Pageviews", "Unique Pageviews", "Avg. Time on Page", "Entrances"}
	layout, svcErr := newColumnLayout(header)
	require.Nil(t, svcErr)
	assert.Equal(t, 0, layout.pageIndex)
	assert.Equal(t, []string{models.MetricViews, models.MetricUnique, models.MetricAvgTime}, layout.MetricNames())

	row, svcErr := layout.parse([]string{"/a", "1,000", "900", "00:00:30", "12"}, 2)
	require.Nil(t, svcErr)
	assert.Equal(t, "/a", row.URL)
	assert.Equal(t, models.MetricSet{models.MetricViews: 1000, models.MetricUnique: 900, models.MetricAvgTime: 30}, row.Metrics)
}

func TestNewColumnLayout_MissingPage(t *testing.T) {
	t.Parallel()

	layout, svcErr := newColumnLayout([]string{"Page Title", "Pageviews"})
	assert.Nil(t, layout)
	require.NotNil(t, svcErr)
	assert.Equal(t, "ING_1001", svcErr.Code)
	assert.Contains(t, svcErr.Message, `"Page"`)
}

func TestColumnLayout_Parse_InvalidNumber(t *testing.T) {
	t.Parallel()

	layout, svcErr := newColumnLayout([]string{"Page", "Pageviews"})
	require.Nil(t, svcErr)

	row, svcErr := layout.parse([]string{"/a", "many"}, 7)
	assert.Nil(t, row)
	require.NotNil(t, svcErr)
	assert.Equal(t, "ING_1002", svcErr.Code)
	assert.Equal(t, "line 7: invalid Pageviews", svcErr.Message)
}
