package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airstat-org/airstat/emissions"
)

func TestBuildYearlyChart(t *testing.T) {
	series := emissions.YearlySeries{
		Years:         []int{1990, 2000},
		Totals:        []float64{7, 35},
		PollutantSums: []float64{1, 5},
	}

	chart := BuildYearlyChart(series, "United States", emissions.NitrogenOxide)
	require.NotNil(t, chart)

	assert.Equal(t, "line", chart.ChartType)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Total emissions", chart.Series[0].Name)
	assert.Equal(t, "Nitrogen Oxide", chart.Series[1].Name)
	require.Len(t, chart.Series[0].Data, 2)
	assert.Equal(t, ChartPoint{Label: "1990", Value: 7}, chart.Series[0].Data[0])
	assert.Equal(t, ChartPoint{Label: "2000", Value: 5}, chart.Series[1].Data[1])
}

func TestBuildYearlyChartEmpty(t *testing.T) {
	assert.Nil(t, BuildYearlyChart(emissions.YearlySeries{}, "X", emissions.Ammonia))
}

func TestBuildTopPollutersChart(t *testing.T) {
	chart := BuildTopPollutersChart([]string{"A", "B"}, []float64{35.123, 28})
	require.NotNil(t, chart)

	assert.Equal(t, "bar", chart.ChartType)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, ChartPoint{Label: "A", Value: 35.12}, chart.Series[0].Data[0])
	assert.Equal(t, ChartPoint{Label: "B", Value: 28}, chart.Series[0].Data[1])

	assert.Nil(t, BuildTopPollutersChart(nil, nil))
}

func TestBuildChangeText(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    string
	}{
		{"increase", 50.0, "increased by 50.0%"},
		{"decrease", -12.5, "decreased by 12.5%"},
		{"unchanged", 0, "unchanged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := emissions.ChangeResult{Percent: tt.percent, StartYear: 1750, EndYear: 2019}
			text := BuildChangeText(res, "X", emissions.Ammonia)
			assert.Contains(t, text.Value, tt.want)
			assert.Contains(t, text.Value, "1750 – 2019")
			assert.Equal(t, tt.percent, text.RawValue)
		})
	}

	t.Run("zero baseline", func(t *testing.T) {
		res := emissions.ChangeResult{Percent: math.Inf(1), StartYear: 1750, EndYear: 2019}
		text := BuildChangeText(res, "X", emissions.Ammonia)
		assert.Contains(t, text.Value, "undefined")
	})
}

func TestBuildSummaryTable(t *testing.T) {
	stats := emissions.CountryStats{
		Years:        []int{1990, 1990, 2000},
		AverageTotal: 14,
		MaxTotal:     21,
	}

	table := BuildSummaryTable(stats, "United States")
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"United States", "3", "14", "21"}, table.Rows[0])
}

func TestBuildTopPollutersTable(t *testing.T) {
	table := BuildTopPollutersTable([]string{"A", "B"}, []float64{35, 28.5})
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1", "A", "35"}, table.Rows[0])
	assert.Equal(t, []string{"2", "B", "28.50"}, table.Rows[1])
}

func TestWriteChartCSV(t *testing.T) {
	chart := &ChartConfig{
		XAxis: "Year",
		Series: []ChartSeries{
			{Name: "Total emissions", Data: []ChartPoint{{Label: "1990", Value: 7}, {Label: "2000", Value: 35}}},
			{Name: "Ammonia", Data: []ChartPoint{{Label: "1990", Value: 1}, {Label: "2000", Value: 5}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteChartCSV(&buf, chart))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Year,Total emissions,Ammonia", lines[0])
	assert.Equal(t, "1990,7,1", lines[1])
	assert.Equal(t, "2000,35,5", lines[2])
}

func TestWriteChartCSVSingleSeries(t *testing.T) {
	chart := &ChartConfig{
		XAxis: "Country",
		YAxis: "Average total emissions",
		Series: []ChartSeries{
			{Name: "Average total emissions", Data: []ChartPoint{{Label: "A", Value: 35}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteChartCSV(&buf, chart))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Country,Average total emissions", lines[0])
	assert.Equal(t, "A,35", lines[1])
}

func TestWriteTableCSV(t *testing.T) {
	table := BuildTopPollutersTable([]string{"A"}, []float64{35})

	var buf bytes.Buffer
	require.NoError(t, WriteTableCSV(&buf, table))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Rank,Country,Average total", lines[0])
	assert.Equal(t, "1,A,35", lines[1])
}

func TestWriteCSVNoData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChartCSV(&buf, nil))
	assert.Contains(t, buf.String(), "No data")

	buf.Reset()
	require.NoError(t, WriteTableCSV(&buf, nil))
	assert.Contains(t, buf.String(), "No data")
}
