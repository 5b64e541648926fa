package report

import (
	"fmt"
	"math"

	"github.com/airstat-org/airstat/emissions"
)

// ============================================================================
// CHART BUILDERS — ChartConfig from aggregation results
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildYearlyChart produces a line chart of a country's yearly totals, with
// one series for total emissions and one for the named pollutant.
// Returns nil when the series is empty.
func BuildYearlyChart(series emissions.YearlySeries, country string, pollutant emissions.Pollutant) *ChartConfig {
	if len(series.Years) == 0 {
		return nil
	}

	totalPoints := make([]ChartPoint, 0, len(series.Years))
	pollutantPoints := make([]ChartPoint, 0, len(series.Years))
	for i, year := range series.Years {
		label := fmt.Sprintf("%d", year)
		totalPoints = append(totalPoints, ChartPoint{Label: label, Value: roundTo2(series.Totals[i])})
		pollutantPoints = append(pollutantPoints, ChartPoint{Label: label, Value: roundTo2(series.PollutantSums[i])})
	}

	return &ChartConfig{
		ChartType: "line",
		Title:     fmt.Sprintf("Yearly emissions — %s", country),
		XAxis:     "Year",
		YAxis:     "Emissions",
		Series: []ChartSeries{
			{Name: "Total emissions", Data: totalPoints, Color: defaultColors[0]},
			{Name: string(pollutant), Data: pollutantPoints, Color: defaultColors[1]},
		},
		Colors:     defaultColors[:2],
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// BuildTopPollutersChart produces a bar chart from parallel country/average
// slices, in the order given. Returns nil when empty.
func BuildTopPollutersChart(countries []string, averages []float64) *ChartConfig {
	if len(countries) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(countries))
	for i, country := range countries {
		points = append(points, ChartPoint{Label: country, Value: roundTo2(averages[i])})
	}

	return &ChartConfig{
		ChartType: "bar",
		Title:     fmt.Sprintf("Top %d polluters by average total emissions", len(countries)),
		XAxis:     "Country",
		YAxis:     "Average total emissions",
		Series: []ChartSeries{
			{Name: "Average total emissions", Data: points},
		},
		Colors:     assignColors(len(points)),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}

func roundTo2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
