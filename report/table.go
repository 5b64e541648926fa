package report

import (
	"fmt"

	"github.com/airstat-org/airstat/emissions"
)

// ============================================================================
// TABLE BUILDERS — TableData from aggregation results
// ============================================================================

// BuildSummaryTable produces a one-row table for a country summary.
func BuildSummaryTable(stats emissions.CountryStats, country string) *TableData {
	return &TableData{
		Title: fmt.Sprintf("Emission summary — %s", country),
		Columns: []Column{
			{Key: "country", Label: "Country", Type: "text", Align: "left"},
			{Key: "rows", Label: "Rows", Type: "number", Align: "right"},
			{Key: "average", Label: "Average total", Type: "number", Align: "right"},
			{Key: "max", Label: "Max total", Type: "number", Align: "right"},
		},
		Rows: [][]string{{
			country,
			fmt.Sprintf("%d", len(stats.Years)),
			formatNum(stats.AverageTotal),
			formatNum(stats.MaxTotal),
		}},
	}
}

// BuildTopPollutersTable produces a ranked table from parallel
// country/average slices, in the order given.
func BuildTopPollutersTable(countries []string, averages []float64) *TableData {
	rows := make([][]string, 0, len(countries))
	for i, country := range countries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			country,
			formatNum(averages[i]),
		})
	}

	return &TableData{
		Title: "Top polluters by average total emissions",
		Columns: []Column{
			{Key: "rank", Label: "Rank", Type: "number", Align: "right"},
			{Key: "country", Label: "Country", Type: "text", Align: "left"},
			{Key: "average", Label: "Average total", Type: "number", Align: "right"},
		},
		Rows: rows,
	}
}

// formatNum renders whole numbers without decimals, fractional with two.
func formatNum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
