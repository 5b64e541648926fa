package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ============================================================================
// CSV OUTPUT — chart/table data as CSV (ready for Sheets/Excel)
// ============================================================================

// WriteChartCSV renders a chart config as CSV: label column plus one value
// column per series.
func WriteChartCSV(w io.Writer, config *ChartConfig) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if config == nil || len(config.Series) == 0 {
		return cw.Write([]string{"Result", "No data"})
	}

	xLabel := config.XAxis
	if xLabel == "" {
		xLabel = "Label"
	}

	// Single series → two columns
	if len(config.Series) == 1 {
		yLabel := config.YAxis
		if yLabel == "" {
			yLabel = "Value"
		}
		if err := cw.Write([]string{xLabel, yLabel}); err != nil {
			return err
		}
		for _, d := range config.Series[0].Data {
			if err := cw.Write([]string{d.Label, formatNum(d.Value)}); err != nil {
				return err
			}
		}
		return nil
	}

	// Multi-series → label + one column per series
	headers := []string{xLabel}
	for _, s := range config.Series {
		headers = append(headers, s.Name)
	}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for i, d := range config.Series[0].Data {
		row := []string{d.Label}
		for _, s := range config.Series {
			if i < len(s.Data) {
				row = append(row, formatNum(s.Data[i].Value))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteTableCSV renders table data as CSV.
func WriteTableCSV(w io.Writer, table *TableData) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if table == nil || len(table.Columns) == 0 {
		return cw.Write([]string{"Result", "No data"})
	}

	headers := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		headers = append(headers, c.Label)
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextCSV renders a text result as a single-row CSV.
func WriteTextCSV(w io.Writer, text *TextData) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Summary", "Value"}); err != nil {
		return err
	}
	if text == nil {
		return cw.Write([]string{"No data", ""})
	}
	return cw.Write([]string{text.Value, fmt.Sprintf("%g", text.RawValue)})
}
