package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/airstat-org/airstat/emissions"
)

// ============================================================================
// CSV LOADER — Parses pollution CSV data into []emissions.Row
// ============================================================================
// The consumer reads the CSV from wherever it lives (file, memory, S3).
// Column names are fixed and matched exactly — case- and spelling-sensitive.
// A missing column or a malformed cell is a load error; the aggregator
// assumes well-formed rows.
// ============================================================================

// Column names of the non-pollutant fields, exactly as they appear in the
// source data. Pollutant column names are the emissions.Pollutant constants.
const (
	ColumnCountry = "Country"
	ColumnYear    = "Year"
)

// ErrMissingColumn is returned when the CSV header lacks a required column.
var ErrMissingColumn = errors.New("dataset: missing required column")

// requiredColumns returns every column the loader needs, in header order.
func requiredColumns() []string {
	cols := []string{ColumnCountry, ColumnYear}
	for _, p := range emissions.Pollutants {
		cols = append(cols, string(p))
	}
	return cols
}

// ParseCSV parses CSV bytes into rows. The header row must contain all nine
// required columns; extra columns are silently skipped.
func ParseCSV(data []byte) ([]emissions.Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns() {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	var rows []emissions.Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line++

		row, err := parseRow(record, index, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseCSVView parses CSV bytes into a TableView (convenience wrapper).
func ParseCSVView(data []byte) (emissions.TableView, error) {
	rows, err := ParseCSV(data)
	if err != nil {
		return nil, err
	}
	return emissions.NewSliceView(rows), nil
}

func parseRow(record []string, index map[string]int, line int) (emissions.Row, error) {
	cell := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var parseErr error
	num := func(col string) float64 {
		if parseErr != nil {
			return 0
		}
		v, err := strconv.ParseFloat(cell(col), 64)
		if err != nil {
			parseErr = fmt.Errorf("row %d: invalid value %q for column %q", line, cell(col), col)
			return 0
		}
		return v
	}

	year, err := strconv.Atoi(cell(ColumnYear))
	if err != nil {
		return emissions.Row{}, fmt.Errorf("row %d: invalid value %q for column %q", line, cell(ColumnYear), ColumnYear)
	}

	row := emissions.Row{
		Country:        cell(ColumnCountry),
		Year:           year,
		NitrogenOxide:  num(string(emissions.NitrogenOxide)),
		SulphurDioxide: num(string(emissions.SulphurDioxide)),
		CarbonMonoxide: num(string(emissions.CarbonMonoxide)),
		OrganicCarbon:  num(string(emissions.OrganicCarbon)),
		NMVOCs:         num(string(emissions.NMVOCs)),
		BlackCarbon:    num(string(emissions.BlackCarbon)),
		Ammonia:        num(string(emissions.Ammonia)),
	}
	if parseErr != nil {
		return emissions.Row{}, parseErr
	}
	return row, nil
}
