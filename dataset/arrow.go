package dataset

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/airstat-org/airstat/emissions"
)

// ============================================================================
// ARROW VIEW — emissions.TableView over an Arrow record batch
// ============================================================================
// Lets Arrow-resident datasets feed the aggregator without copying into
// []Row. Columns are resolved by exact name once at construction; cells are
// read on demand. The caller keeps the record alive (and releases it) for
// the lifetime of the view.
// ============================================================================

// ArrowView adapts an arrow.Record to emissions.TableView. The record must
// carry a string Country column, an int64 Year column, and a float64 column
// per pollutant, all named exactly as in the CSV schema.
type ArrowView struct {
	countries *array.String
	years     *array.Int64
	values    []*array.Float64 // canonical pollutant order
	length    int
}

// NewArrowView resolves the nine required columns of a record batch.
func NewArrowView(rec arrow.Record) (*ArrowView, error) {
	schema := rec.Schema()
	column := func(name string) (arrow.Array, error) {
		indices := schema.FieldIndices(name)
		if len(indices) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return rec.Column(indices[0]), nil
	}

	countryCol, err := column(ColumnCountry)
	if err != nil {
		return nil, err
	}
	countries, ok := countryCol.(*array.String)
	if !ok {
		return nil, fmt.Errorf("dataset: column %q must be string, got %s", ColumnCountry, countryCol.DataType())
	}

	yearCol, err := column(ColumnYear)
	if err != nil {
		return nil, err
	}
	years, ok := yearCol.(*array.Int64)
	if !ok {
		return nil, fmt.Errorf("dataset: column %q must be int64, got %s", ColumnYear, yearCol.DataType())
	}

	values := make([]*array.Float64, 0, len(emissions.Pollutants))
	for _, p := range emissions.Pollutants {
		col, err := column(string(p))
		if err != nil {
			return nil, err
		}
		floats, ok := col.(*array.Float64)
		if !ok {
			return nil, fmt.Errorf("dataset: column %q must be float64, got %s", p, col.DataType())
		}
		values = append(values, floats)
	}

	return &ArrowView{
		countries: countries,
		years:     years,
		values:    values,
		length:    int(rec.NumRows()),
	}, nil
}

func (v *ArrowView) Len() int { return v.length }

func (v *ArrowView) At(i int) emissions.Row {
	if i < 0 || i >= v.length {
		return emissions.Row{}
	}
	return emissions.Row{
		Country:        v.countries.Value(i),
		Year:           int(v.years.Value(i)),
		NitrogenOxide:  v.values[0].Value(i),
		SulphurDioxide: v.values[1].Value(i),
		CarbonMonoxide: v.values[2].Value(i),
		OrganicCarbon:  v.values[3].Value(i),
		NMVOCs:         v.values[4].Value(i),
		BlackCarbon:    v.values[5].Value(i),
		Ammonia:        v.values[6].Value(i),
	}
}
