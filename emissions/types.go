package emissions

// ============================================================================
// EMISSIONS TYPES — Pollution Dataset Model
// ============================================================================
// One Row per (country, year) observation. The dataset carries no uniqueness
// constraint — repeated (Country, Year) rows are summed by the aggregations,
// never deduplicated.
// ============================================================================

// Pollutant identifies one of the seven measured emission categories.
// The value of each constant is the exact column name in the source data.
type Pollutant string

const (
	NitrogenOxide  Pollutant = "Nitrogen Oxide"
	SulphurDioxide Pollutant = "Sulphur Dioxide"
	CarbonMonoxide Pollutant = "Carbon Monoxide"
	OrganicCarbon  Pollutant = "Organic Carbon"
	NMVOCs         Pollutant = "NMVOCs"
	BlackCarbon    Pollutant = "Black Carbon"
	Ammonia        Pollutant = "Ammonia"
)

// Pollutants lists all seven categories in canonical column order.
var Pollutants = []Pollutant{
	NitrogenOxide,
	SulphurDioxide,
	CarbonMonoxide,
	OrganicCarbon,
	NMVOCs,
	BlackCarbon,
	Ammonia,
}

// Row is a single observation: a country, a year, and the measured emission
// mass of each of the seven pollutant categories. Rows are immutable once
// loaded — the aggregator never writes through a view.
type Row struct {
	Country        string  `json:"country"`
	Year           int     `json:"year"`
	NitrogenOxide  float64 `json:"nitrogenOxide"`
	SulphurDioxide float64 `json:"sulphurDioxide"`
	CarbonMonoxide float64 `json:"carbonMonoxide"`
	OrganicCarbon  float64 `json:"organicCarbon"`
	NMVOCs         float64 `json:"nmvocs"`
	BlackCarbon    float64 `json:"blackCarbon"`
	Ammonia        float64 `json:"ammonia"`
}

// Value returns the measured mass for a single pollutant category.
// Unknown categories read as zero.
func (r Row) Value(p Pollutant) float64 {
	switch p {
	case NitrogenOxide:
		return r.NitrogenOxide
	case SulphurDioxide:
		return r.SulphurDioxide
	case CarbonMonoxide:
		return r.CarbonMonoxide
	case OrganicCarbon:
		return r.OrganicCarbon
	case NMVOCs:
		return r.NMVOCs
	case BlackCarbon:
		return r.BlackCarbon
	case Ammonia:
		return r.Ammonia
	}
	return 0
}

// TotalEmissions returns the sum of all seven pollutant values for the row.
func (r Row) TotalEmissions() float64 {
	return TotalEmissions(r.NitrogenOxide, r.SulphurDioxide, r.CarbonMonoxide,
		r.OrganicCarbon, r.NMVOCs, r.BlackCarbon, r.Ammonia)
}

// ============================================================================
// RESULT TYPES
// ============================================================================

// ChangeResult is the outcome of a first-to-last-year percent change.
type ChangeResult struct {
	Percent   float64 `json:"percent"`
	StartYear int     `json:"startYear"`
	EndYear   int     `json:"endYear"`
}

// YearlySeries holds per-year aggregates for one country. The three slices
// are always equal-length and aligned by index to the ascending year list.
type YearlySeries struct {
	Years         []int     `json:"years"`
	Totals        []float64 `json:"totals"`
	PollutantSums []float64 `json:"pollutantSums"`
}

// CountryStats summarizes every row of one country. Years holds the raw
// year values in row order — one entry per row, duplicates included.
type CountryStats struct {
	Years        []int   `json:"years"`
	AverageTotal float64 `json:"averageTotal"`
	MaxTotal     float64 `json:"maxTotal"`
}

// CountryAverage is one entry of the per-country ranking.
type CountryAverage struct {
	Country string  `json:"country"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
