package emissions

import (
	"errors"
	"math"
	"sort"
)

// ============================================================================
// AGGREGATOR — Descriptive Statistics over a Pollution Dataset
// ============================================================================
// Every operation is a stateless, single-pass (or filter-then-reduce)
// transform over a TableView. Nothing here mutates or retains the view.
// ============================================================================

// ErrEmptySelection is returned when a requested country matches no rows.
// Callers that cannot tolerate it should pre-validate country existence.
var ErrEmptySelection = errors.New("emissions: no rows match the requested country")

// DefaultTopN is the ranking size used when the caller passes topN <= 0.
const DefaultTopN = 10

// AggregateLabels is the fixed set of non-country labels (continents, World,
// income-tier groups) excluded from per-country rankings.
var AggregateLabels = map[string]bool{
	"Asia":                          true,
	"Europe":                        true,
	"World":                         true,
	"Upper-middle-income countries": true,
	"Lower-middle-income countries": true,
	"High-income countries":         true,
	"Low-income countries":          true,
	"North America":                 true,
	"Africa":                        true,
	"South America":                 true,
}

// IsAggregateLabel reports whether a country name is one of the excluded
// aggregate labels.
func IsAggregateLabel(name string) bool {
	return AggregateLabels[name]
}

// TotalEmissions returns the sum of the seven pollutant values.
// Order of arguments never changes the result; overflow is not checked.
func TotalEmissions(nitrogen, sulphur, carbon, organic, nmvocs, black, ammonia float64) float64 {
	return nitrogen + sulphur + carbon + organic + nmvocs + black + ammonia
}

// ============================================================================
// PERCENT CHANGE — first year vs last year
// ============================================================================

// PercentChange computes the percent change of one pollutant between a
// country's first and last observed year. Rows are ordered by Year
// ascending; ties in Year keep their original row order (stable sort).
//
// A zero first-year value is not guarded: the division yields ±Inf (or NaN
// when both values are zero) per IEEE-754. Callers must ensure a non-zero
// baseline.
func PercentChange(view TableView, country string, pollutant Pollutant) (ChangeResult, error) {
	matched := FilterCountry(view, country)
	n := matched.Len()
	if n == 0 {
		return ChangeResult{}, ErrEmptySelection
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return matched.At(order[i]).Year < matched.At(order[j]).Year
	})

	first := matched.At(order[0])
	last := matched.At(order[n-1])

	firstVal := first.Value(pollutant)
	lastVal := last.Value(pollutant)

	return ChangeResult{
		Percent:   (lastVal - firstVal) / firstVal * 100,
		StartYear: first.Year,
		EndYear:   last.Year,
	}, nil
}

// ============================================================================
// YEARLY TOTALS — per-year sums for one country
// ============================================================================

// YearlyTotals groups a country's rows by distinct year (ascending) and,
// for each year, sums the per-row total emissions and the named pollutant.
// Repeated (Country, Year) rows are summed into the same year bucket.
// A country with no rows yields a zero-length series, not an error.
func YearlyTotals(view TableView, country string, pollutant Pollutant) YearlySeries {
	matched := FilterCountry(view, country)

	byYear := make(map[int][]int)
	years := make([]int, 0)
	for i := 0; i < matched.Len(); i++ {
		y := matched.At(i).Year
		if _, seen := byYear[y]; !seen {
			years = append(years, y)
		}
		byYear[y] = append(byYear[y], i)
	}
	sort.Ints(years)

	series := YearlySeries{
		Years:         years,
		Totals:        make([]float64, 0, len(years)),
		PollutantSums: make([]float64, 0, len(years)),
	}
	for _, y := range years {
		var total, pollutantSum float64
		for _, i := range byYear[y] {
			row := matched.At(i)
			total += row.TotalEmissions()
			pollutantSum += row.Value(pollutant)
		}
		series.Totals = append(series.Totals, total)
		series.PollutantSums = append(series.PollutantSums, pollutantSum)
	}
	return series
}

// ============================================================================
// COUNTRY SUMMARY — mean and max of per-row totals
// ============================================================================

// CountrySummary computes the arithmetic mean and maximum of per-row total
// emissions for one country. Every matching row counts individually — a
// country with repeated years is weighted by row count. Years holds the raw
// year of each row in original order, duplicates included.
func CountrySummary(view TableView, country string) (CountryStats, error) {
	matched := FilterCountry(view, country)
	n := matched.Len()
	if n == 0 {
		return CountryStats{}, ErrEmptySelection
	}

	stats := CountryStats{Years: make([]int, 0, n)}
	var sum float64
	max := math.Inf(-1)
	for i := 0; i < n; i++ {
		row := matched.At(i)
		total := row.TotalEmissions()
		stats.Years = append(stats.Years, row.Year)
		sum += total
		if total > max {
			max = total
		}
	}
	stats.AverageTotal = sum / float64(n)
	stats.MaxTotal = max
	return stats, nil
}

// ============================================================================
// RANKING — average total emissions per country
// ============================================================================

// AveragesByCountry accumulates a per-country (sum, count) pair in a single
// pass, skipping aggregate labels, and returns per-country averages sorted
// descending. The accumulator preserves first-seen insertion order, and the
// sort is stable, so equal averages keep deterministic order.
func AveragesByCountry(view TableView) []CountryAverage {
	type accum struct {
		sum   float64
		count int
	}
	sums := make(map[string]*accum)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		row := view.At(i)
		if AggregateLabels[row.Country] {
			continue
		}
		a, seen := sums[row.Country]
		if !seen {
			a = &accum{}
			sums[row.Country] = a
			order = append(order, row.Country)
		}
		a.sum += row.TotalEmissions()
		a.count++
	}

	averages := make([]CountryAverage, 0, len(order))
	for _, country := range order {
		a := sums[country]
		averages = append(averages, CountryAverage{
			Country: country,
			Average: a.sum / float64(a.count),
			Count:   a.count,
		})
	}
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Average > averages[j].Average
	})
	return averages
}

// TopPolluters returns the topN countries with the highest average per-row
// total emissions, as parallel name/value slices in descending order.
// Fewer entries are returned when fewer countries exist; topN <= 0 falls
// back to DefaultTopN. A view containing only aggregate labels yields two
// empty slices, not an error.
func TopPolluters(view TableView, topN int) ([]string, []float64) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	averages := AveragesByCountry(view)
	if len(averages) > topN {
		averages = averages[:topN]
	}

	countries := make([]string, len(averages))
	values := make([]float64, len(averages))
	for i, a := range averages {
		countries[i] = a.Country
		values[i] = a.Average
	}
	return countries, values
}
