package report

import (
	"fmt"
	"math"

	"github.com/airstat-org/airstat/emissions"
)

// ============================================================================
// TEXT BUILDER — direction-aware change summaries
// ============================================================================

// BuildChangeText produces a readable sentence and structured data for a
// percent-change result. A non-finite percent (zero baseline in the source
// data) is reported as undefined rather than formatted as a number.
func BuildChangeText(res emissions.ChangeResult, country string, pollutant emissions.Pollutant) *TextData {
	period := fmt.Sprintf("%d – %d", res.StartYear, res.EndYear)

	if math.IsInf(res.Percent, 0) || math.IsNaN(res.Percent) {
		return &TextData{
			Value:    fmt.Sprintf("%s emissions in %s changed from a zero baseline over %s — percent change is undefined.", pollutant, country, period),
			RawValue: res.Percent,
			Period:   period,
		}
	}

	direction := "unchanged"
	if res.Percent > 0 {
		direction = "increased"
	} else if res.Percent < 0 {
		direction = "decreased"
	}

	abs := math.Abs(res.Percent)
	var value string
	if direction == "unchanged" {
		value = fmt.Sprintf("%s emissions in %s were unchanged over %s.", pollutant, country, period)
	} else {
		value = fmt.Sprintf("%s emissions in %s %s by %.1f%% over %s.", pollutant, country, direction, abs, period)
	}

	return &TextData{
		Value:    value,
		RawValue: res.Percent,
		Period:   period,
	}
}
