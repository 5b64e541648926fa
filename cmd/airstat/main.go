package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/airstat-org/airstat/dataset"
	"github.com/airstat-org/airstat/emissions"
	"github.com/airstat-org/airstat/report"
)

// ============================================================================
// AIRSTAT CLI — descriptive statistics over pollution datasets
// ============================================================================

const version = "0.1.0"

func main() {
	filePath := flag.String("file", "", "Name of the CSV dataset (required)")
	op := flag.String("op", "", "Operation: change, yearly, summary, top")
	country := flag.String("country", "", "Country name (for change, yearly, summary)")
	pollutantName := flag.String("pollutant", "", "Pollutant column name (for change, yearly)")
	topN := flag.Int("top", emissions.DefaultTopN, "Ranking size for --op top")
	format := flag.String("format", "json", "Output format: json, pretty, csv, text")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `airstat — descriptive statistics over pollution datasets

Usage:
  airstat --file pollution.csv --op top --top 10 --format csv
  airstat --file pollution.csv --op change --country "United States" --pollutant "Nitrogen Oxide"
  airstat --file pollution.csv --op yearly --country "United States" --pollutant "Ammonia" --format csv
  airstat --file pollution.csv --op summary --country "United States"

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  AIRSTAT_STORAGE_MODE    Where datasets live: local (default), s3
  AIRSTAT_STORAGE_PATH    Base directory for local mode (default ".")
  S3_BUCKET_NAME, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY, S3_REGION, S3_ENDPOINT
                          Required/optional settings for s3 mode

Formats:
  json      Full JSON output (default)
  pretty    Pretty-printed JSON
  csv       Chart/table data as CSV (ready for Sheets/Excel)
  text      Human-readable summary only
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("airstat %s\n", version)
		os.Exit(0)
	}
	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}
	if *op == "" {
		fmt.Fprintln(os.Stderr, "Error: --op is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Load data ─────────────────────────────────────────────────────────
	ctx := context.Background()
	source, err := dataset.SourceFromEnv(ctx)
	if err != nil {
		fatalf("Failed to configure dataset source: %v", err)
	}
	view, err := dataset.Load(ctx, source, *filePath)
	if err != nil {
		fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("📊 Loaded %d rows from %s", view.Len(), *filePath)

	// ── Dispatch ──────────────────────────────────────────────────────────
	switch *op {
	case "change":
		requireFlag(*country, "--country")
		requireFlag(*pollutantName, "--pollutant")
		pollutant := resolvePollutant(*pollutantName)
		res, err := emissions.PercentChange(view, *country, pollutant)
		if err != nil {
			fatalf("Percent change failed: %v", err)
		}
		text := report.BuildChangeText(res, *country, pollutant)
		switch *format {
		case "csv":
			checkWrite(report.WriteTextCSV(writer, text))
		case "text":
			fmt.Fprintln(writer, text.Value)
		default:
			writeJSON(writer, struct {
				Result emissions.ChangeResult `json:"result"`
				Text   *report.TextData       `json:"text"`
			}{res, text}, *format)
		}

	case "yearly":
		requireFlag(*country, "--country")
		requireFlag(*pollutantName, "--pollutant")
		pollutant := resolvePollutant(*pollutantName)
		series := emissions.YearlyTotals(view, *country, pollutant)
		chart := report.BuildYearlyChart(series, *country, pollutant)
		switch *format {
		case "csv":
			checkWrite(report.WriteChartCSV(writer, chart))
		case "text":
			fmt.Fprintf(writer, "%d distinct years for %s\n", len(series.Years), *country)
		default:
			writeJSON(writer, struct {
				Series emissions.YearlySeries `json:"series"`
				Chart  *report.ChartConfig    `json:"chart,omitempty"`
			}{series, chart}, *format)
		}

	case "summary":
		requireFlag(*country, "--country")
		stats, err := emissions.CountrySummary(view, *country)
		if err != nil {
			fatalf("Country summary failed: %v", err)
		}
		table := report.BuildSummaryTable(stats, *country)
		switch *format {
		case "csv":
			checkWrite(report.WriteTableCSV(writer, table))
		case "text":
			fmt.Fprintf(writer, "%s: %d rows, average total %.2f, max total %.2f\n",
				*country, len(stats.Years), stats.AverageTotal, stats.MaxTotal)
		default:
			writeJSON(writer, struct {
				Stats emissions.CountryStats `json:"stats"`
				Table *report.TableData      `json:"table"`
			}{stats, table}, *format)
		}

	case "top":
		countries, averages := emissions.TopPolluters(view, *topN)
		switch *format {
		case "csv":
			checkWrite(report.WriteTableCSV(writer, report.BuildTopPollutersTable(countries, averages)))
		case "text":
			for i, c := range countries {
				fmt.Fprintf(writer, "%2d. %s — %.2f\n", i+1, c, averages[i])
			}
		default:
			writeJSON(writer, struct {
				Countries []string            `json:"countries"`
				Averages  []float64           `json:"averages"`
				Chart     *report.ChartConfig `json:"chart,omitempty"`
			}{countries, averages, report.BuildTopPollutersChart(countries, averages)}, *format)
		}

	default:
		fatalf("Unknown operation %q (supported: change, yearly, summary, top)", *op)
	}

	if *outFile != "" {
		log.Printf("📄 Output written to %s", *outFile)
	}
}

// resolvePollutant matches a column name against the seven known categories.
func resolvePollutant(name string) emissions.Pollutant {
	for _, p := range emissions.Pollutants {
		if string(p) == name {
			return p
		}
	}
	fatalf("Unknown pollutant %q (supported: %v)", name, emissions.Pollutants)
	return ""
}

func requireFlag(value, name string) {
	if value == "" {
		fatalf("%s is required for this operation", name)
	}
}

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error
	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func checkWrite(err error) {
	if err != nil {
		fatalf("Failed to write output: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
