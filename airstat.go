// Package airstat computes descriptive statistics over tabular pollution
// datasets: per-country/per-year pollutant measurements.
//
// Usage:
//
//	import "github.com/airstat-org/airstat/emissions"
//
//	view := emissions.NewSliceView(rows)
//	countries, averages := emissions.TopPolluters(view, 10)
//	change, err := emissions.PercentChange(view, "United States", emissions.NitrogenOxide)
//
// The emissions package is the pure computation core — it reads datasets
// through the TableView interface and never performs I/O. The dataset
// package supplies views from CSV files (local disk, memory, or S3) and
// Arrow record batches; the report package turns results into render-ready
// chart, table, and text structures.
package airstat
