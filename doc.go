// Package paxtrend computes year-over-year changes in average monthly
// passenger volume from a monthly CSV time series.
//
// # Quick Start
//
// Load and clean a series, then compute increments over a year range:
//
//	series, err := timeseries.LoadCSV("passengers.csv", nil)
//	if err != nil {
//	    return err
//	}
//	inc, err := stats.ComputeIncrements(series, "1949", "1960")
//
// # Packages
//
//   - timeseries: Period, Series, the validating CSV loader and file watcher
//   - stats: increment calculator and yearly summaries
//   - config: YAML and environment configuration for the command
//   - cmd/paxtrend: command-line front end
//
// # Source format
//
// One header line, then rows "YYYY-MM,count". Rows with a malformed period,
// an invalid month or a count that is not a positive integer are dropped.
// Duplicate or out-of-order periods abort loading.
package paxtrend
