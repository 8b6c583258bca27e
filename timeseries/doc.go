// Package timeseries provides the monthly passenger series and its loader.
//
// A source is a comma-separated text file with one header line followed by
// rows of the shape "YYYY-MM,count[,ignored...]".
//
// # Loading from CSV
//
//	series, err := timeseries.LoadCSV("data.csv", nil)
//	if errors.Is(err, timeseries.ErrDuplicatePeriod) {
//	    // the source repeats a month
//	}
//
// Dirty rows are tolerated: a row with fewer than two fields, a count that is
// not a plain integer, a malformed period, a month outside 1..12 or a count
// of zero is skipped silently. Sequencing violations are integrity errors and
// abort the load. Each row that passes the shape checks becomes the reference
// for the next ordering check, even when its count is later rejected.
//
// # Series
//
//	series.Len()        // number of records
//	series.Years()      // distinct years, ascending
//	series.Year(2020)   // records of one year
//	series.Mean()       // average passengers
//
// # Errors
//
// All failures are *Error values. Use errors.Is with the Err* kinds to
// classify them and errors.As to read the message.
//
// # CSV Options
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.Logger = slog.Default()
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
