// Package stats computes aggregate statistics over passenger series.
//
// # Year-over-year increments
//
// ComputeIncrements compares the average monthly passengers of consecutive
// years with data inside a year range:
//
//	inc, err := stats.ComputeIncrements(series, "2019", "2022")
//	for _, e := range inc.Entries() {
//	    fmt.Println(e.Label(), e.Delta)
//	}
//
// Years inside the range without records are skipped, and the next label
// spans the gap. With a 2020-2022 range and no 2021 data the only entry is
// "2020-2022". The bound years themselves must have data, unless they are
// exactly one year apart, in which case the result is simply empty.
//
// The result keeps computation order; MarshalJSON writes the keys in that
// order.
//
// # Yearly summaries
//
//	for _, y := range stats.YearlySummary(series) {
//	    fmt.Printf("%d: %d months, mean %.1f\n", y.Year, y.Months, y.Mean)
//	}
package stats
