package stats

import "github.com/sartorproj/paxtrend/timeseries"

// YearSummary aggregates the records of one calendar year.
type YearSummary struct {
	Year   int     `json:"year"`
	Months int     `json:"months"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// YearlySummary returns one summary per year with data, ascending by year.
func YearlySummary(series *timeseries.Series) []YearSummary {
	if series.Len() == 0 {
		return nil
	}
	years := series.Years()
	out := make([]YearSummary, 0, len(years))
	for _, y := range years {
		sub := series.Year(y)
		out = append(out, YearSummary{
			Year:   y,
			Months: sub.Len(),
			Sum:    sub.Sum(),
			Mean:   sub.Mean(),
			Min:    sub.Min(),
			Max:    sub.Max(),
		})
	}
	return out
}
