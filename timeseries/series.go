// Package timeseries provides the monthly passenger series and its loader.
package timeseries

import (
	"math"
	"sort"
)

// Record is one validated observation: a period and its passenger count.
type Record struct {
	Period     Period
	Passengers int
}

// Series is a strictly increasing, duplicate-free sequence of records.
// A Series returned by the loader is owned by the caller and never mutated.
type Series struct {
	Records []Record
	Name    string
}

// New creates a series from records without validating them.
func New(records []Record) *Series {
	return &Series{Records: records}
}

// Len returns the number of records.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// Years returns the distinct years present, ascending.
func (s *Series) Years() []int {
	seen := make(map[int]struct{})
	var years []int
	for _, r := range s.Records {
		if _, ok := seen[r.Period.Year]; ok {
			continue
		}
		seen[r.Period.Year] = struct{}{}
		years = append(years, r.Period.Year)
	}
	sort.Ints(years)
	return years
}

// Year returns the sub-series of records falling in year.
func (s *Series) Year(year int) *Series {
	var records []Record
	for _, r := range s.Records {
		if r.Period.Year == year {
			records = append(records, r)
		}
	}
	return &Series{Records: records, Name: s.Name}
}

// Sum returns the total passenger count. It is accumulated in float64 so
// that large counts cannot wrap around.
func (s *Series) Sum() float64 {
	sum := 0.0
	for _, r := range s.Records {
		sum += float64(r.Passengers)
	}
	return sum
}

// Mean calculates the average passenger count. It is 0 for an empty series.
func (s *Series) Mean() float64 {
	if len(s.Records) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s.Records))
}

// Min returns the smallest passenger count, NaN when empty.
func (s *Series) Min() float64 {
	if len(s.Records) == 0 {
		return math.NaN()
	}
	min := s.Records[0].Passengers
	for _, r := range s.Records[1:] {
		if r.Passengers < min {
			min = r.Passengers
		}
	}
	return float64(min)
}

// Max returns the largest passenger count, NaN when empty.
func (s *Series) Max() float64 {
	if len(s.Records) == 0 {
		return math.NaN()
	}
	max := s.Records[0].Passengers
	for _, r := range s.Records[1:] {
		if r.Passengers > max {
			max = r.Passengers
		}
	}
	return float64(max)
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	records := make([]Record, len(s.Records))
	copy(records, s.Records)
	return &Series{Records: records, Name: s.Name}
}
