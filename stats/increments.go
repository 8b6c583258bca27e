package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sartorproj/paxtrend/timeseries"
)

// Increment is the change in average monthly passengers between two years
// that both have data. From may lie more than one year before To when the
// years in between have no records.
type Increment struct {
	From  int
	To    int
	Delta float64
}

// Label returns the "<from>-<to>" key of the increment.
func (i Increment) Label() string {
	return strconv.Itoa(i.From) + "-" + strconv.Itoa(i.To)
}

// Increments is an ordered association from year-span labels to deltas.
// Entries keep the order in which they were computed, ascending by year.
type Increments struct {
	entries []Increment
	index   map[string]int
}

func newIncrements() *Increments {
	return &Increments{index: make(map[string]int)}
}

func (m *Increments) add(inc Increment) {
	label := inc.Label()
	if i, ok := m.index[label]; ok {
		m.entries[i] = inc
		return
	}
	m.index[label] = len(m.entries)
	m.entries = append(m.entries, inc)
}

// Len returns the number of entries.
func (m *Increments) Len() int {
	return len(m.entries)
}

// Labels returns the keys in insertion order.
func (m *Increments) Labels() []string {
	labels := make([]string, len(m.entries))
	for i, e := range m.entries {
		labels[i] = e.Label()
	}
	return labels
}

// Get returns the delta stored under label.
func (m *Increments) Get(label string) (float64, bool) {
	i, ok := m.index[label]
	if !ok {
		return 0, false
	}
	return m.entries[i].Delta, true
}

// Entries returns a copy of the entries in insertion order.
func (m *Increments) Entries() []Increment {
	out := make([]Increment, len(m.entries))
	copy(out, m.entries)
	return out
}

// MarshalJSON encodes the increments as a JSON object whose keys keep
// insertion order.
func (m *Increments) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label())
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Delta)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Increments) String() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = fmt.Sprintf("%s: %g", e.Label(), e.Delta)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ComputeIncrements calculates, for each year in [firstYear, lastYear] that
// has data, the change of its average monthly passengers with respect to the
// closest earlier year in the range that has data.
//
// Both bounds must be four-digit strings, differ, and satisfy first < last.
// Only ASCII digits are accepted; "２０２０" is rejected with ErrYearNotDigits.
// Both bound years must have at least one record, except when they are
// exactly one year apart: then a missing year yields an empty result.
func ComputeIncrements(series *timeseries.Series, firstYear, lastYear string) (*Increments, error) {
	if series.Len() == 0 {
		return nil, timeseries.NewError(timeseries.ErrEmptySeries, "no valid data in the series")
	}
	if utf8.RuneCountInString(firstYear) != 4 || utf8.RuneCountInString(lastYear) != 4 {
		return nil, timeseries.NewError(timeseries.ErrYearLength,
			fmt.Sprintf("first_year and last_year must have four digits, got %q and %q", firstYear, lastYear))
	}
	if firstYear == lastYear {
		return nil, timeseries.NewError(timeseries.ErrEqualYears,
			fmt.Sprintf("first_year and last_year must differ, both are %s", firstYear))
	}
	first, okFirst := parseYear(firstYear)
	last, okLast := parseYear(lastYear)
	if !okFirst || !okLast {
		return nil, timeseries.NewError(timeseries.ErrYearNotDigits,
			fmt.Sprintf("first_year and last_year must be strings of digits, got %q and %q", firstYear, lastYear))
	}
	if first > last {
		return nil, timeseries.NewError(timeseries.ErrYearOrder,
			fmt.Sprintf("first_year %d must be less than last_year %d", first, last))
	}

	result := newIncrements()

	if first+1 == last && (series.Year(first).Len() == 0 || series.Year(last).Len() == 0) {
		return result, nil
	}
	for _, year := range []int{first, last} {
		if series.Year(year).Len() == 0 {
			return nil, timeseries.NewError(timeseries.ErrYearNotPresent,
				fmt.Sprintf("year %d is not present in the series", year))
		}
	}

	prevAvg := 0.0
	skipRun := 0
	for year := first; year <= last; year++ {
		records := series.Year(year)
		if records.Len() == 0 {
			skipRun++
			continue
		}
		currAvg := records.Mean()
		if year > first {
			result.add(Increment{From: year - skipRun - 1, To: year, Delta: currAvg - prevAvg})
			skipRun = 0
		}
		prevAvg = currAvg
	}
	return result, nil
}

// parseYear accepts exactly four ASCII digits.
func parseYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	y, err := strconv.Atoi(s)
	return y, err == nil
}
