package timeseries

import (
	"fmt"
	"strconv"
)

// PeriodLayout is the only accepted textual period shape.
const PeriodLayout = "YYYY-MM"

// Period is a calendar year-month.
type Period struct {
	Year  int
	Month int
}

// ParsePeriod parses exactly four digits, a hyphen and two digits, with a
// month in [1,12]. The boolean is false for anything else.
func ParsePeriod(s string) (Period, bool) {
	if len(s) != len(PeriodLayout) || s[4] != '-' {
		return Period{}, false
	}
	if !isDigits(s[:4]) || !isDigits(s[5:]) {
		return Period{}, false
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	if month < 1 || month > 12 {
		return Period{}, false
	}
	return Period{Year: year, Month: month}, true
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Before reports whether p is strictly earlier than q.
func (p Period) Before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return p.Month < q.Month
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
