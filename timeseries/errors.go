package timeseries

import "errors"

// Error kinds. Every failure reported by this module is an *Error whose Kind
// is one of these values, so callers can branch with errors.Is.
var (
	ErrSourceNotFound   = errors.New("source not found")
	ErrSourceUnreadable = errors.New("source unreadable")
	ErrDuplicatePeriod  = errors.New("duplicate period")
	ErrMonthsOutOfOrder = errors.New("months out of order")
	ErrYearsOutOfOrder  = errors.New("years out of order")

	ErrEmptySeries    = errors.New("empty series")
	ErrYearLength     = errors.New("year must have four characters")
	ErrEqualYears     = errors.New("first and last year are equal")
	ErrYearNotDigits  = errors.New("year must be made of digits")
	ErrYearOrder      = errors.New("first year after last year")
	ErrYearNotPresent = errors.New("year not present")
)

// Error is the single error type of the module. Msg is human readable and
// names the offending values; Kind classifies the failure.
type Error struct {
	Kind error
	Msg  string
}

// NewError returns an *Error of the given kind.
func NewError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}
