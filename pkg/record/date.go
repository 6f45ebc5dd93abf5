// Package record defines the fitness records exchanged with the tracking
// service and the helpers for working with their ISO dates.
package record

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of every record date.
const DateLayout = "2006-01-02"

// FormatDate renders t as an ISO date in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("record: invalid date %q: %w", s, err)
	}
	return t, nil
}

// InRange reports whether date falls in [start, end]. The comparison is
// lexical, which is correct for zero-padded ISO dates.
func InRange(date, start, end string) bool {
	return date >= start && date <= end
}

// MonthRange returns the first and last ISO dates of the month containing t.
func MonthRange(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return FormatDate(first), FormatDate(last)
}
