package record

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	cases := []struct {
		in         time.Time
		start, end string
	}{
		{time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		{time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), "2023-02-01", "2023-02-28"},
		{time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC), "2024-12-01", "2024-12-31"},
	}
	for _, tc := range cases {
		start, end := MonthRange(tc.in)
		if start != tc.start || end != tc.end {
			t.Fatalf("%v: expected %s..%s, got %s..%s", tc.in, tc.start, tc.end, start, end)
		}
	}
}

func TestInRange(t *testing.T) {
	if !InRange("2024-03-01", "2024-03-01", "2024-03-31") {
		t.Fatalf("start is inclusive")
	}
	if !InRange("2024-03-31", "2024-03-01", "2024-03-31") {
		t.Fatalf("end is inclusive")
	}
	if InRange("2024-04-01", "2024-03-01", "2024-03-31") {
		t.Fatalf("day after end must be excluded")
	}
	if InRange("2024-02-29", "2024-03-01", "2024-03-31") {
		t.Fatalf("day before start must be excluded")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if FormatDate(d) != "2024-03-15" {
		t.Fatalf("unexpected format %s", FormatDate(d))
	}
	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Fatalf("expected error")
	}
}
