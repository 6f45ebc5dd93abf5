package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/ui/calendar"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects a single date.
type OnOptions struct {
	OnString string
	// Now is the reference for short dates; nil means time.Now.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-3-15" or --on="3/15".`)
}

func (o *OnOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// GetOn returns the date as YYYY-MM-DD, or "" when unset.
func (o *OnOptions) GetOn() (string, error) {
	return o.Parse(o.OnString)
}

// Parse accepts "2024-3-15" or "3/15". A short date takes the current year,
// or last year when that would be in the future; logs are about the past.
func (o *OnOptions) Parse(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		t, err = time.Parse(layoutISOShort, s)
		if err != nil {
			return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD or M/D", s)
		}
		now := o.now()
		t = t.AddDate(now.Year(), 0, 0)
		if t.After(now) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	return record.FormatDate(t), nil
}

// MonthOptions selects a calendar month.
type MonthOptions struct {
	MonthString string
	Now         func() time.Time
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month=2024-03 or --month="March 2024". Defaults to this month.`)
}

// GetMonth returns the first of the selected month.
func (o *MonthOptions) GetMonth() (time.Time, error) {
	if o.MonthString == "" {
		now := time.Now
		if o.Now != nil {
			now = o.Now
		}
		return calendar.FirstOf(now()), nil
	}
	t, ok := calendar.ParseMonth(o.MonthString)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q, want YYYY-MM or \"January 2006\"", o.MonthString)
	}
	return calendar.FirstOf(t), nil
}
