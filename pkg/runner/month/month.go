// Package month prints the aggregated calendar for one month.
package month

import (
	"context"
	"fmt"
	"io"
	"time"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/printers"
	"tableflip.dev/fitlog/pkg/ui/calendar"
)

// Month aggregates a month and prints its grid and per-day summaries.
type Month struct {
	Source     bucket.Source
	Month      time.Time
	Today      time.Time
	Category   bucket.Category
	ActiveOnly bool
	// Strict fails on a fetch error instead of printing an empty calendar.
	Strict bool
	JSON   bool
	Out    io.Writer
	Log    logging.Logger
}

// Day is the JSON form of one bucketed date.
type Day struct {
	Date       string            `json:"date"`
	Indicators []bucket.Category `json:"indicators"`
	Summary    string            `json:"summary"`
}

// Result is the JSON form of the month.
type Result struct {
	Month      string          `json:"month"`
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Category   bucket.Category `json:"category"`
	ActiveOnly bool            `json:"active_only"`
	Days       []Day           `json:"days"`
}

func (m *Month) Do(ctx context.Context) error {
	if m.Log == nil {
		m.Log = logging.Nop()
	}
	if m.Category == "" {
		m.Category = bucket.CategoryAll
	}
	start, end := calendar.MonthRange(m.Month)

	r := bucket.NewRefresher(bucket.NewAggregator(m.Source, m.Log), m.Log)
	days, err := r.Refresh(ctx, start, end)
	if err != nil {
		if m.Strict {
			return fmt.Errorf("calendar: %s: %w", calendar.Title(m.Month), err)
		}
		m.Log.Warnf("showing an empty calendar for %s: %v", calendar.Title(m.Month), err)
	}
	if days == nil {
		days = bucket.Days{}
	}

	if m.JSON {
		res := Result{
			Month:      calendar.FirstOf(m.Month).Format("2006-01"),
			Start:      start,
			End:        end,
			Category:   m.Category,
			ActiveOnly: m.ActiveOnly,
			Days:       []Day{},
		}
		for _, date := range days.Dates() {
			if !days.HasLogs(date, m.Category) {
				continue
			}
			res.Days = append(res.Days, Day{
				Date:       date,
				Indicators: days.Indicators(date),
				Summary:    days.Get(date).Summary(),
			})
		}
		return printers.JSON(m.Out, res)
	}

	grid := calendar.Build(m.Month, days, calendar.BuildOptions{
		Today:      m.Today,
		Category:   m.Category,
		ActiveOnly: m.ActiveOnly,
	})
	pp := printers.PrettyPrint{Out: m.Out}
	pp.Month(grid)
	pp.Dates(days, m.Category)
	return nil
}
