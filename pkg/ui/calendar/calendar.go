// Package calendar lays out a month grid with per-day log indicators and
// renders it for the terminal.
package calendar

import (
	"strings"
	"time"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/record"
)

// MaxDots is the number of indicator categories a cell can show.
const MaxDots = 4

// Cell is one slot of the month grid. Leading cells before the first weekday
// are Blank.
type Cell struct {
	Day      int
	Date     string
	Blank    bool
	Today    bool
	Selected bool
	// Hidden cells are filtered out by the active-only view.
	Hidden bool
	Dots   []bucket.Category
}

// Grid is the laid-out month. Cells run Sunday first, row by row.
type Grid struct {
	Month    time.Time
	Offset   int
	Cells    []Cell
	Category bucket.Category
}

// BuildOptions selects what the grid highlights.
type BuildOptions struct {
	Today      time.Time
	Selected   string
	Category   bucket.Category
	ActiveOnly bool
}

// Build lays out month with the indicators found in days.
func Build(month time.Time, days bucket.Days, opts BuildOptions) Grid {
	first := FirstOf(month)
	offset := int(first.Weekday()) // Sunday == 0
	n := DaysIn(month)
	today := ""
	if !opts.Today.IsZero() {
		today = record.FormatDate(opts.Today)
	}
	category := opts.Category
	if category == "" {
		category = bucket.CategoryAll
	}

	g := Grid{Month: first, Offset: offset, Category: category, Cells: make([]Cell, 0, offset+n)}
	for i := 0; i < offset; i++ {
		g.Cells = append(g.Cells, Cell{Blank: true})
	}
	for day := 1; day <= n; day++ {
		date := record.FormatDate(first.AddDate(0, 0, day-1))
		dots := days.Indicators(date)
		if len(dots) > MaxDots {
			dots = dots[:MaxDots]
		}
		g.Cells = append(g.Cells, Cell{
			Day:      day,
			Date:     date,
			Today:    date == today,
			Selected: date == opts.Selected,
			Hidden:   !days.ShouldShow(date, category, opts.ActiveOnly),
			Dots:     dots,
		})
	}
	return g
}

// Rows returns how many week rows the grid spans.
func (g Grid) Rows() int {
	return (len(g.Cells) + 6) / 7
}

// Weeks splits the cells into rows of seven, padding the last row with blanks.
func (g Grid) Weeks() [][]Cell {
	var weeks [][]Cell
	for row := 0; row < g.Rows(); row++ {
		week := make([]Cell, 7)
		for col := range week {
			idx := row*7 + col
			if idx < len(g.Cells) {
				week[col] = g.Cells[idx]
			} else {
				week[col] = Cell{Blank: true}
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Cell returns the cell for date, if it is in the month.
func (g Grid) Cell(date string) (Cell, bool) {
	for _, c := range g.Cells {
		if !c.Blank && c.Date == date {
			return c, true
		}
	}
	return Cell{}, false
}

// Visible returns the dates a cursor may land on, in order.
func (g Grid) Visible() []string {
	var out []string
	for _, c := range g.Cells {
		if !c.Blank && !c.Hidden {
			out = append(out, c.Date)
		}
	}
	return out
}

// FirstOf returns midnight UTC on the first of t's month.
func FirstOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	return FirstOf(month).AddDate(0, 1, -1).Day()
}

func NextMonth(t time.Time) time.Time { return FirstOf(t).AddDate(0, 1, 0) }

func PrevMonth(t time.Time) time.Time { return FirstOf(t).AddDate(0, -1, 0) }

// MonthRange returns the ISO bounds of the month containing t.
func MonthRange(t time.Time) (string, string) {
	return record.MonthRange(t)
}

// ParseMonth accepts "2006-01" or "January 2006".
func ParseMonth(name string) (time.Time, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01", "January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, name); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Shift moves an ISO date by n days.
func Shift(date string, n int) (string, error) {
	t, err := record.ParseDate(date)
	if err != nil {
		return "", err
	}
	return record.FormatDate(t.AddDate(0, 0, n)), nil
}

// Title is the month heading, e.g. "March 2024".
func Title(month time.Time) string {
	return month.Format("January 2006")
}
