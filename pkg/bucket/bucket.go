// Package bucket merges the independently fetched record collections into
// per-day buckets for the month calendar.
package bucket

import (
	"fmt"
	"sort"
	"strings"
)

// Category selects which logs a calendar query looks at.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryWorkouts  Category = "workouts"
	CategoryNutrition Category = "nutrition"
	CategoryWellness  Category = "wellness"
	CategoryActivity  Category = "activity"
	CategorySleep     Category = "sleep"
)

// IndicatorOrder is the fixed order of the calendar dots. Sleep never shows.
var IndicatorOrder = []Category{CategoryWorkouts, CategoryNutrition, CategoryWellness, CategoryActivity}

// ParseCategory accepts the category names case-insensitively. Empty means all.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CategoryAll, nil
	case CategoryAll, CategoryWorkouts, CategoryNutrition, CategoryWellness, CategoryActivity, CategorySleep:
		return c, nil
	}
	return "", fmt.Errorf("bucket: unknown category %q", s)
}

// Days maps an ISO date to its bucket. A date is present only when at least
// one record in range carries it.
type Days map[string]*CalendarDay

// HasLogs reports whether date has logs in category. CategoryAll means any of
// the four indicator categories.
func (d Days) HasLogs(date string, category Category) bool {
	day, ok := d[date]
	if !ok || day == nil {
		return false
	}
	if category == CategoryAll {
		for _, c := range IndicatorOrder {
			if day.Logs.Len(c) > 0 {
				return true
			}
		}
		return false
	}
	return day.Logs.Len(category) > 0
}

// Indicators returns the non-empty indicator categories of date in
// IndicatorOrder.
func (d Days) Indicators(date string) []Category {
	day, ok := d[date]
	if !ok || day == nil {
		return nil
	}
	var out []Category
	for _, c := range IndicatorOrder {
		if day.Logs.Len(c) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// ShouldShow implements the "only dates with logged activity" filter. Without
// activeOnly every date shows.
func (d Days) ShouldShow(date string, category Category, activeOnly bool) bool {
	if !activeOnly {
		return true
	}
	return d.HasLogs(date, category)
}

// Dates returns the bucketed dates in ascending order.
func (d Days) Dates() []string {
	out := make([]string, 0, len(d))
	for date := range d {
		out = append(out, date)
	}
	sort.Strings(out)
	return out
}

// Get returns the bucket for date, or an empty day.
func (d Days) Get(date string) CalendarDay {
	if day, ok := d[date]; ok && day != nil {
		return *day
	}
	return CalendarDay{Date: date}
}

func (d Days) touch(date string) *CalendarDay {
	day, ok := d[date]
	if !ok {
		day = &CalendarDay{Date: date}
		d[date] = day
	}
	return day
}
