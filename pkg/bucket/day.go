package bucket

import (
	"fmt"
	"strings"

	"tableflip.dev/fitlog/pkg/record"
)

// CalendarDay is everything logged on one date.
type CalendarDay struct {
	Date string `json:"date"`
	Logs Logs   `json:"logs"`
}

// Logs holds a day's records per category. Nil and empty slices both mean
// nothing was logged.
type Logs struct {
	Workouts  []record.WorkoutSession   `json:"workouts,omitempty"`
	Nutrition []record.MacroEntry       `json:"nutrition,omitempty"`
	Wellness  []record.Wellness         `json:"wellness,omitempty"`
	Activity  []record.PhysicalActivity `json:"activity,omitempty"`
	Sleep     []record.SleepEntry       `json:"sleep,omitempty"`
}

// Len counts the logs in one category. CategoryAll counts the indicator
// categories.
func (l Logs) Len(c Category) int {
	switch c {
	case CategoryWorkouts:
		return len(l.Workouts)
	case CategoryNutrition:
		return len(l.Nutrition)
	case CategoryWellness:
		return len(l.Wellness)
	case CategoryActivity:
		return len(l.Activity)
	case CategorySleep:
		return len(l.Sleep)
	case CategoryAll:
		return len(l.Workouts) + len(l.Nutrition) + len(l.Wellness) + len(l.Activity)
	}
	return 0
}

// Empty reports whether nothing was logged.
func (l Logs) Empty() bool {
	return l.Len(CategoryAll) == 0 && len(l.Sleep) == 0
}

// Summary is the one-line description of a day.
func (d CalendarDay) Summary() string {
	if d.Logs.Len(CategoryAll) == 0 {
		return "No logs for this date"
	}
	parts := []string{
		plural(len(d.Logs.Workouts), "workout", "workouts"),
		plural(len(d.Logs.Nutrition), "nutrition log", "nutrition logs"),
		plural(len(d.Logs.Wellness), "wellness entry", "wellness entries"),
		plural(len(d.Logs.Activity), "activity", "activities"),
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
