package session

import (
	"strings"

	"tableflip.dev/fitlog/pkg/record"
)

// Resolve finds the catalog exercise whose name equals name, ignoring case
// and surrounding space.
func Resolve(catalog []record.Exercise, name string) (record.Exercise, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, ex := range catalog {
		if strings.ToLower(strings.TrimSpace(ex.Name)) == want {
			return ex, true
		}
	}
	return record.Exercise{}, false
}

// FilterByDay narrows the catalog to exercises whose name, muscle group or
// type contains day, ignoring case. An empty day keeps everything.
func FilterByDay(catalog []record.Exercise, day string) []record.Exercise {
	day = strings.ToLower(strings.TrimSpace(day))
	if day == "" {
		return catalog
	}
	var out []record.Exercise
	for _, ex := range catalog {
		if strings.Contains(strings.ToLower(ex.Name), day) ||
			strings.Contains(strings.ToLower(ex.MuscleGroup), day) ||
			strings.Contains(strings.ToLower(string(ex.Type)), day) {
			out = append(out, ex)
		}
	}
	return out
}

// SplitDay finds a split by name (or id) and one of its days, ignoring case.
func SplitDay(splits []record.Split, split, day string) (record.Split, string, bool) {
	for _, s := range splits {
		if !strings.EqualFold(s.Name, split) && s.ID != split {
			continue
		}
		for _, d := range s.Days {
			if strings.EqualFold(d, day) {
				return s, d, true
			}
		}
		return s, "", false
	}
	return record.Split{}, "", false
}
