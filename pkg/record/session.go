package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// WorkoutSession is one logged training session, persisted as a single unit.
type WorkoutSession struct {
	ID          string            `json:"id,omitempty"`
	Date        string            `json:"date" validate:"required,datetime=2006-01-02"`
	WorkoutName string            `json:"workout_name,omitempty"`
	SplitID     string            `json:"split_id,omitempty"`
	SplitName   string            `json:"split_name,omitempty"`
	Exercises   []SessionExercise `json:"exercises" validate:"dive"`
	Notes       string            `json:"notes,omitempty"`
}

// Title is the display name of the session.
func (s *WorkoutSession) Title() string {
	switch {
	case s.WorkoutName != "":
		return s.WorkoutName
	case s.SplitName != "":
		return s.SplitName
	default:
		return "Workout Session"
	}
}

// SessionExercise is one exercise performed in a session. The exercise is
// remembered by name; ExerciseID only points at the catalog when IsCustom is
// false.
type SessionExercise struct {
	ExerciseID   string `json:"exercise_id" validate:"required"`
	ExerciseName string `json:"exercise_name" validate:"required"`
	Sets         Sets   `json:"sets"`
	IsCustom     bool   `json:"is_custom,omitempty"`

	// Legacy count-form sessions carried reps and weight on the exercise.
	Reps   *int     `json:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Notes  string   `json:"notes,omitempty"`
}

// DetailedSets returns the sets in detailed form, expanding a legacy count
// using the exercise-level reps and weight.
func (e *SessionExercise) DetailedSets() []WorkoutSet {
	if !e.Sets.IsCount() {
		return e.Sets.Detailed()
	}
	reps := 0
	if e.Reps != nil {
		reps = *e.Reps
	}
	out := make([]WorkoutSet, e.Sets.Count())
	for i := range out {
		out[i] = WorkoutSet{SetNumber: i + 1, Reps: reps, Weight: e.Weight}
	}
	return out
}

// Normalize converts a legacy count into detailed sets in place.
func (e *SessionExercise) Normalize() {
	if e.Sets.IsCount() {
		e.Sets = DetailedSetsOf(e.DetailedSets())
		e.Reps = nil
		e.Weight = nil
	}
}

// WorkoutSet is one set of an exercise. SetNumber is 1-based and dense.
type WorkoutSet struct {
	SetNumber int      `json:"set_number"`
	Reps      int      `json:"reps"`
	Weight    *float64 `json:"weight,omitempty"`
}

// Sets is either a plain count (legacy) or a list of detailed sets. It keeps
// the shape it was decoded from when encoded again.
type Sets struct {
	count    int
	detailed []WorkoutSet
	isCount  bool
}

// CountSets builds the legacy numeric form.
func CountSets(n int) Sets {
	return Sets{count: n, isCount: true}
}

// DetailedSetsOf builds the detailed form.
func DetailedSetsOf(sets []WorkoutSet) Sets {
	cp := make([]WorkoutSet, len(sets))
	copy(cp, sets)
	return Sets{detailed: cp}
}

// IsCount reports whether the sets are in the legacy numeric form.
func (s Sets) IsCount() bool { return s.isCount }

// Count returns the number of sets in either form.
func (s Sets) Count() int {
	if s.isCount {
		return s.count
	}
	return len(s.detailed)
}

// Detailed returns a copy of the detailed sets. It is empty for the count
// form; use SessionExercise.DetailedSets to expand a count.
func (s Sets) Detailed() []WorkoutSet {
	out := make([]WorkoutSet, len(s.detailed))
	copy(out, s.detailed)
	return out
}

// MarshalJSON encodes a number for the count form and an array otherwise.
func (s Sets) MarshalJSON() ([]byte, error) {
	if s.isCount {
		return json.Marshal(s.count)
	}
	if s.detailed == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.detailed)
}

// UnmarshalJSON accepts either a JSON number or an array of sets.
func (s *Sets) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = Sets{}
		return nil
	case data[0] == '[':
		var detailed []WorkoutSet
		if err := json.Unmarshal(data, &detailed); err != nil {
			return fmt.Errorf("record: decode sets: %w", err)
		}
		*s = Sets{detailed: detailed}
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("record: sets must be a number or a list: %w", err)
		}
		if n < 0 || n != math.Trunc(n) {
			return fmt.Errorf("record: invalid set count %v", n)
		}
		*s = CountSets(int(n))
		return nil
	}
}
