// Package session composes a workout session client-side: exercises are
// built set by set, committed to the session, and the whole session is saved
// as one record.
package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/fitlog/pkg/record"
)

// ExerciseDraft is the exercise being built before it is committed.
type ExerciseDraft struct {
	Name          string              `json:"name"`
	ExerciseID    string              `json:"exercise_id,omitempty"`
	Sets          []record.WorkoutSet `json:"sets"`
	CurrentReps   string              `json:"current_reps,omitempty"`
	CurrentWeight string              `json:"current_weight,omitempty"`
}

// Draft is the whole in-progress session. EditID is set when the draft edits
// an existing record.
type Draft struct {
	Session  record.WorkoutSession `json:"session"`
	Exercise ExerciseDraft         `json:"exercise"`
	EditID   string                `json:"edit_id,omitempty"`
}

// Saver persists a finished session. api.Resource[record.WorkoutSession]
// satisfies it.
type Saver interface {
	Create(ctx context.Context, s record.WorkoutSession) (record.WorkoutSession, error)
	Update(ctx context.Context, id string, s record.WorkoutSession) (record.WorkoutSession, error)
}

// Builder mutates a Draft. It is not safe for concurrent use.
type Builder struct {
	draft Draft
	now   func() time.Time
	newID func() string
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock sets the clock used for the default date and custom ids.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithIDGenerator replaces the custom exercise id generator.
func WithIDGenerator(gen func() string) Option {
	return func(b *Builder) { b.newID = gen }
}

// New starts an empty draft dated today.
func New(opts ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, o := range opts {
		o(b)
	}
	if b.newID == nil {
		b.newID = b.customID
	}
	b.Reset()
	return b
}

// Restore continues a previously stored draft.
func Restore(d Draft, opts ...Option) *Builder {
	b := New(opts...)
	b.draft = d
	if b.draft.Session.Exercises == nil {
		b.draft.Session.Exercises = []record.SessionExercise{}
	}
	return b
}

func (b *Builder) customID() string {
	return fmt.Sprintf("custom-%d-%s", b.now().UnixMilli(), uuid.NewString()[:8])
}

// Draft returns a copy of the current draft.
func (b *Builder) Draft() Draft {
	d := b.draft
	d.Session.Exercises = make([]record.SessionExercise, len(b.draft.Session.Exercises))
	copy(d.Session.Exercises, b.draft.Session.Exercises)
	d.Exercise.Sets = make([]record.WorkoutSet, len(b.draft.Exercise.Sets))
	copy(d.Exercise.Sets, b.draft.Exercise.Sets)
	return d
}

// Editing reports whether the draft edits an existing session.
func (b *Builder) Editing() bool { return b.draft.EditID != "" }

// Reset discards everything and starts a new draft dated today.
func (b *Builder) Reset() {
	b.draft = Draft{
		Session: record.WorkoutSession{
			Date:      record.FormatDate(b.now()),
			Exercises: []record.SessionExercise{},
		},
		Exercise: ExerciseDraft{Sets: []record.WorkoutSet{}},
	}
}

// SetDate sets the session date.
func (b *Builder) SetDate(date string) error {
	if _, err := record.ParseDate(date); err != nil {
		return err
	}
	b.draft.Session.Date = date
	return nil
}

func (b *Builder) SetWorkoutName(name string) { b.draft.Session.WorkoutName = strings.TrimSpace(name) }

func (b *Builder) SetNotes(notes string) { b.draft.Session.Notes = notes }

// SetSplit records the split and split day the session follows.
func (b *Builder) SetSplit(id, name string) {
	b.draft.Session.SplitID = id
	b.draft.Session.SplitName = name
}

// SetExerciseName names the exercise being built. The catalog is consulted
// only on commit.
func (b *Builder) SetExerciseName(name string) {
	b.draft.Exercise.Name = name
	b.draft.Exercise.ExerciseID = ""
}

// SelectExercise links the exercise being built to a catalog entry. A name
// the user already typed is kept; the catalog name only fills a blank one.
func (b *Builder) SelectExercise(ex record.Exercise) {
	if strings.TrimSpace(b.draft.Exercise.Name) == "" {
		b.draft.Exercise.Name = ex.Name
	}
	b.draft.Exercise.ExerciseID = ex.ID
}

// SetCurrent stores the pending reps and weight input.
func (b *Builder) SetCurrent(reps, weight string) {
	b.draft.Exercise.CurrentReps = reps
	b.draft.Exercise.CurrentWeight = weight
}

// AddSet appends a set to the exercise being built. Blank or non-positive
// reps, or an unparsable weight, leave the draft untouched. A blank weight is
// no weight. On success the pending input is cleared.
func (b *Builder) AddSet(reps, weight string) bool {
	set, ok := parseSet(reps, weight)
	if !ok {
		return false
	}
	set.SetNumber = len(b.draft.Exercise.Sets) + 1
	b.draft.Exercise.Sets = append(b.draft.Exercise.Sets, set)
	b.draft.Exercise.CurrentReps = ""
	b.draft.Exercise.CurrentWeight = ""
	return true
}

// AddCurrentSet adds a set from the pending input.
func (b *Builder) AddCurrentSet() bool {
	return b.AddSet(b.draft.Exercise.CurrentReps, b.draft.Exercise.CurrentWeight)
}

// UpdateSet rewrites the reps and weight of set i in place.
func (b *Builder) UpdateSet(i int, reps, weight string) bool {
	if i < 0 || i >= len(b.draft.Exercise.Sets) {
		return false
	}
	set, ok := parseSet(reps, weight)
	if !ok {
		return false
	}
	set.SetNumber = b.draft.Exercise.Sets[i].SetNumber
	b.draft.Exercise.Sets[i] = set
	return true
}

// RemoveSet removes set i and renumbers the rest from 1.
func (b *Builder) RemoveSet(i int) bool {
	sets := b.draft.Exercise.Sets
	if i < 0 || i >= len(sets) {
		return false
	}
	out := make([]record.WorkoutSet, 0, len(sets)-1)
	out = append(out, sets[:i]...)
	out = append(out, sets[i+1:]...)
	for n := range out {
		out[n].SetNumber = n + 1
	}
	b.draft.Exercise.Sets = out
	return true
}

func parseSet(reps, weight string) (record.WorkoutSet, bool) {
	reps = strings.TrimSpace(reps)
	if reps == "" {
		return record.WorkoutSet{}, false
	}
	n, err := strconv.Atoi(reps)
	if err != nil || n <= 0 {
		return record.WorkoutSet{}, false
	}
	set := record.WorkoutSet{Reps: n}
	if w := strings.TrimSpace(weight); w != "" {
		f, err := strconv.ParseFloat(w, 64)
		if err != nil || f < 0 {
			return record.WorkoutSet{}, false
		}
		set.Weight = &f
	}
	return set, true
}

// CommitExercise moves the exercise being built into the session. It needs a
// name and at least one set. The name is matched case-insensitively against
// catalog and kept as typed; a match only supplies the id. Without a match
// the exercise is custom with a fresh placeholder id.
func (b *Builder) CommitExercise(catalog []record.Exercise) bool {
	cur := b.draft.Exercise
	name := strings.TrimSpace(cur.Name)
	if name == "" || len(cur.Sets) == 0 {
		return false
	}

	ex := record.SessionExercise{ExerciseName: name}
	if match, ok := Resolve(catalog, name); ok {
		ex.ExerciseID = match.ID
	} else if cur.ExerciseID != "" {
		ex.ExerciseID = cur.ExerciseID
	} else {
		ex.ExerciseID = b.newID()
		ex.IsCustom = true
	}
	ex.Sets = record.DetailedSetsOf(cur.Sets)

	b.draft.Session.Exercises = append(b.draft.Session.Exercises, ex)
	b.draft.Exercise = ExerciseDraft{Sets: []record.WorkoutSet{}}
	return true
}

// RemoveExercise drops committed exercise i.
func (b *Builder) RemoveExercise(i int) bool {
	exs := b.draft.Session.Exercises
	if i < 0 || i >= len(exs) {
		return false
	}
	out := make([]record.SessionExercise, 0, len(exs)-1)
	out = append(out, exs[:i]...)
	b.draft.Session.Exercises = append(out, exs[i+1:]...)
	return true
}

// Edit loads an existing session into the draft. Legacy count-form sets are
// expanded.
func (b *Builder) Edit(s record.WorkoutSession) {
	exs := make([]record.SessionExercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		ex.Normalize()
		exs[i] = ex
	}
	s.Exercises = exs
	b.draft = Draft{
		Session:  s,
		Exercise: ExerciseDraft{Sets: []record.WorkoutSet{}},
		EditID:   s.ID,
	}
}

// ExitEdit leaves edit mode and starts a new draft.
func (b *Builder) ExitEdit() {
	if b.Editing() {
		b.Reset()
	}
}

// CanSave reports whether the session has at least one exercise. Save does
// not enforce it.
func (b *Builder) CanSave() bool {
	return len(b.draft.Session.Exercises) > 0
}

// Save creates the session, or updates it when editing. A new session resets
// the draft on success; an edited one stays until ExitEdit. On failure the
// draft is untouched.
func (b *Builder) Save(ctx context.Context, saver Saver) (record.WorkoutSession, error) {
	s := b.Draft().Session
	if b.Editing() {
		s.ID = b.draft.EditID
		saved, err := saver.Update(ctx, b.draft.EditID, s)
		if err != nil {
			return record.WorkoutSession{}, fmt.Errorf("session: update %s: %w", b.draft.EditID, err)
		}
		return saved, nil
	}
	s.ID = ""
	saved, err := saver.Create(ctx, s)
	if err != nil {
		return record.WorkoutSession{}, fmt.Errorf("session: create: %w", err)
	}
	b.Reset()
	return saved, nil
}
