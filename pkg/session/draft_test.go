package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/fitlog/pkg/record"
)

var fixedNow = func() time.Time { return time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC) }

var catalog = []record.Exercise{
	{ID: "ex1", Name: "Bench Press", Type: record.ExerciseStrength, MuscleGroup: "Chest"},
	{ID: "ex2", Name: "Back Squat", Type: record.ExerciseStrength, MuscleGroup: "Legs"},
	{ID: "ex3", Name: "Rowing", Type: record.ExerciseCardio},
}

type fakeSaver struct {
	created []record.WorkoutSession
	updated map[string]record.WorkoutSession
	err     error
}

func (f *fakeSaver) Create(_ context.Context, s record.WorkoutSession) (record.WorkoutSession, error) {
	if f.err != nil {
		return record.WorkoutSession{}, f.err
	}
	s.ID = "new-1"
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSaver) Update(_ context.Context, id string, s record.WorkoutSession) (record.WorkoutSession, error) {
	if f.err != nil {
		return record.WorkoutSession{}, f.err
	}
	if f.updated == nil {
		f.updated = map[string]record.WorkoutSession{}
	}
	f.updated[id] = s
	return s, nil
}

func TestNewDraftIsToday(t *testing.T) {
	b := New(WithClock(fixedNow))
	d := b.Draft()
	if d.Session.Date != "2024-03-15" {
		t.Fatalf("expected today's date, got %s", d.Session.Date)
	}
	if len(d.Session.Exercises) != 0 || b.CanSave() || b.Editing() {
		t.Fatalf("expected empty new draft, got %+v", d)
	}
}

func TestAddSet(t *testing.T) {
	b := New(WithClock(fixedNow))
	if b.AddSet("   ", "") {
		t.Fatalf("blank reps must be a no-op")
	}
	if b.AddSet("abc", "") || b.AddSet("0", "") || b.AddSet("8", "heavy") {
		t.Fatalf("invalid input must be a no-op")
	}
	if len(b.Draft().Exercise.Sets) != 0 {
		t.Fatalf("expected no sets after rejected input")
	}
	if !b.AddSet(" 10 ", "") || !b.AddSet("8", "62.5") {
		t.Fatalf("expected sets added")
	}
	sets := b.Draft().Exercise.Sets
	if len(sets) != 2 || sets[0].SetNumber != 1 || sets[1].SetNumber != 2 {
		t.Fatalf("unexpected sets %+v", sets)
	}
	if sets[0].Reps != 10 || sets[0].Weight != nil {
		t.Fatalf("unexpected first set %+v", sets[0])
	}
	if sets[1].Weight == nil || *sets[1].Weight != 62.5 {
		t.Fatalf("unexpected second set %+v", sets[1])
	}
}

func TestAddCurrentSetClearsInput(t *testing.T) {
	b := New(WithClock(fixedNow))
	b.SetCurrent("12", "40")
	if !b.AddCurrentSet() {
		t.Fatalf("expected set added")
	}
	d := b.Draft()
	if d.Exercise.CurrentReps != "" || d.Exercise.CurrentWeight != "" {
		t.Fatalf("expected pending input cleared, got %+v", d.Exercise)
	}
}

func TestRemoveSetRenumbers(t *testing.T) {
	b := New(WithClock(fixedNow))
	for _, r := range []string{"10", "8", "6"} {
		b.AddSet(r, "")
	}
	if !b.RemoveSet(0) {
		t.Fatalf("expected removal")
	}
	sets := b.Draft().Exercise.Sets
	if len(sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(sets))
	}
	for i, s := range sets {
		if s.SetNumber != i+1 {
			t.Fatalf("set %d numbered %d", i, s.SetNumber)
		}
	}
	if sets[0].Reps != 8 || sets[1].Reps != 6 {
		t.Fatalf("wrong sets kept %+v", sets)
	}
	if b.RemoveSet(5) || b.RemoveSet(-1) {
		t.Fatalf("out of range removal must be a no-op")
	}
}

func TestUpdateSet(t *testing.T) {
	b := New(WithClock(fixedNow))
	b.AddSet("10", "")
	if !b.UpdateSet(0, "12", "20") {
		t.Fatalf("expected update")
	}
	s := b.Draft().Exercise.Sets[0]
	if s.SetNumber != 1 || s.Reps != 12 || *s.Weight != 20 {
		t.Fatalf("unexpected set %+v", s)
	}
	if b.UpdateSet(0, "", "") || b.UpdateSet(3, "1", "") {
		t.Fatalf("invalid update must be a no-op")
	}
}

func TestCommitResolvesCatalogCaseInsensitively(t *testing.T) {
	lower := []record.Exercise{{ID: "ex1", Name: "bench press", Type: record.ExerciseStrength}}
	b := New(WithClock(fixedNow))
	b.SetExerciseName("  Bench Press ")
	b.AddSet("5", "100")
	if !b.CommitExercise(lower) {
		t.Fatalf("expected commit")
	}
	ex := b.Draft().Session.Exercises[0]
	if ex.ExerciseID != "ex1" || ex.IsCustom {
		t.Fatalf("expected catalog match ex1, got %+v", ex)
	}
	if ex.ExerciseName != "Bench Press" {
		t.Fatalf("expected the typed name, got %q", ex.ExerciseName)
	}
	d := b.Draft()
	if d.Exercise.Name != "" || len(d.Exercise.Sets) != 0 {
		t.Fatalf("expected sub-draft cleared, got %+v", d.Exercise)
	}
}

func TestSelectExerciseKeepsTypedName(t *testing.T) {
	b := New(WithClock(fixedNow))
	b.SetExerciseName("BENCH press")
	b.SelectExercise(catalog[0])
	d := b.Draft().Exercise
	if d.Name != "BENCH press" || d.ExerciseID != "ex1" {
		t.Fatalf("unexpected exercise draft %+v", d)
	}
}

func TestCommitRequiresNameAndSets(t *testing.T) {
	b := New(WithClock(fixedNow))
	b.SetExerciseName("Bench Press")
	if b.CommitExercise(catalog) {
		t.Fatalf("commit without sets must be a no-op")
	}
	b.SetExerciseName("   ")
	b.AddSet("5", "")
	if b.CommitExercise(catalog) {
		t.Fatalf("commit without a name must be a no-op")
	}
	if len(b.Draft().Exercise.Sets) != 1 {
		t.Fatalf("rejected commit must keep the sets")
	}
}

func TestCustomExercisesGetDistinctIDs(t *testing.T) {
	b := New(WithClock(fixedNow))
	for _, name := range []string{"Sled Push", "Farmer Carry"} {
		b.SetExerciseName(name)
		b.AddSet("1", "")
		if !b.CommitExercise(catalog) {
			t.Fatalf("expected commit of %s", name)
		}
	}
	exs := b.Draft().Session.Exercises
	if !exs[0].IsCustom || !exs[1].IsCustom {
		t.Fatalf("expected custom exercises, got %+v", exs)
	}
	if exs[0].ExerciseID == exs[1].ExerciseID {
		t.Fatalf("custom ids collide: %s", exs[0].ExerciseID)
	}
	for _, ex := range exs {
		if !strings.HasPrefix(ex.ExerciseID, "custom-1710495000000-") {
			t.Fatalf("unexpected custom id %s", ex.ExerciseID)
		}
	}
}

func TestSelectExerciseKeepsID(t *testing.T) {
	b := New(WithClock(fixedNow))
	b.SelectExercise(record.Exercise{ID: "ex9", Name: "Landmine Press"})
	b.AddSet("8", "")
	b.CommitExercise(catalog)
	ex := b.Draft().Session.Exercises[0]
	if ex.ExerciseID != "ex9" || ex.IsCustom {
		t.Fatalf("expected selected id kept, got %+v", ex)
	}
}

func TestRemoveExerciseKeepsSetNumbers(t *testing.T) {
	b := New(WithClock(fixedNow), WithIDGenerator(func() string { return "custom-x" }))
	for _, name := range []string{"Bench Press", "Back Squat", "Rowing"} {
		b.SetExerciseName(name)
		b.AddSet("5", "")
		b.AddSet("5", "")
		b.CommitExercise(catalog)
	}
	if !b.RemoveExercise(1) {
		t.Fatalf("expected removal")
	}
	exs := b.Draft().Session.Exercises
	if len(exs) != 2 || exs[0].ExerciseID != "ex1" || exs[1].ExerciseID != "ex3" {
		t.Fatalf("unexpected exercises %+v", exs)
	}
	if exs[1].Sets.Detailed()[1].SetNumber != 2 {
		t.Fatalf("set numbers inside exercises must not change")
	}
	if b.RemoveExercise(7) {
		t.Fatalf("out of range removal must be a no-op")
	}
}

func TestSaveNewResets(t *testing.T) {
	saver := &fakeSaver{}
	b := New(WithClock(fixedNow))
	b.SetWorkoutName("Push")
	b.SetExerciseName("Bench Press")
	b.AddSet("5", "100")
	b.CommitExercise(catalog)

	saved, err := b.Save(context.Background(), saver)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID != "new-1" || len(saver.created) != 1 {
		t.Fatalf("expected one create, got %+v", saver.created)
	}
	if saver.created[0].WorkoutName != "Push" || len(saver.created[0].Exercises) != 1 {
		t.Fatalf("unexpected payload %+v", saver.created[0])
	}
	if b.CanSave() || b.Draft().Session.WorkoutName != "" {
		t.Fatalf("expected reset after new save")
	}
}

func TestSaveFailureKeepsDraft(t *testing.T) {
	saver := &fakeSaver{err: errors.New("502")}
	b := New(WithClock(fixedNow))
	b.SetExerciseName("Rowing")
	b.AddSet("1", "")
	b.CommitExercise(catalog)
	if _, err := b.Save(context.Background(), saver); !errors.Is(err, saver.err) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if !b.CanSave() {
		t.Fatalf("failed save must keep the draft")
	}
}

func TestEditNormalizesAndUpdates(t *testing.T) {
	reps := 5
	existing := record.WorkoutSession{
		ID:   "w1",
		Date: "2024-03-10",
		Exercises: []record.SessionExercise{
			{ExerciseID: "ex2", ExerciseName: "Back Squat", Sets: record.CountSets(3), Reps: &reps},
		},
	}
	saver := &fakeSaver{}
	b := New(WithClock(fixedNow))
	b.Edit(existing)
	if !b.Editing() {
		t.Fatalf("expected edit mode")
	}
	ex := b.Draft().Session.Exercises[0]
	if ex.Sets.IsCount() || ex.Sets.Count() != 3 {
		t.Fatalf("expected normalized sets, got %+v", ex.Sets)
	}
	if !existing.Exercises[0].Sets.IsCount() {
		t.Fatalf("Edit must not mutate the caller's record")
	}

	b.SetNotes("moved to Sunday")
	if _, err := b.Save(context.Background(), saver); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, ok := saver.updated["w1"]; !ok || got.Notes != "moved to Sunday" || got.ID != "w1" {
		t.Fatalf("expected update of w1, got %+v", saver.updated)
	}
	if len(saver.created) != 0 {
		t.Fatalf("edit must not create")
	}
	if !b.Editing() {
		t.Fatalf("edit save leaves exit to the caller")
	}
	b.ExitEdit()
	if b.Editing() || b.Draft().Session.Date != "2024-03-15" {
		t.Fatalf("expected a fresh draft after ExitEdit")
	}
}

func TestSetDate(t *testing.T) {
	b := New(WithClock(fixedNow))
	if err := b.SetDate("2024-13-01"); err == nil {
		t.Fatalf("expected invalid date error")
	}
	if err := b.SetDate("2024-02-29"); err != nil || b.Draft().Session.Date != "2024-02-29" {
		t.Fatalf("unexpected result %v %s", err, b.Draft().Session.Date)
	}
}
