package bucket

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"tableflip.dev/fitlog/pkg/record"
)

type fakeSource struct {
	sessions   []record.WorkoutSession
	macros     []record.MacroEntry
	stress     []record.StressEntry
	body       []record.BodyFeeling
	surveys    []record.WellnessSurvey
	activities []record.PhysicalActivity

	failStress error

	mu    sync.Mutex
	calls int
}

func (f *fakeSource) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeSource) FetchSessions(context.Context) ([]record.WorkoutSession, error) {
	f.hit()
	return f.sessions, nil
}

func (f *fakeSource) FetchMacros(context.Context) ([]record.MacroEntry, error) {
	f.hit()
	return f.macros, nil
}

func (f *fakeSource) FetchStress(context.Context) ([]record.StressEntry, error) {
	f.hit()
	return f.stress, f.failStress
}

func (f *fakeSource) FetchBodyFeelings(context.Context) ([]record.BodyFeeling, error) {
	f.hit()
	return f.body, nil
}

func (f *fakeSource) FetchWellnessSurveys(context.Context) ([]record.WellnessSurvey, error) {
	f.hit()
	return f.surveys, nil
}

func (f *fakeSource) FetchActivities(context.Context) ([]record.PhysicalActivity, error) {
	f.hit()
	return f.activities, nil
}

func marchSource() *fakeSource {
	return &fakeSource{
		sessions: []record.WorkoutSession{
			{ID: "w1", Date: "2024-03-15", WorkoutName: "Push"},
			{ID: "w0", Date: "2024-02-29"},
		},
		macros: []record.MacroEntry{{ID: "m1", Date: "2024-03-15"}},
		stress: []record.StressEntry{{ID: "s1", Date: "2024-03-15", StressLevel: 4}},
		body:   []record.BodyFeeling{{ID: "b1", Date: "2024-03-02", Description: "sore"}},
		surveys: []record.WellnessSurvey{
			{ID: "q1", Date: "2024-03-31", FatigueLevel: 2, AchesLevel: 2},
			{ID: "q0", Date: "2024-04-01", FatigueLevel: 2, AchesLevel: 2},
		},
		activities: []record.PhysicalActivity{{ID: "a1", Date: "2024-03-01"}},
	}
}

func TestAggregateBucketsByDate(t *testing.T) {
	src := marchSource()
	days, err := NewAggregator(src, nil).Aggregate(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if src.calls != 6 {
		t.Fatalf("expected 6 fetches, got %d", src.calls)
	}

	want := []string{"2024-03-01", "2024-03-02", "2024-03-15", "2024-03-31"}
	if got := days.Dates(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected dates %v, got %v", want, got)
	}

	day := days.Get("2024-03-15")
	if len(day.Logs.Workouts) != 1 || len(day.Logs.Nutrition) != 1 || len(day.Logs.Wellness) != 1 {
		t.Fatalf("unexpected logs for 15th: %+v", day.Logs)
	}
	if day.Logs.Activity != nil {
		t.Fatalf("untouched categories stay nil, got %v", day.Logs.Activity)
	}
	if day.Logs.Wellness[0].Kind != record.KindStress {
		t.Fatalf("expected stress kind, got %s", day.Logs.Wellness[0].Kind)
	}

	if got := days.Indicators("2024-03-15"); !reflect.DeepEqual(got, []Category{CategoryWorkouts, CategoryNutrition, CategoryWellness}) {
		t.Fatalf("unexpected indicators %v", got)
	}
	if s := day.Summary(); s != "1 workout, 1 nutrition log, 1 wellness entry, 0 activities" {
		t.Fatalf("unexpected summary %q", s)
	}
	if s := days.Get("2024-03-20").Summary(); s != "No logs for this date" {
		t.Fatalf("unexpected empty summary %q", s)
	}
}

func TestAggregateFailsWhole(t *testing.T) {
	src := marchSource()
	src.failStress = errors.New("boom")
	days, err := NewAggregator(src, nil).Aggregate(context.Background(), "2024-03-01", "2024-03-31")
	if err == nil {
		t.Fatalf("expected error")
	}
	if days != nil {
		t.Fatalf("expected no partial result, got %v", days)
	}
	if !errors.Is(err, src.failStress) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestAggregateRejectsBadRange(t *testing.T) {
	if _, err := NewAggregator(marchSource(), nil).Aggregate(context.Background(), "2024-3-1", "2024-03-31"); err == nil {
		t.Fatalf("expected range error")
	}
}

func TestBucketWellnessKinds(t *testing.T) {
	days := Bucket(nil, nil,
		[]record.StressEntry{{ID: "s", Date: "2024-03-15", StressLevel: 3}},
		[]record.BodyFeeling{{ID: "b", Date: "2024-03-15", Description: "fine"}},
		[]record.WellnessSurvey{{ID: "q", Date: "2024-03-15", FatigueLevel: 1, AchesLevel: 1}},
		nil, "2024-03-15", "2024-03-15")
	var kinds []record.WellnessKind
	for _, w := range days.Get("2024-03-15").Logs.Wellness {
		kinds = append(kinds, w.Kind)
	}
	want := []record.WellnessKind{record.KindStress, record.KindBodyFeeling, record.KindSurvey}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	if got := days.Indicators("2024-03-15"); !reflect.DeepEqual(got, []Category{CategoryWellness}) {
		t.Fatalf("three wellness records are one indicator, got %v", got)
	}
}

func TestHasLogsAndShouldShow(t *testing.T) {
	days := Days{
		"2024-03-10": {Date: "2024-03-10", Logs: Logs{Activity: []record.PhysicalActivity{{ID: "a"}}}},
		"2024-03-11": {Date: "2024-03-11", Logs: Logs{Workouts: []record.WorkoutSession{}}},
		"2024-03-12": {Date: "2024-03-12", Logs: Logs{Sleep: []record.SleepEntry{{ID: "z"}}}},
	}
	cases := []struct {
		date string
		cat  Category
		want bool
	}{
		{"2024-03-10", CategoryAll, true},
		{"2024-03-10", CategoryActivity, true},
		{"2024-03-10", CategoryWorkouts, false},
		{"2024-03-11", CategoryAll, false},
		{"2024-03-11", CategoryWorkouts, false},
		{"2024-03-12", CategoryAll, false},
		{"2024-03-12", CategorySleep, true},
		{"2024-03-13", CategoryAll, false},
	}
	for _, tc := range cases {
		if got := days.HasLogs(tc.date, tc.cat); got != tc.want {
			t.Fatalf("HasLogs(%s, %s) = %v, want %v", tc.date, tc.cat, got, tc.want)
		}
		if got := days.ShouldShow(tc.date, tc.cat, true); got != tc.want {
			t.Fatalf("ShouldShow(%s, %s, true) = %v, want %v", tc.date, tc.cat, got, tc.want)
		}
		if !days.ShouldShow(tc.date, tc.cat, false) {
			t.Fatalf("ShouldShow without filter must be true")
		}
	}
	if days.Indicators("2024-03-12") != nil {
		t.Fatalf("sleep is never an indicator")
	}
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{"": CategoryAll, "Workouts": CategoryWorkouts, " wellness ": CategoryWellness} {
		got, err := ParseCategory(in)
		if err != nil || got != want {
			t.Fatalf("ParseCategory(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseCategory("sports"); err == nil {
		t.Fatalf("expected error")
	}
}
