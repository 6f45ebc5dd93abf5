package main

import (
	"fmt"
	"time"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/api/apitest"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/ui/calendar"
)

var sampleExercises = []record.Exercise{
	{ID: "ex-bench", Name: "Bench Press", Type: record.ExerciseStrength, MuscleGroup: "chest"},
	{ID: "ex-ohp", Name: "Overhead Press", Type: record.ExerciseStrength, MuscleGroup: "shoulders"},
	{ID: "ex-row", Name: "Barbell Row", Type: record.ExerciseStrength, MuscleGroup: "back"},
	{ID: "ex-pullup", Name: "Pull Up", Type: record.ExerciseStrength, MuscleGroup: "back"},
	{ID: "ex-squat", Name: "Back Squat", Type: record.ExerciseStrength, MuscleGroup: "legs"},
	{ID: "ex-rdl", Name: "Romanian Deadlift", Type: record.ExerciseStrength, MuscleGroup: "legs"},
	{ID: "ex-bike", Name: "Stationary Bike", Type: record.ExerciseCardio, MuscleGroup: "legs"},
}

var sampleSplits = []record.Split{
	{ID: "split-ppl", Name: "PPL", Days: []string{"Push", "Pull", "Legs"}},
}

// workoutPlan is the rotation used for Monday, Wednesday and Friday sessions.
var workoutPlan = []struct {
	day       string
	exercises []string
}{
	{"Push", []string{"ex-bench", "ex-ohp"}},
	{"Pull", []string{"ex-row", "ex-pullup"}},
	{"Legs", []string{"ex-squat", "ex-rdl"}},
}

func exerciseName(id string) string {
	for _, ex := range sampleExercises {
		if ex.ID == id {
			return ex.Name
		}
	}
	return id
}

func ptr[T any](v T) *T { return &v }

// seedSample fills srv with a month of mixed logs. Days after today stay
// empty when month is the current month.
func seedSample(srv *apitest.Server, month time.Time) {
	for _, ex := range sampleExercises {
		srv.Seed(api.Exercises, ex)
	}
	for _, sp := range sampleSplits {
		srv.Seed(api.Splits, sp)
	}

	today := time.Now()
	first := calendar.FirstOf(month)
	rotation := 0
	for d := 0; d < calendar.DaysIn(first); d++ {
		day := first.AddDate(0, 0, d)
		if day.After(today) {
			break
		}
		date := record.FormatDate(day)
		n := d + 1

		switch day.Weekday() {
		case time.Monday, time.Wednesday, time.Friday:
			plan := workoutPlan[rotation%len(workoutPlan)]
			rotation++
			srv.Seed(api.WorkoutSessions, sampleSession(date, n, plan.day, plan.exercises))
		case time.Saturday:
			srv.Seed(api.PhysicalActivities, record.PhysicalActivity{
				ID: fmt.Sprintf("act-%d", n), Date: date, ActivityType: "hike",
				Description: "Trail loop", DurationMinutes: ptr(90 + n), IntensityLevel: ptr(5),
			})
		}

		if n%3 != 0 {
			srv.Seed(api.Macros, record.MacroEntry{
				ID: fmt.Sprintf("mac-%d", n), Date: date,
				FoodItems: []record.FoodItem{
					{Name: "Oats", Calories: 380, Protein: 13},
					{Name: "Chicken Breast", Calories: 330, Protein: 62},
				},
				TotalCalories: ptr(710.0), TotalProtein: ptr(75.0),
			})
			srv.Seed(api.Hydration, record.HydrationEntry{ID: fmt.Sprintf("h2o-%d", n), Date: date, AmountML: 2000})
		}
		if n%4 == 1 {
			srv.Seed(api.Stress, record.StressEntry{
				ID: fmt.Sprintf("str-%d", n), Date: date, StressLevel: 3 + n%5, Description: "Work deadline",
			})
		}
		if n%5 == 2 {
			srv.Seed(api.BodyFeelings, record.BodyFeeling{ID: fmt.Sprintf("feel-%d", n), Date: date, Description: "Tight hamstrings"})
		}
		if day.Weekday() == time.Sunday {
			srv.Seed(api.WellnessSurveys, record.WellnessSurvey{
				ID: fmt.Sprintf("srv-%d", n), Date: date, FatigueLevel: 4, AchesLevel: 3, Mood: ptr(7),
			})
		}
		srv.Seed(api.Sleep, record.SleepEntry{
			ID: fmt.Sprintf("slp-%d", n), Date: date, HoursSlept: 6.5 + float64(n%4)/2, Quality: ptr(6 + n%4),
		})
	}
}

func sampleSession(date string, n int, name string, ids []string) record.WorkoutSession {
	s := record.WorkoutSession{
		ID: fmt.Sprintf("ws-%d", n), Date: date, WorkoutName: name,
		SplitID: sampleSplits[0].ID, SplitName: sampleSplits[0].Name,
	}
	for i, id := range ids {
		weight := float64(40 + 10*i + n)
		var sets []record.WorkoutSet
		for k := 1; k <= 3; k++ {
			sets = append(sets, record.WorkoutSet{SetNumber: k, Reps: 10 - k, Weight: ptr(weight)})
		}
		s.Exercises = append(s.Exercises, record.SessionExercise{
			ExerciseID: id, ExerciseName: exerciseName(id), Sets: record.DetailedSetsOf(sets),
		})
	}
	return s
}
