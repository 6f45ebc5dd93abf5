package api

import (
	"context"
	"net/url"

	"tableflip.dev/fitlog/pkg/record"
)

// Collection is the path of one REST collection.
type Collection string

const (
	WorkoutSessions    Collection = "/api/workout-sessions"
	Exercises          Collection = "/api/exercises"
	Splits             Collection = "/api/splits"
	Macros             Collection = "/api/macros"
	Hydration          Collection = "/api/hydration"
	Stress             Collection = "/api/stress"
	BodyFeelings       Collection = "/api/body-feelings"
	WellnessSurveys    Collection = "/api/wellness-survey"
	PhysicalActivities Collection = "/api/physical-activities"
	Sleep              Collection = "/api/sleep"
)

// Collections lists every known collection.
var Collections = []Collection{
	WorkoutSessions, Exercises, Splits, Macros, Hydration,
	Stress, BodyFeelings, WellnessSurveys, PhysicalActivities, Sleep,
}

// Known reports whether c is one of Collections.
func (c Collection) Known() bool {
	for _, k := range Collections {
		if k == c {
			return true
		}
	}
	return false
}

func (c Collection) item(id string) string {
	return string(c) + "/" + url.PathEscape(id)
}

// Sessions is the workout-session resource.
func (c *Client) Sessions() Resource[record.WorkoutSession] {
	return Resource[record.WorkoutSession]{c: c, col: WorkoutSessions}
}

// ExerciseCatalog is the exercise resource.
func (c *Client) ExerciseCatalog() Resource[record.Exercise] {
	return Resource[record.Exercise]{c: c, col: Exercises}
}

func (c *Client) SplitList() Resource[record.Split] {
	return Resource[record.Split]{c: c, col: Splits}
}

func (c *Client) MacroLog() Resource[record.MacroEntry] {
	return Resource[record.MacroEntry]{c: c, col: Macros}
}

func (c *Client) HydrationLog() Resource[record.HydrationEntry] {
	return Resource[record.HydrationEntry]{c: c, col: Hydration}
}

func (c *Client) StressLog() Resource[record.StressEntry] {
	return Resource[record.StressEntry]{c: c, col: Stress}
}

func (c *Client) BodyFeelingLog() Resource[record.BodyFeeling] {
	return Resource[record.BodyFeeling]{c: c, col: BodyFeelings}
}

func (c *Client) SurveyLog() Resource[record.WellnessSurvey] {
	return Resource[record.WellnessSurvey]{c: c, col: WellnessSurveys}
}

func (c *Client) ActivityLog() Resource[record.PhysicalActivity] {
	return Resource[record.PhysicalActivity]{c: c, col: PhysicalActivities}
}

func (c *Client) SleepLog() Resource[record.SleepEntry] {
	return Resource[record.SleepEntry]{c: c, col: Sleep}
}

// The Fetch methods return whole, unfiltered collections. They satisfy the
// calendar aggregator's source.

func (c *Client) FetchSessions(ctx context.Context) ([]record.WorkoutSession, error) {
	return c.Sessions().List(ctx, NoFilter)
}

func (c *Client) FetchMacros(ctx context.Context) ([]record.MacroEntry, error) {
	return c.MacroLog().List(ctx, NoFilter)
}

func (c *Client) FetchStress(ctx context.Context) ([]record.StressEntry, error) {
	return c.StressLog().List(ctx, NoFilter)
}

func (c *Client) FetchBodyFeelings(ctx context.Context) ([]record.BodyFeeling, error) {
	return c.BodyFeelingLog().List(ctx, NoFilter)
}

func (c *Client) FetchWellnessSurveys(ctx context.Context) ([]record.WellnessSurvey, error) {
	return c.SurveyLog().List(ctx, NoFilter)
}

func (c *Client) FetchActivities(ctx context.Context) ([]record.PhysicalActivity, error) {
	return c.ActivityLog().List(ctx, NoFilter)
}

func (c *Client) FetchSleep(ctx context.Context) ([]record.SleepEntry, error) {
	return c.SleepLog().List(ctx, NoFilter)
}

func (c *Client) FetchHydration(ctx context.Context) ([]record.HydrationEntry, error) {
	return c.HydrationLog().List(ctx, NoFilter)
}

func (c *Client) FetchExercises(ctx context.Context) ([]record.Exercise, error) {
	return c.ExerciseCatalog().List(ctx, NoFilter)
}

func (c *Client) FetchSplits(ctx context.Context) ([]record.Split, error) {
	return c.SplitList().List(ctx, NoFilter)
}
