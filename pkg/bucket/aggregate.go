package bucket

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/record"
)

// Source fetches whole collections. *api.Client satisfies it.
type Source interface {
	FetchSessions(ctx context.Context) ([]record.WorkoutSession, error)
	FetchMacros(ctx context.Context) ([]record.MacroEntry, error)
	FetchStress(ctx context.Context) ([]record.StressEntry, error)
	FetchBodyFeelings(ctx context.Context) ([]record.BodyFeeling, error)
	FetchWellnessSurveys(ctx context.Context) ([]record.WellnessSurvey, error)
	FetchActivities(ctx context.Context) ([]record.PhysicalActivity, error)
}

// Aggregator builds Days from a Source.
type Aggregator struct {
	src Source
	log logging.Logger
}

// NewAggregator returns an Aggregator over src.
func NewAggregator(src Source, log logging.Logger) *Aggregator {
	if log == nil {
		log = logging.Nop()
	}
	return &Aggregator{src: src, log: log}
}

type fetched struct {
	sessions   []record.WorkoutSession
	macros     []record.MacroEntry
	stress     []record.StressEntry
	body       []record.BodyFeeling
	surveys    []record.WellnessSurvey
	activities []record.PhysicalActivity
}

// Aggregate fetches the six collections concurrently and buckets every record
// dated within [start, end]. Any failed fetch fails the pass and no partial
// result is returned.
func (a *Aggregator) Aggregate(ctx context.Context, start, end string) (Days, error) {
	if _, err := record.ParseDate(start); err != nil {
		return nil, fmt.Errorf("bucket: range start: %w", err)
	}
	if _, err := record.ParseDate(end); err != nil {
		return nil, fmt.Errorf("bucket: range end: %w", err)
	}

	var f fetched
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		f.sessions, err = a.src.FetchSessions(gctx)
		return wrap("workout sessions", err)
	})
	g.Go(func() (err error) {
		f.macros, err = a.src.FetchMacros(gctx)
		return wrap("macros", err)
	})
	g.Go(func() (err error) {
		f.stress, err = a.src.FetchStress(gctx)
		return wrap("stress", err)
	})
	g.Go(func() (err error) {
		f.body, err = a.src.FetchBodyFeelings(gctx)
		return wrap("body feelings", err)
	})
	g.Go(func() (err error) {
		f.surveys, err = a.src.FetchWellnessSurveys(gctx)
		return wrap("wellness surveys", err)
	})
	g.Go(func() (err error) {
		f.activities, err = a.src.FetchActivities(gctx)
		return wrap("physical activities", err)
	})
	if err := g.Wait(); err != nil {
		a.log.Warnf("aggregate %s..%s: %v", start, end, err)
		return nil, err
	}

	days := Bucket(f.sessions, f.macros, f.stress, f.body, f.surveys, f.activities, start, end)
	a.log.Debugf("aggregate %s..%s: %d days", start, end, len(days))
	return days, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("bucket: fetch %s: %w", what, err)
	}
	return nil
}

// Bucket places already fetched records into days. Records outside
// [start, end] are dropped. Wellness records are tagged by the collection
// they came from.
func Bucket(
	sessions []record.WorkoutSession,
	macros []record.MacroEntry,
	stress []record.StressEntry,
	body []record.BodyFeeling,
	surveys []record.WellnessSurvey,
	activities []record.PhysicalActivity,
	start, end string,
) Days {
	days := Days{}
	for _, s := range sessions {
		if record.InRange(s.Date, start, end) {
			day := days.touch(s.Date)
			day.Logs.Workouts = append(day.Logs.Workouts, s)
		}
	}
	for _, m := range macros {
		if record.InRange(m.Date, start, end) {
			day := days.touch(m.Date)
			day.Logs.Nutrition = append(day.Logs.Nutrition, m)
		}
	}
	for _, s := range stress {
		if record.InRange(s.Date, start, end) {
			day := days.touch(s.Date)
			day.Logs.Wellness = append(day.Logs.Wellness, record.StressWellness(s))
		}
	}
	for _, b := range body {
		if record.InRange(b.Date, start, end) {
			day := days.touch(b.Date)
			day.Logs.Wellness = append(day.Logs.Wellness, record.BodyFeelingWellness(b))
		}
	}
	for _, w := range surveys {
		if record.InRange(w.Date, start, end) {
			day := days.touch(w.Date)
			day.Logs.Wellness = append(day.Logs.Wellness, record.SurveyWellness(w))
		}
	}
	for _, a := range activities {
		if record.InRange(a.Date, start, end) {
			day := days.touch(a.Date)
			day.Logs.Activity = append(day.Logs.Activity, a)
		}
	}
	return days
}
