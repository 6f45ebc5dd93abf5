package api

import (
	"context"

	"tableflip.dev/fitlog/pkg/record"
)

// Dated fetches the aggregated collections narrowed to one date with the
// date_filter parameter. It satisfies the calendar aggregator's source, so a
// single day can be bucketed without listing whole collections.
type Dated struct {
	c      *Client
	filter DateFilter
}

// OnDate returns a source limited to date (YYYY-MM-DD).
func (c *Client) OnDate(date string) *Dated {
	return &Dated{c: c, filter: DateFilter(date)}
}

func (d *Dated) FetchSessions(ctx context.Context) ([]record.WorkoutSession, error) {
	return d.c.Sessions().List(ctx, d.filter)
}

func (d *Dated) FetchMacros(ctx context.Context) ([]record.MacroEntry, error) {
	return d.c.MacroLog().List(ctx, d.filter)
}

func (d *Dated) FetchStress(ctx context.Context) ([]record.StressEntry, error) {
	return d.c.StressLog().List(ctx, d.filter)
}

func (d *Dated) FetchBodyFeelings(ctx context.Context) ([]record.BodyFeeling, error) {
	return d.c.BodyFeelingLog().List(ctx, d.filter)
}

func (d *Dated) FetchWellnessSurveys(ctx context.Context) ([]record.WellnessSurvey, error) {
	return d.c.SurveyLog().List(ctx, d.filter)
}

func (d *Dated) FetchActivities(ctx context.Context) ([]record.PhysicalActivity, error) {
	return d.c.ActivityLog().List(ctx, d.filter)
}

// Sleep and hydration are not bucketed but the day view lists them.

func (d *Dated) FetchSleep(ctx context.Context) ([]record.SleepEntry, error) {
	return d.c.SleepLog().List(ctx, d.filter)
}

func (d *Dated) FetchHydration(ctx context.Context) ([]record.HydrationEntry, error) {
	return d.c.HydrationLog().List(ctx, d.filter)
}
