// Package day prints the detail panel for one date.
package day

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/printers"
	"tableflip.dev/fitlog/pkg/record"
)

// Extras fetches the logs the calendar does not bucket.
type Extras interface {
	FetchSleep(ctx context.Context) ([]record.SleepEntry, error)
	FetchHydration(ctx context.Context) ([]record.HydrationEntry, error)
}

// Day buckets the records of Date and prints them by category.
type Day struct {
	// Source is usually narrowed to Date already, see api.Client.OnDate.
	Source bucket.Source
	// Extras adds sleep and hydration below the panel. Optional.
	Extras Extras
	Date   string
	ShowID bool
	JSON   bool
	Out    io.Writer
	Log    logging.Logger
}

func (d *Day) Do(ctx context.Context) error {
	if _, err := record.ParseDate(d.Date); err != nil {
		return fmt.Errorf("day: %w", err)
	}
	days, err := bucket.NewAggregator(d.Source, d.Log).Aggregate(ctx, d.Date, d.Date)
	if err != nil {
		return fmt.Errorf("day: %s: %w", d.Date, err)
	}
	out := view{Panel: detail.Build(days.Get(d.Date))}
	if d.Extras != nil {
		if out.Sleep, out.Hydration, err = d.extras(ctx); err != nil {
			return fmt.Errorf("day: %s: %w", d.Date, err)
		}
	}
	if d.JSON {
		return printers.JSON(d.Out, out)
	}
	pp := printers.PrettyPrint{Out: d.Out, ShowID: d.ShowID}
	pp.Day(out.Panel)
	pp.DayExtras(out.Sleep, out.Hydration)
	return nil
}

type view struct {
	detail.Panel
	Sleep     []record.SleepEntry     `json:"sleep,omitempty"`
	Hydration []record.HydrationEntry `json:"hydration,omitempty"`
}

// extras keeps only records of Date, so an unfiltered source works too.
func (d *Day) extras(ctx context.Context) ([]record.SleepEntry, []record.HydrationEntry, error) {
	sleep, err := d.Extras.FetchSleep(ctx)
	if err != nil {
		return nil, nil, err
	}
	water, err := d.Extras.FetchHydration(ctx)
	if err != nil {
		return nil, nil, err
	}
	var s []record.SleepEntry
	for _, e := range sleep {
		if e.Date == d.Date {
			s = append(s, e)
		}
	}
	var h []record.HydrationEntry
	for _, e := range water {
		if e.Date == d.Date {
			h = append(h, e)
		}
	}
	return s, h, nil
}
