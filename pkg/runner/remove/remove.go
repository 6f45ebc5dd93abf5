// Package remove deletes one record and re-aggregates the month it was in.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/printers"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/ui/calendar"
)

// Remove deletes Kind/ID. When On is set, the month containing On is
// re-aggregated afterwards and the day is printed again.
type Remove struct {
	Store  detail.Deleter
	Source bucket.Source
	Kind   detail.Kind
	ID     string
	On     string
	JSON   bool
	Out    io.Writer
	Log    logging.Logger
}

// Result is the JSON form of a delete.
type Result struct {
	Kind    detail.Kind   `json:"kind"`
	ID      string        `json:"id"`
	Deleted bool          `json:"deleted"`
	Day     *detail.Panel `json:"day,omitempty"`
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Log == nil {
		r.Log = logging.Nop()
	}
	var refresher *bucket.Refresher
	if r.On != "" {
		on, err := record.ParseDate(r.On)
		if err != nil {
			return fmt.Errorf("delete: --on: %w", err)
		}
		refresher = bucket.NewRefresher(bucket.NewAggregator(r.Source, r.Log), r.Log)
		start, end := calendar.MonthRange(on)
		// the range is known up front; Reload fills it after the delete
		refresher.Publish(refresher.Begin(), start, end, bucket.Days{})
	}

	var reload detail.Reloader
	if refresher != nil {
		reload = refresher
	}
	days, err := detail.NewActions(r.Store, reload, r.Log).Delete(ctx, r.Kind, r.ID)
	var refreshErr *detail.RefreshError
	switch {
	case err == nil:
	case errors.As(err, &refreshErr):
		r.Log.Warnf("%v", err)
	default:
		return err
	}

	res := Result{Kind: r.Kind, ID: r.ID, Deleted: true}
	if refresher != nil && refreshErr == nil {
		panel := detail.Build(days.Get(r.On))
		res.Day = &panel
	}
	if r.JSON {
		return printers.JSON(r.Out, res)
	}

	pp := printers.PrettyPrint{Out: r.Out}
	pp.Deleted(string(r.Kind), r.ID)
	if res.Day != nil {
		pp.NewLine()
		pp.Day(*res.Day)
	}
	return nil
}
