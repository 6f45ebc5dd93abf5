// Package exercises prints the exercise catalog, optionally narrowed to a
// split day.
package exercises

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/fitlog/pkg/printers"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/runner/compose"
	"tableflip.dev/fitlog/pkg/session"
)

// Exercises lists the catalog. Day narrows it by name, muscle group or type;
// with Split set, Day must be one of that split's days.
type Exercises struct {
	Catalog compose.Catalog
	Split   string
	Day     string
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

func (e *Exercises) Do(ctx context.Context) error {
	day := e.Day
	if e.Split != "" {
		splits, err := e.Catalog.FetchSplits(ctx)
		if err != nil {
			return fmt.Errorf("exercises: fetch splits: %w", err)
		}
		s, d, ok := session.SplitDay(splits, e.Split, e.Day)
		switch {
		case s.Name == "":
			return fmt.Errorf("exercises: no split %q", e.Split)
		case !ok && e.Day != "":
			return fmt.Errorf("exercises: split %s has no day %q (days: %v)", s.Name, e.Day, s.Days)
		}
		day = d
	}

	catalog, err := e.Catalog.FetchExercises(ctx)
	if err != nil {
		return fmt.Errorf("exercises: fetch catalog: %w", err)
	}
	list := session.FilterByDay(catalog, day)
	if list == nil {
		list = []record.Exercise{}
	}
	if e.JSON {
		return printers.JSON(e.Out, list)
	}
	pp := printers.PrettyPrint{Out: e.Out, ShowID: e.ShowID}
	pp.Exercises(list)
	return nil
}
