// Package compose drives the workout-session draft across CLI invocations.
// Every operation loads the stored draft, applies one change, stores it and
// prints the result.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/printers"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/session"
	"tableflip.dev/fitlog/pkg/store"
)

var (
	ErrNoDraft     = errors.New("compose: no draft, start one with `fitlog session new`")
	ErrInvalidSet  = errors.New("compose: reps must be a positive whole number and weight a number")
	ErrNoExercises = errors.New("compose: add at least one exercise before saving")
)

// Catalog lists exercises and splits. *api.Client satisfies it.
type Catalog interface {
	FetchExercises(ctx context.Context) ([]record.Exercise, error)
	FetchSplits(ctx context.Context) ([]record.Split, error)
}

// Lister lists saved sessions. api.Resource[record.WorkoutSession] satisfies
// it.
type Lister interface {
	List(ctx context.Context, filter api.DateFilter) ([]record.WorkoutSession, error)
}

// Fields are the draft-level values `session set` changes. Nil leaves a
// value alone.
type Fields struct {
	Date     *string
	Name     *string
	Notes    *string
	Split    *string
	Exercise *string
	Reps     *string
	Weight   *string
}

// Composer edits the draft called Name.
type Composer struct {
	Drafts  store.Persistence
	Name    string
	Saver   session.Saver
	Catalog Catalog
	History Lister
	Now     func() time.Time
	JSON    bool
	Out     io.Writer
	Log     logging.Logger
}

func (c *Composer) name() string {
	if c.Name == "" {
		return store.DefaultDraft
	}
	return c.Name
}

func (c *Composer) log() logging.Logger {
	if c.Log == nil {
		c.Log = logging.Nop()
	}
	return c.Log
}

func (c *Composer) options() []session.Option {
	if c.Now == nil {
		return nil
	}
	return []session.Option{session.WithClock(c.Now)}
}

// load restores the stored draft, or starts a new one when there is none.
func (c *Composer) load() (*session.Builder, bool, error) {
	d, ok, err := c.Drafts.Load(c.name())
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return session.New(c.options()...), false, nil
	}
	return session.Restore(d, c.options()...), true, nil
}

// mutate applies fn and stores the draft only when fn succeeds.
func (c *Composer) mutate(fn func(b *session.Builder) error) error {
	b, _, err := c.load()
	if err != nil {
		return err
	}
	if err := fn(b); err != nil {
		return err
	}
	if err := c.Drafts.Store(c.name(), b.Draft()); err != nil {
		return err
	}
	return c.print(b.Draft())
}

func (c *Composer) print(d session.Draft) error {
	if c.JSON {
		return printers.JSON(c.Out, d)
	}
	pp := printers.PrettyPrint{Out: c.Out}
	pp.Draft(d)
	return nil
}

// New discards the draft, leaving edit mode, and starts one dated date (or
// today when empty).
func (c *Composer) New(_ context.Context, date string) error {
	return c.mutate(func(b *session.Builder) error {
		b.Reset()
		if date == "" {
			return nil
		}
		return b.SetDate(date)
	})
}

// Show prints the stored draft.
func (c *Composer) Show(_ context.Context) error {
	b, ok, err := c.load()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoDraft
	}
	return c.print(b.Draft())
}

// Set changes draft-level fields and the exercise being built.
func (c *Composer) Set(ctx context.Context, f Fields) error {
	var exercises []record.Exercise
	if f.Exercise != nil && c.Catalog != nil {
		var err error
		if exercises, err = c.Catalog.FetchExercises(ctx); err != nil {
			c.log().Warnf("exercise catalog unavailable, %q will be matched on commit: %v", *f.Exercise, err)
		}
	}
	var split record.Split
	if f.Split != nil && *f.Split != "" {
		found, err := c.findSplit(ctx, *f.Split)
		if err != nil {
			return err
		}
		split = found
	}

	return c.mutate(func(b *session.Builder) error {
		if f.Date != nil {
			if err := b.SetDate(*f.Date); err != nil {
				return fmt.Errorf("compose: %w", err)
			}
		}
		if f.Name != nil {
			b.SetWorkoutName(*f.Name)
		}
		if f.Notes != nil {
			b.SetNotes(*f.Notes)
		}
		if f.Split != nil {
			b.SetSplit(split.ID, split.Name)
		}
		if f.Exercise != nil {
			b.SetExerciseName(*f.Exercise)
			if ex, ok := session.Resolve(exercises, *f.Exercise); ok {
				b.SelectExercise(ex)
			}
		}
		if f.Reps != nil || f.Weight != nil {
			cur := b.Draft().Exercise
			reps, weight := cur.CurrentReps, cur.CurrentWeight
			if f.Reps != nil {
				reps = *f.Reps
			}
			if f.Weight != nil {
				weight = *f.Weight
			}
			b.SetCurrent(reps, weight)
		}
		return nil
	})
}

func (c *Composer) findSplit(ctx context.Context, want string) (record.Split, error) {
	if c.Catalog == nil {
		return record.Split{}, errors.New("compose: splits are unavailable")
	}
	splits, err := c.Catalog.FetchSplits(ctx)
	if err != nil {
		return record.Split{}, fmt.Errorf("compose: fetch splits: %w", err)
	}
	for _, s := range splits {
		if s.ID == want || strings.EqualFold(s.Name, want) {
			return s, nil
		}
	}
	return record.Split{}, fmt.Errorf("compose: no split %q", want)
}

// AddSet appends a set to the exercise being built. Empty reps use the
// current values from `session set --reps/--weight`.
func (c *Composer) AddSet(_ context.Context, reps, weight string) error {
	return c.mutate(func(b *session.Builder) error {
		var ok bool
		if reps == "" {
			ok = b.AddCurrentSet()
		} else {
			ok = b.AddSet(reps, weight)
		}
		if !ok {
			return ErrInvalidSet
		}
		return nil
	})
}

// UpdateSet replaces set i of the exercise being built.
func (c *Composer) UpdateSet(_ context.Context, i int, reps, weight string) error {
	return c.mutate(func(b *session.Builder) error {
		if !b.UpdateSet(i, reps, weight) {
			return fmt.Errorf("compose: cannot update set %d: %w", i, ErrInvalidSet)
		}
		return nil
	})
}

// RemoveSet drops set i of the exercise being built.
func (c *Composer) RemoveSet(_ context.Context, i int) error {
	return c.mutate(func(b *session.Builder) error {
		if !b.RemoveSet(i) {
			return fmt.Errorf("compose: no set %d", i)
		}
		return nil
	})
}

// Commit moves the exercise being built into the session, matching its name
// against the catalog.
func (c *Composer) Commit(ctx context.Context) error {
	var catalog []record.Exercise
	if c.Catalog != nil {
		var err error
		if catalog, err = c.Catalog.FetchExercises(ctx); err != nil {
			return fmt.Errorf("compose: fetch exercises: %w", err)
		}
	}
	return c.mutate(func(b *session.Builder) error {
		if !b.CommitExercise(catalog) {
			return errors.New("compose: the exercise needs a name and at least one set")
		}
		return nil
	})
}

// RemoveExercise drops committed exercise i.
func (c *Composer) RemoveExercise(_ context.Context, i int) error {
	return c.mutate(func(b *session.Builder) error {
		if !b.RemoveExercise(i) {
			return fmt.Errorf("compose: no exercise %d", i)
		}
		return nil
	})
}

// Save creates the session, or updates the one being edited. A created
// session clears the draft; an edited one keeps it until `session new`.
func (c *Composer) Save(ctx context.Context) error {
	b, ok, err := c.load()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoDraft
	}
	if !b.CanSave() {
		return ErrNoExercises
	}
	editing := b.Editing()
	saved, err := b.Save(ctx, c.Saver)
	if err != nil {
		c.log().Errorf("save draft %s: %v", c.name(), err)
		return err
	}
	if editing {
		err = c.Drafts.Store(c.name(), b.Draft())
	} else {
		err = c.Drafts.Delete(c.name())
	}
	if err != nil {
		return err
	}
	c.log().Infof("saved workout %s", saved.ID)

	if c.JSON {
		return printers.JSON(c.Out, saved)
	}
	pp := printers.PrettyPrint{Out: c.Out}
	pp.Sessions([]record.WorkoutSession{saved})
	return nil
}

// Discard deletes the stored draft.
func (c *Composer) Discard(_ context.Context) error {
	if err := c.Drafts.Delete(c.name()); err != nil {
		return err
	}
	if c.JSON {
		return printers.JSON(c.Out, map[string]string{"discarded": c.name()})
	}
	pp := printers.PrettyPrint{Out: c.Out}
	pp.None("discarded draft " + c.name())
	return nil
}

// List prints every stored draft.
func (c *Composer) List(ctx context.Context) error {
	list := c.Drafts.List(ctx)
	if c.JSON {
		if list == nil {
			list = []store.Saved{}
		}
		return printers.JSON(c.Out, list)
	}
	pp := printers.PrettyPrint{Out: c.Out}
	pp.Drafts(list)
	return nil
}

// Sessions prints saved sessions, optionally only those on date.
func (c *Composer) Sessions(ctx context.Context, date string) error {
	if c.History == nil {
		return errors.New("compose: session history is unavailable")
	}
	list, err := c.History.List(ctx, api.DateFilter(date))
	if err != nil {
		return err
	}
	if c.JSON {
		return printers.JSON(c.Out, list)
	}
	pp := printers.PrettyPrint{Out: c.Out}
	pp.Sessions(list)
	return nil
}
