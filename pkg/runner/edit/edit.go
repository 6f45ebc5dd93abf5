// Package edit resolves where a record is edited. Workouts are edited here,
// through the session draft.
package edit

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/printers"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/session"
	"tableflip.dev/fitlog/pkg/store"
)

// SessionGetter fetches one workout. api.Resource[record.WorkoutSession]
// satisfies it.
type SessionGetter interface {
	Get(ctx context.Context, id string) (record.WorkoutSession, error)
}

// Edit prints the edit target of Kind/ID. For workouts with Drafts set, the
// session is fetched and loaded into the named draft.
type Edit struct {
	Sessions  SessionGetter
	Drafts    store.Persistence
	DraftName string
	Kind      detail.Kind
	ID        string
	JSON      bool
	Out       io.Writer
}

// Result is the JSON form of an edit.
type Result struct {
	Target detail.EditTarget `json:"target"`
	Draft  string            `json:"draft,omitempty"`
}

func (e *Edit) Do(ctx context.Context) error {
	target, err := detail.EditTargetFor(e.Kind, e.ID)
	if err != nil {
		return err
	}
	res := Result{Target: target}

	var loaded *session.Draft
	if e.Kind == detail.KindWorkout && e.Drafts != nil && e.Sessions != nil {
		s, err := e.Sessions.Get(ctx, e.ID)
		if err != nil {
			return fmt.Errorf("edit: fetch workout %s: %w", e.ID, err)
		}
		name := e.DraftName
		if name == "" {
			name = store.DefaultDraft
		}
		b := session.New()
		b.Edit(s)
		d := b.Draft()
		if err := e.Drafts.Store(name, d); err != nil {
			return err
		}
		res.Draft = name
		loaded = &d
	}

	if e.JSON {
		return printers.JSON(e.Out, res)
	}
	pp := printers.PrettyPrint{Out: e.Out}
	pp.EditTarget(target)
	if loaded != nil {
		pp.NewLine()
		pp.Draft(*loaded)
	}
	return nil
}
