package detail

import (
	"context"
	"fmt"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/logging"
)

// Deleter removes records. *api.Client satisfies it.
type Deleter interface {
	Delete(ctx context.Context, col api.Collection, id string) error
}

// Reloader re-aggregates the shown range. *bucket.Refresher satisfies it.
type Reloader interface {
	Reload(ctx context.Context) (bucket.Days, error)
}

// Actions performs the panel's mutations.
type Actions struct {
	store   Deleter
	refresh Reloader
	log     logging.Logger
}

// NewActions wires the panel to a store and a refresher. refresh may be nil.
func NewActions(store Deleter, refresh Reloader, log logging.Logger) *Actions {
	if log == nil {
		log = logging.Nop()
	}
	return &Actions{store: store, refresh: refresh, log: log}
}

// RefreshError reports that a delete succeeded but re-aggregation did not.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("detail: deleted, but refresh failed: %v", e.Err)
}

func (e *RefreshError) Unwrap() error { return e.Err }

// Delete removes the record through its category endpoint and then
// re-aggregates. A failed delete does not refresh; the record stays shown
// until the next pass. A failed refresh keeps the previous days and is
// reported as *RefreshError.
func (a *Actions) Delete(ctx context.Context, k Kind, id string) (bucket.Days, error) {
	col, err := Endpoint(k)
	if err != nil {
		return nil, err
	}
	if err := a.store.Delete(ctx, col, id); err != nil {
		a.log.Errorf("delete %s %s: %v", k, id, err)
		return nil, fmt.Errorf("detail: delete %s %s: %w", k, id, err)
	}
	a.log.Infof("deleted %s %s", k, id)
	if a.refresh == nil {
		return nil, nil
	}
	days, err := a.refresh.Reload(ctx)
	if err != nil {
		return days, &RefreshError{Err: err}
	}
	return days, nil
}
