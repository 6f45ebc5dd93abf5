package bucket

import (
	"context"
	"sync"

	"tableflip.dev/fitlog/pkg/logging"
)

// Refresher owns the displayed Days. Passes may overlap; only a pass newer
// than the last published one replaces the map.
type Refresher struct {
	agg *Aggregator
	log logging.Logger

	mu        sync.Mutex
	next      uint64
	published uint64
	days      Days
	start     string
	end       string
}

// NewRefresher wraps agg.
func NewRefresher(agg *Aggregator, log logging.Logger) *Refresher {
	if log == nil {
		log = logging.Nop()
	}
	return &Refresher{agg: agg, log: log, days: Days{}}
}

// Begin reserves the next generation number.
func (r *Refresher) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// Publish installs days for [start, end] if gen is newer than what is shown.
// It reports whether the map was replaced.
func (r *Refresher) Publish(gen uint64, start, end string, days Days) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen <= r.published {
		r.log.Debugf("drop stale pass %d (showing %d)", gen, r.published)
		return false
	}
	r.published = gen
	r.days = days
	r.start, r.end = start, end
	return true
}

// Pass aggregates [start, end] under a generation from Begin and publishes
// the result unless a newer pass already did. It reports whether the result
// is now displayed.
func (r *Refresher) Pass(ctx context.Context, gen uint64, start, end string) (Days, bool, error) {
	days, err := r.agg.Aggregate(ctx, start, end)
	if err != nil {
		r.log.Errorf("refresh %s..%s failed, keeping previous calendar: %v", start, end, err)
		return nil, false, err
	}
	return days, r.Publish(gen, start, end, days), nil
}

// Refresh runs one pass over [start, end] and returns the displayed map. On
// failure the previous map stays and the error is returned.
func (r *Refresher) Refresh(ctx context.Context, start, end string) (Days, error) {
	if _, _, err := r.Pass(ctx, r.Begin(), start, end); err != nil {
		return r.Days(), err
	}
	return r.Days(), nil
}

// Reload refreshes the range that is currently shown.
func (r *Refresher) Reload(ctx context.Context) (Days, error) {
	start, end := r.Range()
	if start == "" {
		return r.Days(), nil
	}
	return r.Refresh(ctx, start, end)
}

// Days returns the published map.
func (r *Refresher) Days() Days {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.days
}

// Range returns the published range, empty before the first success.
func (r *Refresher) Range() (string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.start, r.end
}

// Generation returns the last published generation.
func (r *Refresher) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.published
}
