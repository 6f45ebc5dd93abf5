package bucket

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/fitlog/pkg/record"
)

func TestRefresherDropsStalePass(t *testing.T) {
	r := NewRefresher(NewAggregator(marchSource(), nil), nil)

	older := r.Begin()
	newer := r.Begin()

	april := Days{"2024-04-02": {Date: "2024-04-02"}}
	march := Days{"2024-03-02": {Date: "2024-03-02"}}

	if !r.Publish(newer, "2024-04-01", "2024-04-30", april) {
		t.Fatalf("newer pass must publish")
	}
	if r.Publish(older, "2024-03-01", "2024-03-31", march) {
		t.Fatalf("older pass must not publish after a newer one")
	}
	if _, ok := r.Days()["2024-04-02"]; !ok {
		t.Fatalf("expected April to stay displayed")
	}
	if start, _ := r.Range(); start != "2024-04-01" {
		t.Fatalf("unexpected range start %s", start)
	}
	if r.Generation() != newer {
		t.Fatalf("expected generation %d, got %d", newer, r.Generation())
	}
}

func TestRefresherKeepsMapOnFailure(t *testing.T) {
	src := marchSource()
	r := NewRefresher(NewAggregator(src, nil), nil)
	if _, err := r.Refresh(context.Background(), "2024-03-01", "2024-03-31"); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	before := r.Days()

	src.failStress = errors.New("offline")
	src.sessions = append(src.sessions, record.WorkoutSession{ID: "w2", Date: "2024-03-20"})
	days, err := r.Refresh(context.Background(), "2024-03-01", "2024-03-31")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(days) != len(before) {
		t.Fatalf("expected previous map, got %d days want %d", len(days), len(before))
	}
	if _, ok := r.Days()["2024-03-20"]; ok {
		t.Fatalf("failed pass leaked into the displayed map")
	}
}

func TestReloadUsesPublishedRange(t *testing.T) {
	src := marchSource()
	r := NewRefresher(NewAggregator(src, nil), nil)
	if _, err := r.Reload(context.Background()); err != nil {
		t.Fatalf("reload before first pass: %v", err)
	}
	if src.calls != 0 {
		t.Fatalf("reload without a range must not fetch")
	}
	if _, err := r.Refresh(context.Background(), "2024-03-01", "2024-03-31"); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	src.sessions = nil
	days, err := r.Reload(context.Background())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if days.HasLogs("2024-03-15", CategoryWorkouts) {
		t.Fatalf("reload must pick up the deleted session")
	}
}

func TestPassReportsStale(t *testing.T) {
	r := NewRefresher(NewAggregator(marchSource(), nil), nil)
	older := r.Begin()
	newer := r.Begin()

	if _, published, err := r.Pass(context.Background(), newer, "2024-04-01", "2024-04-30"); err != nil || !published {
		t.Fatalf("newer pass: published=%v err=%v", published, err)
	}
	days, published, err := r.Pass(context.Background(), older, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("older pass: %v", err)
	}
	if published {
		t.Fatalf("older pass must not publish")
	}
	if len(days) == 0 {
		t.Fatalf("stale pass still returns what it computed")
	}
	if start, _ := r.Range(); start != "2024-04-01" {
		t.Fatalf("expected April range kept, got %s", start)
	}
}
