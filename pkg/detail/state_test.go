package detail

import "testing"

func TestStateMoveAcrossSections(t *testing.T) {
	s := NewState()
	s.SetPanel(Build(sampleDay()))

	if it, ok := s.Selected(); !ok || it.ID != "w1" {
		t.Fatalf("expected first item selected, got %+v", it)
	}
	s.MoveItem(1)
	if it, _ := s.Selected(); it.ID != "m1" {
		t.Fatalf("expected to cross into nutrition, got %s", it.ID)
	}
	s.MoveItem(2)
	if it, _ := s.Selected(); it.ID != "s1" {
		t.Fatalf("crossing a section lands on its first item, got %s", it.ID)
	}
	s.MoveItem(5)
	if it, _ := s.Selected(); it.ID != "q1" {
		t.Fatalf("cursor must stop at the last item, got %s", it.ID)
	}
	for i := 0; i < 5; i++ {
		s.MoveItem(-1)
	}
	if sec, item := s.Cursor(); sec != 0 || item != 0 {
		t.Fatalf("cursor must stop at the top, got %d/%d", sec, item)
	}
	s.MoveSection(2)
	if it, _ := s.Selected(); it.ID != "s1" {
		t.Fatalf("expected first wellness item, got %s", it.ID)
	}
}

func TestStateKeepsSelectionOnReload(t *testing.T) {
	s := NewState()
	s.SetPanel(Build(sampleDay()))
	s.SetActive(KindSurvey, "q1")

	day := sampleDay()
	day.Logs.Wellness = day.Logs.Wellness[1:]
	s.SetPanel(Build(day))
	if it, _ := s.Selected(); it.ID != "q1" {
		t.Fatalf("expected q1 kept, got %s", it.ID)
	}

	day.Logs.Wellness = nil
	s.SetPanel(Build(day))
	if _, ok := s.Selected(); !ok {
		t.Fatalf("expected a fallback selection")
	}
}

func TestStateScroll(t *testing.T) {
	s := NewState()
	s.SetViewHeight(2)
	s.SetPanel(Build(sampleDay()))
	s.MoveSection(2)
	s.MoveItem(1)
	// rows: Workouts, w1, Nutrition, m1, Wellness, s1, q1
	if s.CursorRow() != 6 {
		t.Fatalf("unexpected cursor row %d", s.CursorRow())
	}
	if s.ScrollOffset() != 5 {
		t.Fatalf("expected scroll offset 5, got %d", s.ScrollOffset())
	}
}

func TestStateEmpty(t *testing.T) {
	s := NewState()
	s.SetPanel(Panel{})
	if _, ok := s.Selected(); ok || s.MoveItem(1) || s.MoveSection(1) {
		t.Fatalf("empty state must not move")
	}
}
