package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/session"
	"tableflip.dev/fitlog/pkg/store"
)

// daysLoadedMsg carries one aggregation pass. gen ties it to the load that
// started it so late results can be dropped.
type daysLoadedMsg struct {
	gen       uint64
	start     string
	days      bucket.Days
	published bool
	err       error
}

type deletedMsg struct {
	item detail.Item
	days bucket.Days
	err  error
}

type draftLoadedMsg struct {
	draft session.Draft
	ok    bool
	err   error
}

type draftStoredMsg struct {
	name  string
	title string
	draft session.Draft
	err   error
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, drafts store.Persistence) tea.Cmd {
	if drafts == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := drafts.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}
