// Package tui is the interactive month browser: a calendar of logged days
// beside the drill-down of the selected date.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/session"
	"tableflip.dev/fitlog/pkg/store"
	"tableflip.dev/fitlog/pkg/tui/theme"
	"tableflip.dev/fitlog/pkg/ui/calendar"
)

type focus int

const (
	focusCalendar focus = iota
	focusDetail
)

// Options wires the browser to its data.
type Options struct {
	Refresher *bucket.Refresher
	// Actions performs deletes. Without it the browser is read-only.
	Actions *detail.Actions
	// Drafts is optional. When set, workouts can be loaded into the named
	// draft for editing and the footer follows that draft.
	Drafts    store.Persistence
	DraftName string
	Category  bucket.Category
	// Month is the month shown first; zero means the current one.
	Month    time.Time
	Now      func() time.Time
	Calendar *calendar.Options
	Log      logging.Logger
}

// Model is the Bubble Tea model for the month browser.
type Model struct {
	opts     Options
	ctx      context.Context
	log      logging.Logger
	keys     keyMap
	help     help.Model
	theme    theme.Theme
	calendar calendar.Options

	month      time.Time
	today      time.Time
	selected   string
	category   bucket.Category
	activeOnly bool
	focus      focus

	days    bucket.Days
	want    uint64
	loading bool
	state   *detail.State

	confirm *detail.Item
	status  string
	err     error

	draft *session.Draft

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	width  int
	height int
}

// New constructs the model. opts.Refresher is required.
func New(ctx context.Context, opts Options) *Model {
	if opts.Log == nil {
		opts.Log = logging.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DraftName == "" {
		opts.DraftName = store.DefaultDraft
	}
	if opts.Category == "" {
		opts.Category = bucket.CategoryAll
	}
	cal := calendar.DefaultOptions(true)
	if opts.Calendar != nil {
		cal = *opts.Calendar
	}
	cal.ShowTitle, cal.ShowHeader = true, true

	now := opts.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	month := calendar.FirstOf(today)
	selected := record.FormatDate(today)
	if !opts.Month.IsZero() {
		month = calendar.FirstOf(opts.Month)
		if !month.Equal(calendar.FirstOf(today)) {
			selected = record.FormatDate(month)
		}
	}

	return &Model{
		opts:     opts,
		ctx:      ctx,
		log:      opts.Log,
		keys:     defaultKeys(),
		help:     help.New(),
		theme:    theme.Default(),
		calendar: cal,
		month:    month,
		today:    today,
		selected: selected,
		category: opts.Category,
		days:     bucket.Days{},
		state:    detail.NewState(),
	}
}

// Run starts the browser on the alternate screen.
func Run(ctx context.Context, opts Options) error {
	if opts.Refresher == nil {
		return errors.New("tui: a refresher is required")
	}
	if opts.Calendar == nil {
		detected := calendar.DetectOptions()
		opts.Calendar = &detected
	}
	m := New(ctx, opts)
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.loadDraft(), startWatchCmd(m.ctx, m.opts.Drafts))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.state.SetViewHeight(m.listHeight())
	case daysLoadedMsg:
		cmds = append(cmds, m.handleLoaded(msg))
	case deletedMsg:
		cmds = append(cmds, m.handleDeleted(msg))
	case draftLoadedMsg:
		if msg.err != nil {
			m.log.Warnf("load draft %s: %v", m.opts.DraftName, msg.err)
			break
		}
		if !msg.ok {
			m.draft = nil
			break
		}
		d := msg.draft
		m.draft = &d
	case draftStoredMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = "could not load " + msg.title + " into a draft"
			break
		}
		d := msg.draft
		m.draft = &d
		m.err = nil
		m.status = fmt.Sprintf("loaded %s into draft %q", msg.title, msg.name)
	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warnf("draft watch: %v", msg.err)
			break
		}
		m.watchCh, m.watchCancel = msg.ch, msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if msg.event.Type == store.EventDraftsInvalidated || msg.event.Draft == m.opts.DraftName {
			cmds = append(cmds, m.loadDraft())
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case tea.KeyPressMsg:
		if m.handleKey(msg, &cmds) {
			m.stopWatch()
			return m, tea.Quit
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) load() tea.Cmd {
	r := m.opts.Refresher
	gen := r.Begin()
	m.want = gen
	m.loading = true
	start, end := calendar.MonthRange(m.month)
	ctx := m.ctx
	return func() tea.Msg {
		days, published, err := r.Pass(ctx, gen, start, end)
		return daysLoadedMsg{gen: gen, start: start, days: days, published: published, err: err}
	}
}

func (m *Model) handleLoaded(msg daysLoadedMsg) tea.Cmd {
	if msg.gen != m.want {
		m.log.Debugf("dropping calendar pass %d for %s, waiting on %d", msg.gen, msg.start, m.want)
		return nil
	}
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		m.status = "refresh failed, showing previous data"
		return nil
	}
	if !msg.published {
		// a reload after a delete overtook this pass
		return m.load()
	}
	m.err = nil
	m.days = msg.days
	m.syncPanel()
	return nil
}

func (m *Model) handleDeleted(msg deletedMsg) tea.Cmd {
	m.confirm = nil
	if msg.err != nil {
		var refresh *detail.RefreshError
		if errors.As(msg.err, &refresh) {
			m.err = refresh
			m.status = fmt.Sprintf("deleted %s, refresh failed", msg.item.Title)
			return nil
		}
		m.err = msg.err
		m.status = "delete failed"
		return nil
	}
	m.err = nil
	m.status = "deleted " + msg.item.Title
	start, _ := calendar.MonthRange(m.month)
	if shown, _ := m.opts.Refresher.Range(); msg.days != nil && shown == start {
		m.days = msg.days
		m.syncPanel()
		return nil
	}
	return m.load()
}

func (m *Model) loadDraft() tea.Cmd {
	drafts := m.opts.Drafts
	if drafts == nil {
		return nil
	}
	name := m.opts.DraftName
	return func() tea.Msg {
		d, ok, err := drafts.Load(name)
		return draftLoadedMsg{draft: d, ok: ok, err: err}
	}
}

func (m *Model) handleKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if m.confirm != nil {
		switch {
		case msg.String() == "ctrl+c":
			return true
		case key.Matches(msg, m.keys.Confirm):
			*cmds = append(*cmds, m.deleteCmd(*m.confirm))
			m.status = "deleting " + m.confirm.Title
		case key.Matches(msg, m.keys.Cancel):
			m.confirm = nil
			m.status = ""
		}
		return false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Refresh):
		m.status = "refreshing"
		*cmds = append(*cmds, m.load())
	case key.Matches(msg, m.keys.Category):
		m.cycleCategory()
	case key.Matches(msg, m.keys.ActiveOnly):
		m.activeOnly = !m.activeOnly
		m.snapToVisible()
	case key.Matches(msg, m.keys.Delete):
		m.askDelete()
	case key.Matches(msg, m.keys.Edit):
		*cmds = append(*cmds, m.edit())
	case key.Matches(msg, m.keys.PrevMonth):
		*cmds = append(*cmds, m.shiftMonth(-1))
	case key.Matches(msg, m.keys.NextMonth):
		*cmds = append(*cmds, m.shiftMonth(1))
	case key.Matches(msg, m.keys.Today):
		*cmds = append(*cmds, m.selectDate(record.FormatDate(m.today)))
	case m.focus == focusDetail:
		m.handleDetailKey(msg)
	default:
		*cmds = append(*cmds, m.handleCalendarKey(msg))
	}
	return false
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Focus):
		if !m.state.Panel().Empty() {
			m.focus = focusDetail
		}
	case key.Matches(msg, m.keys.PrevDay):
		return m.moveDay(-1)
	case key.Matches(msg, m.keys.NextDay):
		return m.moveDay(1)
	case key.Matches(msg, m.keys.PrevWeek):
		return m.moveDay(-7)
	case key.Matches(msg, m.keys.NextWeek):
		return m.moveDay(7)
	}
	return nil
}

func (m *Model) handleDetailKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Focus):
		m.focus = focusCalendar
	case key.Matches(msg, m.keys.PrevWeek):
		m.state.MoveItem(-1)
	case key.Matches(msg, m.keys.NextWeek):
		m.state.MoveItem(1)
	case key.Matches(msg, m.keys.PrevDay):
		m.state.MoveSection(-1)
	case key.Matches(msg, m.keys.NextDay):
		m.state.MoveSection(1)
	}
}

func (m *Model) grid() calendar.Grid {
	return calendar.Build(m.month, m.days, calendar.BuildOptions{
		Today:      m.today,
		Selected:   m.selected,
		Category:   m.category,
		ActiveOnly: m.activeOnly,
	})
}

func (m *Model) syncPanel() {
	m.state.SetPanel(detail.Build(m.days.Get(m.selected)))
	if m.state.Panel().Empty() {
		m.focus = focusCalendar
	}
}

// selectDate moves the cursor, loading the month when it changes.
func (m *Model) selectDate(date string) tea.Cmd {
	t, err := record.ParseDate(date)
	if err != nil {
		return nil
	}
	m.selected = date
	if first := calendar.FirstOf(t); !first.Equal(m.month) {
		m.month = first
		m.syncPanel()
		return m.load()
	}
	m.syncPanel()
	return nil
}

func (m *Model) moveDay(n int) tea.Cmd {
	if m.activeOnly {
		m.moveVisible(n)
		return nil
	}
	next, err := calendar.Shift(m.selected, n)
	if err != nil {
		return nil
	}
	return m.selectDate(next)
}

// moveVisible steps between shown dates when the active-only filter hides the
// rest. It never leaves the month.
func (m *Model) moveVisible(n int) {
	visible := m.grid().Visible()
	if n > 0 {
		for _, d := range visible {
			if d > m.selected {
				m.selected = d
				m.syncPanel()
				return
			}
		}
	} else {
		for i := len(visible) - 1; i >= 0; i-- {
			if visible[i] < m.selected {
				m.selected = visible[i]
				m.syncPanel()
				return
			}
		}
	}
	m.status = "no more logged days in " + calendar.Title(m.month)
}

// snapToVisible keeps the cursor on a shown date after the filter changes.
func (m *Model) snapToVisible() {
	if !m.activeOnly {
		return
	}
	visible := m.grid().Visible()
	if len(visible) == 0 {
		return
	}
	for _, d := range visible {
		if d == m.selected {
			return
		}
	}
	for _, d := range visible {
		if d > m.selected {
			m.selected = d
			m.syncPanel()
			return
		}
	}
	m.selected = visible[len(visible)-1]
	m.syncPanel()
}

func (m *Model) shiftMonth(n int) tea.Cmd {
	sel, err := record.ParseDate(m.selected)
	if err != nil {
		sel = m.month
	}
	month := calendar.FirstOf(m.month).AddDate(0, n, 0)
	day := min(sel.Day(), calendar.DaysIn(month))
	return m.selectDate(record.FormatDate(month.AddDate(0, 0, day-1)))
}

func (m *Model) cycleCategory() {
	order := append([]bucket.Category{bucket.CategoryAll}, bucket.IndicatorOrder...)
	next := order[0]
	for i, c := range order {
		if c == m.category {
			next = order[(i+1)%len(order)]
			break
		}
	}
	m.category = next
	m.snapToVisible()
}

func (m *Model) askDelete() {
	if m.opts.Actions == nil {
		m.status = "read-only: deletes are disabled"
		return
	}
	item, ok := m.state.Selected()
	if !ok {
		m.status = "nothing logged on " + m.selected
		return
	}
	m.confirm = &item
	m.status = ""
}

func (m *Model) deleteCmd(item detail.Item) tea.Cmd {
	actions, ctx := m.opts.Actions, m.ctx
	return func() tea.Msg {
		days, err := actions.Delete(ctx, item.Kind, item.ID)
		return deletedMsg{item: item, days: days, err: err}
	}
}

// edit reports where the selected record is edited. Workouts are also loaded
// into the draft when drafts are wired.
func (m *Model) edit() tea.Cmd {
	item, ok := m.state.Selected()
	if !ok {
		m.status = "nothing logged on " + m.selected
		return nil
	}
	target, err := item.Edit()
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	m.status = "edit " + item.Title + " at " + target.String()
	if item.Kind != detail.KindWorkout || item.Session == nil || m.opts.Drafts == nil {
		return nil
	}
	drafts, name, s := m.opts.Drafts, m.opts.DraftName, *item.Session
	return func() tea.Msg {
		b := session.New()
		b.Edit(s)
		d := b.Draft()
		return draftStoredMsg{name: name, title: item.Title, draft: d, err: drafts.Store(name, d)}
	}
}
