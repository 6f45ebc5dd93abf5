package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/session"
	"tableflip.dev/fitlog/pkg/ui/calendar"
)

const (
	previewRows   = 6
	minDetailCols = 32
)

// View implements tea.Model.
func (m *Model) View() string {
	calFrame, detailFrame := m.theme.Panel.Frame, m.theme.Panel.Frame
	if m.focus == focusDetail {
		detailFrame = m.theme.Panel.Focused
	} else {
		calFrame = m.theme.Panel.Focused
	}

	left := calFrame.Render(lipgloss.JoinVertical(lipgloss.Left,
		calendar.Render(m.grid(), m.calendar),
		"",
		m.theme.Footer.Status.Render(m.filterLine()),
	))

	width := minDetailCols
	if m.width > 0 {
		width = max(m.width-lipgloss.Width(left)-5, minDetailCols)
	}
	right := detailFrame.Render(m.renderDetail(width))

	parts := []string{lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)}
	if m.confirm != nil {
		parts = append(parts, m.renderConfirm())
	}
	parts = append(parts, m.renderFooter()...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) filterLine() string {
	parts := []string{"category: " + categoryLabel(m.category)}
	if m.activeOnly {
		parts = append(parts, "active only")
	}
	if m.loading {
		parts = append(parts, "loading…")
	}
	return strings.Join(parts, " · ")
}

// listHeight is the number of list rows the detail panel can show.
func (m *Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	// frame, heading, summary, preview and footer
	return max(m.height-2-3-previewRows-3, 3)
}

func (m *Model) renderDetail(width int) string {
	t := m.theme.Detail
	lines := []string{m.theme.Panel.Title.Render(heading(m.selected))}

	panel := m.state.Panel()
	if panel.Empty() {
		lines = append(lines, t.Summary.Render(panel.Summary))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, t.Summary.Render(panel.Summary), "")

	var rows []string
	si, ii := m.state.Cursor()
	for s, sec := range panel.Sections {
		rows = append(rows, t.Section.Render(fmt.Sprintf("%s (%d)", sec.Title, len(sec.Items))))
		for i, it := range sec.Items {
			row := "  " + it.Title
			if s == si && i == ii {
				if m.focus == focusDetail {
					row = t.Selected.Render("> " + it.Title)
				} else {
					row = "> " + it.Title
				}
			}
			rows = append(rows, t.Item.Render(row))
		}
	}
	if h := m.listHeight(); h > 0 {
		off := min(m.state.ScrollOffset(), len(rows))
		rows = rows[off:min(off+h, len(rows))]
	}
	lines = append(lines, rows...)

	if item, ok := m.state.Selected(); ok && len(item.Lines) > 0 {
		lines = append(lines, "")
		var preview []string
		for _, l := range item.Lines {
			preview = append(preview, strings.Split(wordwrap.String(l, width-2), "\n")...)
		}
		if len(preview) > previewRows {
			preview = append(preview[:previewRows-1], "…")
		}
		for _, l := range preview {
			lines = append(lines, t.Line.Render(l))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func heading(date string) string {
	t, err := record.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2 2006")
}

func (m *Model) renderConfirm() string {
	t := m.theme.Modal
	body := fmt.Sprintf("Delete %s %s on %s?", m.confirm.Kind, m.confirm.Title, m.selected)
	return t.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render("Confirm delete"),
		t.Body.Render(body),
		"",
		m.help.View(confirmKeys{m.keys}),
	))
}

func (m *Model) renderFooter() []string {
	var out []string
	switch {
	case m.err != nil:
		msg := m.err.Error()
		if m.status != "" {
			msg = m.status + ": " + msg
		}
		out = append(out, m.theme.Footer.Error.Render(msg))
	case m.status != "":
		out = append(out, m.theme.Footer.Status.Render(m.status))
	}
	if m.draft != nil {
		out = append(out, m.theme.Footer.Draft.Render(draftLine(m.opts.DraftName, *m.draft)))
	}
	if m.confirm == nil {
		out = append(out, m.help.View(m.keys))
	}
	return out
}

func draftLine(name string, d session.Draft) string {
	title := d.Session.Title()
	n := len(d.Session.Exercises)
	line := fmt.Sprintf("draft %s: %s, %d %s", name, title, n, pluralize(n, "exercise", "exercises"))
	if d.EditID != "" {
		line += " (editing " + d.EditID + ")"
	}
	if d.Exercise.Name != "" {
		line += ", building " + d.Exercise.Name
	}
	return line
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func categoryLabel(c bucket.Category) string {
	if c == "" {
		return string(bucket.CategoryAll)
	}
	return string(c)
}
