package calendar

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/fitlog/pkg/bucket"
)

const (
	dotGlyph  = "●"
	cellWidth = 2 + 1 + MaxDots
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Hex colours of the indicator dots.
var dotHex = map[bucket.Category]string{
	bucket.CategoryWorkouts:  "#8B5CF6",
	bucket.CategoryNutrition: "#10B981",
	bucket.CategoryWellness:  "#6366F1",
	bucket.CategoryActivity:  "#F59E0B",
}

// Options controls the styling of the rendered calendar.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	Dots          map[bucket.Category]lipgloss.Style
	// MutedDots draw indicators outside the grid's category filter.
	MutedDots  map[bucket.Category]lipgloss.Style
	ShowTitle  bool
	ShowHeader bool
}

// DefaultOptions returns the styling for a dark or light terminal.
func DefaultOptions(dark bool) Options {
	bg := "#FFFFFF"
	fg := lipgloss.Color("0")
	if dark {
		bg = "#1A1F3A"
		fg = lipgloss.Color("15")
	}
	dots := make(map[bucket.Category]lipgloss.Style, len(dotHex))
	muted := make(map[bucket.Category]lipgloss.Style, len(dotHex))
	for c, hex := range dotHex {
		dots[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		muted[c] = lipgloss.NewStyle().Foreground(Dim(hex, bg, 0.65))
	}
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		EntryStyle:    lipgloss.NewStyle().Foreground(fg),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("#6366F1")).Foreground(lipgloss.Color("15")),
		Dots:          dots,
		MutedDots:     muted,
		ShowTitle:     true,
		ShowHeader:    true,
	}
}

// DetectOptions picks DefaultOptions for the terminal's background.
func DetectOptions() Options {
	return DefaultOptions(termenv.HasDarkBackground())
}

// Dim blends hex toward bg by t in Lab space. Invalid input is returned as is.
func Dim(hex, bg string, t float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(c.BlendLab(b, t).Clamped().Hex())
}

// Render produces a multi-line calendar string for g.
func Render(g Grid, opts Options) string {
	if g.Month.IsZero() {
		return ""
	}

	var lines []string
	if opts.ShowTitle {
		lines = append(lines, opts.TitleStyle.Render(Title(g.Month)))
	}
	if opts.ShowHeader {
		labels := make([]string, len(weekdays))
		for i, w := range weekdays {
			labels[i] = pad(opts.HeaderStyle.Render(w), 2)
		}
		lines = append(lines, strings.TrimRight(strings.Join(labels, " "), " "))
	}

	for _, week := range g.Weeks() {
		cells := make([]string, len(week))
		for i, c := range week {
			cells[i] = renderCell(c, g.Category, opts)
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, category bucket.Category, opts Options) string {
	if c.Blank || c.Hidden {
		return strings.Repeat(" ", cellWidth)
	}

	style := opts.EmptyStyle
	if len(c.Dots) > 0 {
		style = opts.EntryStyle
	}
	if c.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.Selected {
		style = style.Inherit(opts.SelectedStyle)
	}

	var dots strings.Builder
	for _, d := range c.Dots {
		ds := opts.Dots[d]
		if category != bucket.CategoryAll && d != category {
			if muted, ok := opts.MutedDots[d]; ok {
				ds = muted
			}
		}
		dots.WriteString(ds.Render(dotGlyph))
	}
	dots.WriteString(strings.Repeat(" ", MaxDots-len(c.Dots)))

	return style.Render(fmt.Sprintf("%2d", c.Day)) + " " + dots.String()
}

// pad right-pads s to the cell width; s may contain escape codes.
func pad(s string, visible int) string {
	if visible >= cellWidth {
		return s
	}
	return s + strings.Repeat(" ", cellWidth-visible)
}
