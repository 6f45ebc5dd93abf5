package printers

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/record"
)

// Day prints the drill-down for one date.
func (pp *PrettyPrint) Day(p detail.Panel) {
	pp.Title(p.Date)
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), p.Summary)
	pp.NewLine()
	if p.Empty() {
		return
	}

	t := color.New()
	h := color.New(color.Bold)
	for _, s := range p.Sections {
		c := dotColors[s.Category]
		_, _ = c.Fprint(pp.out(), "● ")
		_, _ = h.Fprintln(pp.out(), s.Title)
		for _, it := range s.Items {
			pp.id(it.ID)
			_, _ = t.Fprintln(pp.out(), it.Title)
			for _, line := range it.Lines {
				pp.wrapped(f, pp.indent(), line)
			}
		}
		pp.NewLine()
	}
}

// DayExtras prints the sleep and hydration logs of a day. Nothing is
// printed when both are empty.
func (pp *PrettyPrint) DayExtras(sleep []record.SleepEntry, water []record.HydrationEntry) {
	f := color.New(color.Faint, color.Italic)
	h := color.New(color.Bold)
	if len(sleep) > 0 {
		_, _ = h.Fprintln(pp.out(), "Sleep")
		for _, e := range sleep {
			pp.id(e.ID)
			line := strconv.FormatFloat(e.HoursSlept, 'f', -1, 64) + "h slept"
			if e.Quality != nil {
				line += fmt.Sprintf(", quality %d/10", *e.Quality)
			}
			_, _ = fmt.Fprintln(pp.out(), line)
			if e.Notes != "" {
				pp.wrapped(f, pp.indent(), e.Notes)
			}
		}
		pp.NewLine()
	}
	if len(water) > 0 {
		_, _ = h.Fprintln(pp.out(), "Hydration")
		total := 0.0
		for _, e := range water {
			pp.id(e.ID)
			_, _ = fmt.Fprintf(pp.out(), "%s ml\n", strconv.FormatFloat(e.AmountML, 'f', -1, 64))
			total += e.AmountML
		}
		if len(water) > 1 {
			_, _ = f.Fprintf(pp.out(), "%s%s ml total\n", pp.indent(), strconv.FormatFloat(total, 'f', -1, 64))
		}
		pp.NewLine()
	}
}

func (pp *PrettyPrint) indent() string {
	if pp.ShowID {
		return spacing + "    "
	}
	return "    "
}

// EditTarget prints where a record is edited.
func (pp *PrettyPrint) EditTarget(t detail.EditTarget) {
	b := color.New(color.Bold)
	_, _ = b.Fprintln(pp.out(), t.String())
}

// Deleted confirms a delete.
func (pp *PrettyPrint) Deleted(kind, id string) {
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(pp.out(), "Deleted %s %s.\n", kind, id)
}
