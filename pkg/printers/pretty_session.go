package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/session"
	"tableflip.dev/fitlog/pkg/store"
)

// Draft prints the in-progress session, committed exercises first.
func (pp *PrettyPrint) Draft(d session.Draft) {
	title := d.Session.Title()
	if d.EditID != "" {
		title += " (editing " + d.EditID + ")"
	}
	pp.Title(title)
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "%s", d.Session.Date)
	if d.Session.SplitName != "" {
		_, _ = f.Fprintf(pp.out(), "  split: %s", d.Session.SplitName)
	}
	pp.NewLine()
	pp.NewLine()

	if len(d.Session.Exercises) == 0 {
		pp.None("no exercises yet")
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 60
		tbl.Wrap = true
		b := color.New(color.Bold)
		tbl.AddRow(b.Sprint("#"), b.Sprint("Exercise"), b.Sprint("Sets"))
		for i := range d.Session.Exercises {
			ex := &d.Session.Exercises[i]
			name := ex.ExerciseName
			if ex.IsCustom {
				name += " *"
			}
			tbl.AddRow(i, name, setsText(ex.DetailedSets()))
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
	}

	cur := d.Exercise
	if cur.Name != "" || len(cur.Sets) > 0 {
		h := color.New(color.Italic)
		name := cur.Name
		if name == "" {
			name = "(unnamed)"
		}
		_, _ = h.Fprintf(pp.out(), "building: %s\n", name)
		for i, s := range cur.Sets {
			_, _ = fmt.Fprintf(pp.out(), "  [%d] set %d: %s\n", i, s.SetNumber, detail.SetText(s))
		}
		pp.NewLine()
	}
	if d.Session.Notes != "" {
		pp.wrapped(f, "", d.Session.Notes)
	}
}

func setsText(sets []record.WorkoutSet) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = detail.SetText(s)
	}
	return strings.Join(parts, ", ")
}

// Exercises prints the catalog as a table.
func (pp *PrettyPrint) Exercises(list []record.Exercise) {
	if len(list) == 0 {
		pp.None("no exercises")
		return
	}
	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.Wrap = true
	if pp.ShowID {
		tbl.AddRow(b.Sprint("ID"), b.Sprint("Name"), b.Sprint("Type"), b.Sprint("Muscle group"))
	} else {
		tbl.AddRow(b.Sprint("Name"), b.Sprint("Type"), b.Sprint("Muscle group"))
	}
	for _, ex := range list {
		if pp.ShowID {
			tbl.AddRow(ex.ID, ex.Name, ex.Type, ex.MuscleGroup)
		} else {
			tbl.AddRow(ex.Name, ex.Type, ex.MuscleGroup)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Drafts prints the stored drafts.
func (pp *PrettyPrint) Drafts(list []store.Saved) {
	if len(list) == 0 {
		pp.None("no drafts")
		return
	}
	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Draft"), b.Sprint("Date"), b.Sprint("Exercises"), b.Sprint("Editing"), b.Sprint("Saved"))
	for _, s := range list {
		tbl.AddRow(s.Name, s.Draft.Session.Date, len(s.Draft.Session.Exercises), s.Draft.EditID, s.Saved.Local().Format("2006-01-02 15:04"))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Sessions prints saved sessions, newest first as given.
func (pp *PrettyPrint) Sessions(list []record.WorkoutSession) {
	if len(list) == 0 {
		pp.None("no sessions")
		return
	}
	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("ID"), b.Sprint("Date"), b.Sprint("Workout"), b.Sprint("Exercises"))
	for _, s := range list {
		tbl.AddRow(s.ID, s.Date, s.Title(), len(s.Exercises))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
