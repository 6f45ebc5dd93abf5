package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/ui/calendar"
)

const width = len("11 ....  12 ....  13 ....  14 ....  15 ....  16 ....  17 ....") // an example week

var dotColors = map[bucket.Category]*color.Color{
	bucket.CategoryWorkouts:  color.New(color.FgMagenta),
	bucket.CategoryNutrition: color.New(color.FgGreen),
	bucket.CategoryWellness:  color.New(color.FgBlue),
	bucket.CategoryActivity:  color.New(color.FgYellow),
}

var dotNames = map[bucket.Category]string{
	bucket.CategoryWorkouts:  "workout",
	bucket.CategoryNutrition: "nutrition",
	bucket.CategoryWellness:  "wellness",
	bucket.CategoryActivity:  "activity",
}

// Month prints the grid with one coloured dot per logged category.
func (pp *PrettyPrint) Month(g calendar.Grid) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := calendar.Title(g.Month)
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)

	h := color.New(color.Faint)
	_, _ = h.Fprintln(w, "Su       Mo       Tu       We       Th       Fr       Sa")

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline)
	selected := color.New(color.ReverseVideo)

	for _, week := range g.Weeks() {
		var line strings.Builder
		for i, c := range week {
			if i > 0 {
				line.WriteString("  ")
			}
			if c.Blank || c.Hidden {
				line.WriteString(strings.Repeat(" ", 2+1+calendar.MaxDots))
				continue
			}
			p := l1
			if len(c.Dots) > 0 {
				p = l2
			}
			if c.Today {
				p = today
			}
			if c.Selected {
				p = selected
			}
			line.WriteString(p.Sprintf("%2d", c.Day))
			line.WriteString(" ")
			for _, d := range c.Dots {
				dc := dotColors[d]
				if g.Category != bucket.CategoryAll && d != g.Category {
					dc = color.New(color.Faint)
				}
				line.WriteString(dc.Sprint("●"))
			}
			line.WriteString(strings.Repeat(" ", calendar.MaxDots-len(c.Dots)))
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
	pp.Legend()
}

// Legend prints the dot colours.
func (pp *PrettyPrint) Legend() {
	var parts []string
	for _, c := range bucket.IndicatorOrder {
		parts = append(parts, dotColors[c].Sprint("●")+" "+dotNames[c])
	}
	_, _ = fmt.Fprintf(pp.out(), "\n%s\n\n", strings.Join(parts, "  "))
}

// Dates prints one summary line per bucketed date, in order.
func (pp *PrettyPrint) Dates(days bucket.Days, category bucket.Category) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	n := 0
	for _, date := range days.Dates() {
		if !days.HasLogs(date, category) {
			continue
		}
		n++
		_, _ = b.Fprint(pp.out(), date)
		_, _ = f.Fprintln(pp.out(), "  "+days.Get(date).Summary())
	}
	if n == 0 {
		pp.None("no logs this month")
	}
}
