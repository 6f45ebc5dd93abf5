package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"
)

// PrettyPrint renders human output for the CLI commands.
type PrettyPrint struct {
	ShowID bool
	// Width wraps long lines; zero means 80.
	Width int
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("custom-1710495000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return 80
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints "title - n unit(s)".
func (pp *PrettyPrint) TitleWithCount(title string, count int, one, many string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)
	if count == 1 {
		_, _ = c.Fprintln(pp.out(), " "+one)
	} else {
		_, _ = c.Fprintln(pp.out(), " "+many)
	}
}

// None prints the faint placeholder for an empty list.
func (pp *PrettyPrint) None(text string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), " %s\n\n", text)
}

// id prints the faint id column when ShowID is set.
func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Fprint(pp.out(), id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
	} else {
		_, _ = y.Fprint(pp.out(), "  ")
	}
}

// wrapped prints text wrapped to the width, each line prefixed by indent.
func (pp *PrettyPrint) wrapped(c *color.Color, indent, text string) {
	w := pp.width() - len(indent)
	if w < 20 {
		w = 20
	}
	for _, line := range strings.Split(wordwrap.String(text, w), "\n") {
		_, _ = c.Fprintln(pp.out(), indent+line)
	}
}
