// Package ui starts the interactive month browser.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/fitlog/pkg/tui"
)

// ErrNotTerminal is returned when stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal, try `fitlog calendar`")

type UI struct {
	Options tui.Options
	// Interactive overrides the terminal check; nil detects it.
	Interactive func() bool
}

func (u *UI) Do(ctx context.Context) error {
	interactive := u.Interactive
	if interactive == nil {
		interactive = stdoutIsTerminal
	}
	if !interactive() {
		return ErrNotTerminal
	}
	return tui.Run(ctx, u.Options)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
