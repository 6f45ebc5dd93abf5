package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// JSON writes v indented, for the --json flag.
func JSON(out io.Writer, v any) error {
	if out == nil {
		out = color.Output
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("printers: encode json: %w", err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
