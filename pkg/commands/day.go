package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/fitlog/pkg/commands/options"
	"tableflip.dev/fitlog/pkg/record"
	"tableflip.dev/fitlog/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show everything logged on one date, by category.",
		Example: `
fitlog day
fitlog day 2024-03-15 --show-id
fitlog day 3/15 --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			date, err := on.Parse(raw)
			if err != nil {
				return oo.HandleError(err)
			}
			if date == "" {
				date = record.FormatDate(time.Now())
			}
			d, err := loadDeps()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.close()

			src := d.client.OnDate(date)
			s := day.Day{
				Source: src,
				Extras: src,
				Date:   date,
				ShowID: io.ShowID,
				JSON:   oo.JSON,
				Out:    oo.Out,
				Log:    d.log,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
