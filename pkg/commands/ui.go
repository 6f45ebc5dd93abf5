package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/commands/options"
	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/runner/ui"
	"tableflip.dev/fitlog/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	co := &options.CategoryOptions{}
	do := &options.DraftOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the month browser",
		Example: `
fitlog ui
fitlog ui --month 2024-03 --category workouts
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mo.GetMonth()
			if err != nil {
				return err
			}
			category, err := co.GetCategory()
			if err != nil {
				return err
			}
			d, err := loadDeps()
			if err != nil {
				return err
			}
			defer d.close()

			r := bucket.NewRefresher(bucket.NewAggregator(d.client, d.log), d.log)
			i := ui.UI{Options: tui.Options{
				Refresher: r,
				Actions:   detail.NewActions(d.client, r, d.log),
				Drafts:    d.drafts,
				DraftName: do.Name,
				Category:  category,
				Month:     m,
				Log:       d.log,
			}}
			return i.Do(cmd.Context())
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddCategoryArgs(cmd, co)
	options.AddDraftArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
