package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/fitlog/pkg/commands/options"
	"tableflip.dev/fitlog/pkg/runner/month"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	co := &options.CategoryOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal", "month"},
		Short:   "Show a month with a dot for every logged category.",
		Long: base.Wrap80("Fetches workouts, nutrition, wellness and activity logs and " +
			"buckets them per day. Each day shows one dot per category: workouts, " +
			"nutrition, wellness and activity, in that order. Sleep is not shown."),
		Example: `
fitlog calendar
fitlog calendar --month 2024-03 --category wellness --active-only
fitlog calendar --month "March 2024" --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			m, err := mo.GetMonth()
			if err != nil {
				return oo.HandleError(err)
			}
			category, err := co.GetCategory()
			if err != nil {
				return oo.HandleError(err)
			}
			d, err := loadDeps()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.close()

			s := month.Month{
				Source:     d.client,
				Month:      m,
				Today:      time.Now(),
				Category:   category,
				ActiveOnly: co.ActiveOnly,
				Strict:     co.Strict,
				JSON:       oo.JSON,
				Out:        oo.Out,
				Log:        d.log,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddCategoryArgs(cmd, co)
	options.AddStrictArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return options.CategoryCompletions(), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
