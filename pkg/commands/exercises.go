package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fitlog/pkg/commands/options"
	"tableflip.dev/fitlog/pkg/runner/exercises"
)

func addExercises(topLevel *cobra.Command) {
	var split, day string
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "List the exercise catalog.",
		Example: `
fitlog exercises
fitlog exercises --day chest
fitlog exercises --split ppl --day push
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			d, err := loadDeps()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.close()

			s := exercises.Exercises{
				Catalog: d.client,
				Split:   split,
				Day:     day,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Out:     oo.Out,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&split, "split", "", "Split id or name whose day narrows the catalog.")
	cmd.Flags().StringVar(&day, "day", "", "Split day, matched against name, muscle group and type.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
