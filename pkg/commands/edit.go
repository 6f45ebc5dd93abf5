package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/fitlog/pkg/commands/options"
	"tableflip.dev/fitlog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	ko := &kindOptions{}
	do := &options.DraftOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <kind> <id>",
		Short: "Show where a record is edited; workouts load into the session draft.",
		Long: base.Wrap80("Prints the editor route for the record, pre-seeded with its id. " +
			"A workout is fetched and loaded into the session draft, so `fitlog session` " +
			"commands change it and `fitlog session save` updates it in place."),
		Example: `
fitlog edit body-feelings 42
fitlog edit workouts 7 --draft legday
`,
		Args:      kindArgs(ko),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			d, err := loadDeps()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.close()

			s := edit.Edit{
				Sessions:  d.client.Sessions(),
				Drafts:    d.drafts,
				DraftName: do.Name,
				Kind:      ko.Kind,
				ID:        ko.ID,
				JSON:      oo.JSON,
				Out:       oo.Out,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddDraftArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
