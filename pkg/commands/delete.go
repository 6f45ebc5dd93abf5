package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/fitlog/pkg/commands/options"
	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/runner/remove"
)

func kindArgs(ko *kindOptions) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("requires a kind and a record id")
		}
		k, err := detail.ParseKind(args[0])
		if err != nil {
			return err
		}
		ko.Kind, ko.ID = k, args[1]
		return nil
	}
}

type kindOptions struct {
	Kind detail.Kind
	ID   string
}

func kindNames() []string {
	out := make([]string, 0, len(detail.Kinds()))
	for _, k := range detail.Kinds() {
		out = append(out, string(k))
	}
	return out
}

func addDelete(topLevel *cobra.Command) {
	ko := &kindOptions{}
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <kind> <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a logged record.",
		Long: base.Wrap80("Deletes one record through its collection. With --on, the month " +
			"containing that date is aggregated again and the day is printed. Kinds: " +
			strings.Join(kindNames(), ", ") + "."),
		Example: `
fitlog delete stress 42
fitlog delete workouts 7 --on 2024-03-15
`,
		Args:      kindArgs(ko),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			date, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			d, err := loadDeps()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.close()

			s := remove.Remove{
				Store:  d.client,
				Source: d.client,
				Kind:   ko.Kind,
				ID:     ko.ID,
				On:     date,
				JSON:   oo.JSON,
				Out:    oo.Out,
				Log:    d.log,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
