package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/fitlog/pkg/commands/options"
	"tableflip.dev/fitlog/pkg/runner/compose"
	"tableflip.dev/fitlog/pkg/store"
)

type sessionOptions struct {
	draft  options.DraftOptions
	output options.OutputOptions
}

// run resolves deps, builds the composer and hands it to fn.
func (so *sessionOptions) run(cmd *cobra.Command, fn func(ctx context.Context, c *compose.Composer) error) error {
	so.output.Out = cmd.OutOrStdout()
	d, err := loadDeps()
	if err != nil {
		return so.output.HandleError(err)
	}
	defer d.close()

	c := &compose.Composer{
		Drafts:  d.drafts,
		Name:    so.draft.Name,
		Saver:   d.client.Sessions(),
		Catalog: d.client,
		History: d.client.Sessions(),
		JSON:    so.output.JSON,
		Out:     so.output.Out,
		Log:     d.log,
	}
	return so.output.HandleError(fn(cmd.Context(), c))
}

func addSession(topLevel *cobra.Command) {
	so := &sessionOptions{}

	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"workout"},
		Short:   "Compose a workout session one set at a time.",
		Long: base.Wrap80("A session draft is kept on disk between invocations. Name the " +
			"exercise with `session set --exercise`, add sets, commit the exercise, and " +
			"save the session when every exercise is in. Indexes are the ones " +
			"`session show` prints."),
		Example: `
fitlog session new 2024-03-15
fitlog session set --name "Push day" --exercise "Bench Press"
fitlog session add-set 10 60
fitlog session add-set 8 62.5
fitlog session commit
fitlog session save
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.Show(ctx)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&so.draft.Name, "draft", store.DefaultDraft, "Specify the draft to work on.")
	cmd.PersistentFlags().BoolVar(&so.output.JSON, "json", false, "Output as JSON.")

	addSessionNew(cmd, so)
	addSessionShow(cmd, so)
	addSessionSet(cmd, so)
	addSessionAddSet(cmd, so)
	addSessionUpdateSet(cmd, so)
	addSessionRemoveSet(cmd, so)
	addSessionCommit(cmd, so)
	addSessionRemoveExercise(cmd, so)
	addSessionSave(cmd, so)
	addSessionDiscard(cmd, so)
	addSessionList(cmd, so)
	addSessionHistory(cmd, so)

	topLevel.AddCommand(cmd)
}

func addSessionNew(parent *cobra.Command, so *sessionOptions) {
	on := &options.OnOptions{}
	cmd := &cobra.Command{
		Use:   "new [date]",
		Short: "Start a new draft, leaving any edit in progress.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				var err error
				if date, err = on.Parse(args[0]); err != nil {
					return err
				}
			}
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.New(ctx, date)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionShow(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the draft.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.Show(ctx)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionSet(parent *cobra.Command, so *sessionOptions) {
	var date, name, notes, split, exercise, reps, weight string
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the draft's date, name, notes or split, or the exercise being built.",
		Example: `
fitlog session set --date 2024-03-15 --split ppl
fitlog session set --exercise "Sled Push" --reps 10 --weight 40
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := compose.Fields{}
			changed := func(flag string, v *string) *string {
				if cmd.Flags().Changed(flag) {
					return v
				}
				return nil
			}
			if cmd.Flags().Changed("date") {
				parsed, err := on.Parse(date)
				if err != nil {
					return err
				}
				f.Date = &parsed
			}
			f.Name = changed("name", &name)
			f.Notes = changed("notes", &notes)
			f.Split = changed("split", &split)
			f.Exercise = changed("exercise", &exercise)
			f.Reps = changed("reps", &reps)
			f.Weight = changed("weight", &weight)
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.Set(ctx, f)
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Session date, YYYY-MM-DD or M/D.")
	cmd.Flags().StringVar(&name, "name", "", "Workout name.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	cmd.Flags().StringVar(&split, "split", "", "Split id or name; empty clears it.")
	cmd.Flags().StringVar(&exercise, "exercise", "", "Exercise being built; catalog names are matched.")
	cmd.Flags().StringVar(&reps, "reps", "", "Current reps, used by add-set without arguments.")
	cmd.Flags().StringVar(&weight, "weight", "", "Current weight in kg, used by add-set without arguments.")
	parent.AddCommand(cmd)
}

func addSessionAddSet(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "add-set [reps] [weight]",
		Short: "Add a set to the exercise being built.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reps, weight := argAt(args, 0), argAt(args, 1)
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.AddSet(ctx, reps, weight)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionUpdateSet(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "update-set <index> <reps> [weight]",
		Short: "Replace a set of the exercise being built.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := index(args[0])
			if err != nil {
				return err
			}
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.UpdateSet(ctx, i, args[1], argAt(args, 2))
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionRemoveSet(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "remove-set <index>",
		Short: "Remove a set from the exercise being built; the rest are renumbered.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := index(args[0])
			if err != nil {
				return err
			}
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.RemoveSet(ctx, i)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionCommit(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Move the exercise being built into the session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.Commit(ctx)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionRemoveExercise(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "remove-exercise <index>",
		Short: "Remove a committed exercise.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := index(args[0])
			if err != nil {
				return err
			}
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.RemoveExercise(ctx, i)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionSave(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create the session, or update the one being edited.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.Save(ctx)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionDiscard(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "discard",
		Short: "Delete the draft.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.Discard(ctx)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionList(parent *cobra.Command, so *sessionOptions) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored drafts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.List(ctx)
			})
		},
	}
	parent.AddCommand(cmd)
}

func addSessionHistory(parent *cobra.Command, so *sessionOptions) {
	on := &options.OnOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved sessions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			return so.run(cmd, func(ctx context.Context, c *compose.Composer) error {
				return c.Sessions(ctx, date)
			})
		},
	}
	options.AddOnArgs(cmd, on)
	parent.AddCommand(cmd)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func index(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return i, nil
}
