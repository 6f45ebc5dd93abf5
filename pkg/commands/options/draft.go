package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fitlog/pkg/store"
)

// DraftOptions names the stored session draft.
type DraftOptions struct {
	Name string
}

func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVar(&o.Name, "draft", store.DefaultDraft,
		"Specify the draft to work on.")
}
