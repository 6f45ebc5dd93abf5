package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fitlog/pkg/bucket"
)

// CategoryOptions filters the calendar.
type CategoryOptions struct {
	Category   string
	ActiveOnly bool
	Strict     bool
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "all",
		"Specify the category, one of all, workouts, nutrition, wellness, activity.")
	cmd.Flags().BoolVarP(&o.ActiveOnly, "active-only", "a", false,
		"Only show days with logs in the category.")
}

func AddStrictArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVar(&o.Strict, "strict", false,
		"Fail when a collection cannot be fetched instead of showing an empty calendar.")
}

// GetCategory parses the category flag.
func (o *CategoryOptions) GetCategory() (bucket.Category, error) {
	return bucket.ParseCategory(o.Category)
}

// CategoryCompletions lists the values --category accepts.
func CategoryCompletions() []string {
	out := []string{string(bucket.CategoryAll)}
	for _, c := range bucket.IndicatorOrder {
		out = append(out, string(c))
	}
	return out
}
