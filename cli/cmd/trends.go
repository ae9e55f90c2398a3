package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stratagix/cli/internal/render"
	"stratagix/pkg/trends"
)

func newTrendsCmd(opts *rootOptions) *cobra.Command {
	var (
		category string
		query    string
	)

	cmd := &cobra.Command{
		Use:   "trends [id]",
		Short: "Search the trend catalog, or show one trend",
		Example: `  stratagix trends --category content
  stratagix trends --query sustainab
  stratagix trends 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := opts.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := render.NewPrinter(out, opts.colorize(out))

			if len(args) == 1 {
				entry, ok := trends.FindByID(snap.Trends, args[0])
				if !ok {
					return fmt.Errorf("trend %q not found", args[0])
				}
				if opts.jsonOutput() {
					return writeJSON(out, entry)
				}
				p.Trend(entry)
				return nil
			}

			matches := trends.Filter(snap.Trends, category, query)
			counts := trends.CountByCategory(snap.Trends)
			if opts.jsonOutput() {
				return writeJSON(out, map[string]any{"data": matches, "counts": counts})
			}
			p.Trends(matches, counts)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", trends.AllCategories, "all|business|content|strategy|industry")
	cmd.Flags().StringVarP(&query, "query", "q", "", "text to find in titles, descriptions and hashtags")
	return cmd
}
