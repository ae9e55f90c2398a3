package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stratagix/cli/internal/render"
	"stratagix/pkg/content"
)

func newContentCmd(opts *rootOptions) *cobra.Command {
	var (
		platform string
		month    string
		upcoming int
	)

	cmd := &cobra.Command{
		Use:   "content",
		Short: "List scheduled content",
		Example: `  stratagix content --platform linkedin
  stratagix content --upcoming 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if upcoming < 0 {
				return fmt.Errorf("--upcoming must not be negative")
			}
			p, err := content.ParsePlatform(platform)
			if err != nil {
				return err
			}
			snap, err := opts.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			var items []content.Item
			switch {
			case cmd.Flags().Changed("upcoming"):
				today, err := opts.todayDate()
				if err != nil {
					return err
				}
				items = snap.Registry.Upcoming(today, upcoming)
			case month != "":
				ym, err := content.ParseYearMonth(month)
				if err != nil {
					return err
				}
				items = snap.Registry.ItemsInMonth(ym)
			default:
				items = snap.Registry.Items()
			}
			if p != content.PlatformAll {
				items = content.FilterByPlatform(items, p)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput() {
				return writeJSON(out, items)
			}
			render.NewPrinter(out, opts.colorize(out)).Items(items)
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", string(content.PlatformAll), "instagram|linkedin|both|all")
	cmd.Flags().StringVar(&month, "month", "", "only items in this month (YYYY-MM)")
	cmd.Flags().IntVar(&upcoming, "upcoming", 0, "items on or after today, soonest first (0: no limit)")
	return cmd
}
