package cmd

import (
	"github.com/spf13/cobra"

	"stratagix/cli/internal/render"
	"stratagix/pkg/calendar"
	"stratagix/pkg/content"
)

func newCalendarCmd(opts *rootOptions) *cobra.Command {
	var (
		month    string
		selected string
		shift    int
		view     string
		preview  int
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the content calendar for a month",
		Example: `  stratagix calendar --month 2025-05 --select 2025-05-15
  stratagix calendar --shift 1 --view week`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := opts.todayDate()
			if err != nil {
				return err
			}
			snap, err := opts.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			nav, err := navigate(today, month, shift)
			if err != nil {
				return err
			}
			if selected != "" {
				d, err := content.ParseDate(selected)
				if err != nil {
					return err
				}
				nav = nav.Select(d)
			}
			v, err := calendar.ParseView(view)
			if err != nil {
				return err
			}
			nav = nav.SetView(v)

			grid, err := calendar.Build(snap.Registry, nav.Options(today, preview))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput() {
				return writeJSON(out, grid)
			}
			render.NewPrinter(out, opts.colorize(out)).Calendar(grid)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show (YYYY-MM, default: current month)")
	cmd.Flags().StringVar(&selected, "select", "", "day to mark as selected (YYYY-MM-DD, default: today)")
	cmd.Flags().IntVar(&shift, "shift", 0, "move the shown month forward (or back, if negative)")
	cmd.Flags().StringVar(&view, "view", string(calendar.ViewMonth), "view mode: month|week|day|list")
	cmd.Flags().IntVar(&preview, "preview", 0, "items previewed per day (0: default of 2, -1: all)")
	return cmd
}

// navigate opens the calendar on month (default: today's) moved by shift
// months, in one step so today's day of month survives a short month.
func navigate(today content.Date, month string, shift int) (calendar.Navigator, error) {
	nav := calendar.NewNavigator(today)
	target := nav.Month()
	if month != "" {
		ym, err := content.ParseYearMonth(month)
		if err != nil {
			return nav, err
		}
		target = ym
	}
	return nav.ShowMonth(target.AddMonths(shift)), nil
}

func newDayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "List the content scheduled on one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := content.ParseDate(args[0])
			if err != nil {
				return err
			}
			snap, err := opts.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			items := snap.Registry.ItemsOnDay(d)

			out := cmd.OutOrStdout()
			if opts.jsonOutput() {
				return writeJSON(out, map[string]any{"date": d, "items": items})
			}
			p := render.NewPrinter(out, opts.colorize(out))
			p.DayHeading(d)
			p.Items(items)
			return nil
		},
	}
}
