package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stratagix/pkg/config"
	"stratagix/pkg/content"
	"stratagix/pkg/logging"
	"stratagix/pkg/provider"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// rootOptions is the state shared by every subcommand.
type rootOptions struct {
	dataFile string
	output   string
	today    string
	noColor  bool

	// now is swapped in tests.
	now func() time.Time
}

// NewRootCmd returns the root command for the Stratagix CLI
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	rootCmd := &cobra.Command{
		Use:           "stratagix",
		Short:         "Stratagix planner CLI",
		Long:          "Stratagix planner CLI: browse the content calendar, scheduled posts and trend catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(logging.NewDiscardLogger())
			if opts.dataFile == "" {
				opts.dataFile = config.GetEnv("PLANNER_DATA_FILE", "")
			}
			switch opts.output {
			case outputText, outputJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want json or text)", opts.output)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataFile, "data", "", "YAML data file (default: built-in demo data, or $PLANNER_DATA_FILE)")
	rootCmd.PersistentFlags().StringVar(&opts.output, "output", outputText, "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&opts.today, "today", "", "treat this date (YYYY-MM-DD) as today")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newCalendarCmd(opts))
	rootCmd.AddCommand(newDayCmd(opts))
	rootCmd.AddCommand(newContentCmd(opts))
	rootCmd.AddCommand(newTrendsCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newTokenCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))

	return rootCmd
}

func (o *rootOptions) provider() (provider.Provider, error) {
	if o.dataFile == "" {
		return provider.NewMemory(), nil
	}
	return provider.OpenFile(o.dataFile)
}

func (o *rootOptions) snapshot(ctx context.Context) (*provider.Snapshot, error) {
	p, err := o.provider()
	if err != nil {
		return nil, err
	}
	return provider.Load(ctx, p)
}

func (o *rootOptions) todayDate() (content.Date, error) {
	if o.today != "" {
		return content.ParseDate(o.today)
	}
	return content.DateOf(o.now()), nil
}

func (o *rootOptions) jsonOutput() bool {
	return o.output == outputJSON
}

// colorize reports whether w should receive ANSI colors.
func (o *rootOptions) colorize(w io.Writer) bool {
	if o.noColor || o.jsonOutput() {
		return false
	}
	f, ok := w.(*os.File)
	// term covers real terminals; mintty-style pipes only show up through isatty.
	return ok && (term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
