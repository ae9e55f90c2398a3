package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"stratagix/pkg/provider"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current data set as a YAML data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := opts.provider()
			if err != nil {
				return err
			}
			if _, err := provider.Load(cmd.Context(), src); err != nil {
				return err
			}
			if file == "" || file == "-" {
				return provider.Encode(cmd.Context(), cmd.OutOrStdout(), src)
			}
			f, err := os.Create(file)
			if err != nil {
				return err
			}
			if err := provider.Encode(cmd.Context(), f, src); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "destination file, - for stdout")
	return cmd
}
