// Package commands holds the CLI subcommands added to the server's root
// command.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bidscope/config"
	"bidscope/services"
)

type exportBuilder func(l *services.Loader, ctx context.Context) (services.Export, error)

// NewExportCommand returns "export" with one subcommand per download the web
// UI offers.
func NewExportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an export file without starting the server",
		Long: `Write one of the exports offered by the web UI to disk.

Available subcommands:
  grps       GRPS scope item mapping workbook
  grps-pdf   GRPS scope item mapping PDF
  packages   Package group to spec mapping workbook
  bid-items  Bid items by category workbook`,
	}
	cmd.AddCommand(
		newExportFileCommand(cfg, "grps", "Write the GRPS scope item mapping workbook", (*services.Loader).ExportGRPSExcel),
		newExportFileCommand(cfg, "grps-pdf", "Write the GRPS scope item mapping PDF", (*services.Loader).ExportGRPSPDF),
		newExportFileCommand(cfg, "packages", "Write the package group to spec mapping workbook", (*services.Loader).ExportPackageMappingExcel),
		newExportFileCommand(cfg, "bid-items", "Write the bid items by category workbook", (*services.Loader).ExportBidItemsExcel),
	)
	return cmd
}

func newExportFileCommand(cfg *config.Config, use, short string, build exportBuilder) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := build(services.NewLoader(cfg.Source()), cmd.Context())
			if err != nil {
				return fmt.Errorf("export %s: %w", use, err)
			}
			path := out
			if path == "" {
				path = file.Filename
			}
			if err := os.WriteFile(path, file.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(file.Data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: the download file name)")
	return cmd
}
