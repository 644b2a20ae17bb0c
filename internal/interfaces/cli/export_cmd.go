package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mohammadpnp/jobboard-seed/internal/bootstrap"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/spreadsheet"
	"github.com/mohammadpnp/jobboard-seed/internal/logging"
)

type exportOptions struct {
	outputDir string
	workbook  string
}

func newExportCmd(s *session) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the four tables to CSV, optionally also to one XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := *s.cfg
			override(cmd, "out", &cfg.Paths.ExportDir, opts.outputDir)

			logger := logging.ConsoleLogger(cfg.LogrusLevel(), cmd.ErrOrStderr())
			store, err := bootstrap.OpenStore(ctx, cfg.Database)
			if err != nil {
				return withCode(exitDB, err)
			}
			defer store.Close()

			exporter := bootstrap.NewExporter(store, cfg.Paths.ExportDir, logger)
			result, err := exporter.Export(ctx)
			if err != nil {
				return withCode(exitDB, err)
			}
			out := cmd.OutOrStdout()
			for _, entity := range domain.ImportOrder {
				fmt.Fprintf(out, "%s: %d rows -> %s\n", entity.Label(), result.Rows[entity],
					filepath.Join(cfg.Paths.ExportDir, result.Files[entity]))
			}

			if opts.workbook != "" {
				if err := exporter.ExportWorkbook(ctx, opts.workbook, spreadsheet.NewWorkbookEncoder()); err != nil {
					return withCode(exitDB, err)
				}
				fmt.Fprintf(out, "workbook -> %s\n", filepath.Join(cfg.Paths.ExportDir, opts.workbook))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.outputDir, "out", "", "Export directory (default: EXPORT_DIR)")
	cmd.Flags().StringVar(&opts.workbook, "xlsx", "", "Also write an XLSX workbook with this name inside the export directory")
	return cmd
}
