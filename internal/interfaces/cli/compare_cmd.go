package cli

import (
	"errors"

	"github.com/spf13/cobra"

	app "github.com/mohammadpnp/jobboard-seed/internal/application/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/bootstrap"
	"github.com/mohammadpnp/jobboard-seed/internal/config"
	"github.com/mohammadpnp/jobboard-seed/internal/logging"
)

var errMissingSources = errors.New("one or more compared files are missing")

type compareOptions struct {
	generatedDir string
	exportedDir  string
	mediaRoot    string
}

func (o *compareOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.generatedDir, "generated", "", "Directory of the generated CSV files (default: SEED_OUTPUT_DIR)")
	cmd.Flags().StringVar(&o.exportedDir, "exported", "", "Directory of the exported CSV files (default: EXPORT_DIR)")
	cmd.Flags().StringVar(&o.mediaRoot, "media-root", "", "Directory logo and CV paths are relative to (default: MEDIA_ROOT)")
}

func (o *compareOptions) apply(cmd *cobra.Command, cfg *config.Configuration) {
	override(cmd, "generated", &cfg.Paths.OutputDir, o.generatedDir)
	override(cmd, "exported", &cfg.Paths.ExportDir, o.exportedDir)
	override(cmd, "media-root", &cfg.Paths.MediaRoot, o.mediaRoot)
}

func newCompareCmd(s *session) *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare generated CSV files with exported ones and check media paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *s.cfg
			opts.apply(cmd, &cfg)

			comparer := bootstrap.NewComparer(cfg.Paths.OutputDir, cfg.Paths.ExportDir, cfg.Paths.MediaRoot)
			report, err := comparer.CompareAll(cmd.Context())
			if err != nil {
				return err
			}
			return renderCompareReport(cmd, report)
		},
	}
	opts.bind(cmd)
	return cmd
}

func newVerifyCmd(s *session) *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Export the database and compare the result with the generated files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := *s.cfg
			opts.apply(cmd, &cfg)

			logger := logging.ConsoleLogger(cfg.LogrusLevel(), cmd.ErrOrStderr())
			store, err := bootstrap.OpenStore(ctx, cfg.Database)
			if err != nil {
				return withCode(exitDB, err)
			}
			defer store.Close()

			exporter := bootstrap.NewExporter(store, cfg.Paths.ExportDir, logger)
			comparer := bootstrap.NewComparer(cfg.Paths.OutputDir, cfg.Paths.ExportDir, cfg.Paths.MediaRoot)
			report, err := app.Verify(ctx, exporter, comparer)
			if err != nil {
				if errors.Is(err, app.ErrExport) {
					return withCode(exitDB, err)
				}
				return err
			}
			return renderCompareReport(cmd, report)
		},
	}
	opts.bind(cmd)
	return cmd
}

// renderCompareReport prints the report; mismatches are informational and
// only wholly missing files fail the command.
func renderCompareReport(cmd *cobra.Command, report app.CompareReport) error {
	if err := app.WriteCompareReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	if report.MissingSources() {
		return withCode(exitValidation, errMissingSources)
	}
	return nil
}
