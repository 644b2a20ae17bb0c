package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	app "github.com/mohammadpnp/jobboard-seed/internal/application/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/bootstrap"
	"github.com/mohammadpnp/jobboard-seed/internal/config"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/logging"
)

type importOptions struct {
	testOnly   bool
	clear      bool
	assumeYes  bool
	dir        string
	step       string
	logPath    string
	reportPath string
}

func newImportCmd(s *session) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import seed CSV files into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *s.cfg
			override(cmd, "dir", &cfg.Paths.ImportDir, opts.dir)
			override(cmd, "log", &cfg.Log.Path, opts.logPath)
			override(cmd, "report", &cfg.Log.ReportPath, opts.reportPath)

			if opts.testOnly && opts.clear {
				return withCode(exitUsage, errors.New("--test and --clear cannot be combined"))
			}
			var step domain.Entity
			if opts.step != "" {
				var err error
				if step, err = domain.ParseEntity(opts.step); err != nil {
					return withCode(exitUsage, fmt.Errorf("invalid --step: %w", err))
				}
			}

			return runImport(cmd, &cfg, app.RunOptions{
				RunID:     uuid.NewString(),
				TestOnly:  opts.testOnly,
				Clear:     opts.clear,
				Step:      step,
				AssumeYes: opts.assumeYes,
			})
		},
	}

	cmd.Flags().BoolVar(&opts.testOnly, "test", false, "Only test the database connection and print counts")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Delete existing data (superusers kept) before importing")
	cmd.Flags().BoolVarP(&opts.assumeYes, "yes", "y", false, "Answer yes to every confirmation")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory holding the CSV files (default: IMPORT_DIR)")
	cmd.Flags().StringVar(&opts.step, "step", "", "Import one entity only: users|companies|listings|applies")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "Append-only log file (default: LOG_PATH)")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Report file (default: REPORT_PATH)")
	return cmd
}

func runImport(cmd *cobra.Command, cfg *config.Configuration, opts app.RunOptions) error {
	ctx := cmd.Context()

	logFile, logger, err := logging.FileLogger(cfg.LogrusLevel(), cfg.Log.Path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logger.WithField("run_id", opts.RunID)
	log.WithField("path", cfg.Paths.ImportDir).Info("import started")

	store, err := bootstrap.OpenStore(ctx, cfg.Database)
	if err != nil {
		log.WithError(err).Error("opening database failed")
		return withCode(exitDB, err)
	}
	defer store.Close()

	confirm := newPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	importer := bootstrap.NewImporter(store, cfg.Paths.ImportDir, confirm, logger)

	report, runErr := importer.Run(ctx, opts)
	if opts.TestOnly && runErr == nil {
		printCounts(cmd.OutOrStdout(), report.Counts)
		return nil
	}

	if len(report.Results) > 0 {
		if err := writeReportFile(cfg.Log.ReportPath, report, cfg.Log.Path); err != nil {
			log.WithError(err).Error("writing report failed")
			if runErr == nil {
				runErr = err
			}
		} else {
			log.WithField("path", cfg.Log.ReportPath).Info("report written")
		}
	}
	if runErr != nil {
		return classifyImportError(runErr)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d, skipped %d, failed %d of %d records (%.2f%%)\n",
		report.Stats.Success, report.Stats.Skipped, report.Stats.Failed, report.Stats.Total,
		report.Stats.SuccessRate())

	var aborted int
	for _, r := range report.Results {
		if r.Status != domain.StatusComplete {
			aborted++
		}
	}
	if aborted > 0 || report.Stats.Failed > 0 {
		return withCode(exitValidation, fmt.Errorf("import finished with %d aborted steps and %d failed rows, see %s",
			aborted, report.Stats.Failed, cfg.Log.ReportPath))
	}
	return nil
}

func classifyImportError(err error) error {
	switch {
	case errors.Is(err, app.ErrCancelled), errors.Is(err, context.Canceled):
		return withCode(exitCancelled, err)
	case errors.Is(err, app.ErrClearStore):
		return withCode(exitDBWrite, err)
	case errors.Is(err, app.ErrStoreUnavailable), errors.Is(err, app.ErrValidateStore):
		return withCode(exitDB, err)
	default:
		return err
	}
}

func writeReportFile(path string, report app.RunReport, logPath string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := app.WriteReport(f, report, logPath); err != nil {
		_ = f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

func printCounts(w io.Writer, counts domain.StoreCounts) {
	fmt.Fprintln(w, "database connection ok")
	fmt.Fprintf(w, "  users: %d (superusers: %d)\n", counts.Accounts, counts.Superusers)
	fmt.Fprintf(w, "  companies: %d\n", counts.Organizations)
	fmt.Fprintf(w, "  listings: %d (active: %d, inactive: %d)\n", counts.Listings, counts.ActiveListings, counts.InactiveListings)
	fmt.Fprintf(w, "  applies: %d\n", counts.Applications)
}
