package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/mohammadpnp/jobboard-seed/internal/application/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/bootstrap"
	"github.com/mohammadpnp/jobboard-seed/internal/config"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/file"
	"github.com/mohammadpnp/jobboard-seed/internal/logging"
)

type generateOptions struct {
	outputDir    string
	mediaRoot    string
	seed         uint64
	noLogos      bool
	noCVs        bool
	companies    int
	individuals  int
	listings     int
	applications int
}

func newGenerateCmd(s *session) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate seed CSV files, company logos and applicant CVs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *s.cfg
			override(cmd, "out", &cfg.Paths.OutputDir, opts.outputDir)
			override(cmd, "media-root", &cfg.Paths.MediaRoot, opts.mediaRoot)
			override(cmd, "seed", &cfg.Generator.RandomSeed, opts.seed)
			override(cmd, "company-accounts", &cfg.Generator.CompanyAccounts, opts.companies)
			override(cmd, "individual-accounts", &cfg.Generator.IndividualAccounts, opts.individuals)
			override(cmd, "listings", &cfg.Generator.Listings, opts.listings)
			override(cmd, "applications", &cfg.Generator.Applications, opts.applications)
			if opts.noLogos {
				cfg.Generator.FetchLogos = false
			}
			if opts.noCVs {
				cfg.Generator.RenderCVs = false
			}
			if err := cfg.Validate(); err != nil {
				return withCode(exitUsage, err)
			}
			return runGenerate(cmd, &cfg)
		},
	}

	cmd.Flags().StringVar(&opts.outputDir, "out", "", "Output directory for the CSV files (default: SEED_OUTPUT_DIR)")
	cmd.Flags().StringVar(&opts.mediaRoot, "media-root", "", "Directory logos and CVs are written under (default: MEDIA_ROOT)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed; 0 seeds from the clock")
	cmd.Flags().BoolVar(&opts.noLogos, "no-logos", false, "Skip fetching placeholder logos")
	cmd.Flags().BoolVar(&opts.noCVs, "no-cvs", false, "Skip rendering CV PDFs")
	cmd.Flags().IntVar(&opts.companies, "company-accounts", 0, "Number of company accounts")
	cmd.Flags().IntVar(&opts.individuals, "individual-accounts", 0, "Number of individual accounts")
	cmd.Flags().IntVar(&opts.listings, "listings", 0, "Number of job listings")
	cmd.Flags().IntVar(&opts.applications, "applications", 0, "Number of applications")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Configuration) error {
	ctx := cmd.Context()
	logger := logging.ConsoleLogger(cfg.LogrusLevel(), cmd.ErrOrStderr())

	gen, err := bootstrap.NewGenerator(cfg, logger)
	if err != nil {
		if errors.Is(err, app.ErrInvalidGeneratorConfig) {
			return withCode(exitValidation, err)
		}
		return withCode(exitUsage, err)
	}

	dataset, err := gen.Generate(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return withCode(exitCancelled, err)
		}
		return err
	}
	if err := app.WriteDataset(ctx, file.NewLocalDir(cfg.Paths.OutputDir), dataset); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d users, %d companies, %d listings, %d applies in %s\n",
		len(dataset.Accounts), len(dataset.Organizations), len(dataset.Listings), len(dataset.Applications),
		cfg.Paths.OutputDir)
	return nil
}
