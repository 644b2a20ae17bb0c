package bootstrap

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	app "github.com/mohammadpnp/jobboard-seed/internal/application/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/config"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/assets"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/file"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/hasher"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/wordlists"
)

// NewRand seeds from seed, or from the clock when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// NewGenerator wires the embedded word lists, the password hasher and, when
// enabled, the logo client and CV renderer writing under the media root.
func NewGenerator(cfg *config.Configuration, logger logrus.FieldLogger) (*app.Generator, error) {
	vocab, err := wordlists.Default()
	if err != nil {
		return nil, err
	}

	media := file.NewLocalDir(cfg.Paths.MediaRoot)
	g := cfg.Generator

	var logos app.LogoFetcher
	if g.FetchLogos {
		client, err := assets.NewLogoClient(cfg.Assets.PlaceholderURL, cfg.Assets.HTTPTimeout, media)
		if err != nil {
			return nil, err
		}
		logos = client
	}
	var cvs app.CVRenderer
	if g.RenderCVs {
		cvs = assets.NewCVRenderer(media)
	}

	return app.NewGenerator(app.GeneratorConfig{
		CompanyAccounts:    g.CompanyAccounts,
		IndividualAccounts: g.IndividualAccounts,
		Listings:           g.Listings,
		Applications:       g.Applications,
		CompanyPassword:    g.CompanyPassword,
		IndividualPassword: g.IndividualPassword,
		LogoDir:            cfg.Paths.LogoDir,
		CVDir:              cfg.Paths.CVDir,
		FetchLogos:         g.FetchLogos,
		RenderCVs:          g.RenderCVs,
	}, vocab, NewRand(g.RandomSeed), hasher.NewPBKDF2Hasher(g.HashIterations), logos, cvs, logger)
}

func NewImporter(store *Store, importDir string, confirm app.Confirmer, logger logrus.FieldLogger) *app.Importer {
	return app.NewImporter(store.Repos, file.NewLocalDir(importDir), confirm, logger)
}

func NewExporter(store *Store, exportDir string, logger logrus.FieldLogger) *app.Exporter {
	return app.NewExporter(store.Repos, file.NewLocalDir(exportDir), logger)
}

func NewComparer(generatedDir, exportedDir, mediaRoot string) *app.Comparer {
	return app.NewComparer(file.NewLocalDir(generatedDir), file.NewLocalDir(exportedDir), file.NewLocalDir(mediaRoot))
}
