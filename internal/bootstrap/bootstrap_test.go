package bootstrap_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadpnp/jobboard-seed/internal/bootstrap"
	"github.com/mohammadpnp/jobboard-seed/internal/config"
)

func TestOpenStoreSQLiteMigrates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, config.DatabaseOptions{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "seed.db"),
	})
	require.NoError(t, err)
	defer store.Close()

	assert.Nil(t, store.Pool)
	require.NoError(t, store.Repos.Maintenance.Ping(ctx))
	counts, err := store.Repos.Maintenance.Counts(ctx)
	require.NoError(t, err)
	assert.True(t, counts.Empty())
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := bootstrap.OpenStore(context.Background(), config.DatabaseOptions{Driver: "mysql"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewRandIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a, b := bootstrap.NewRand(7), bootstrap.NewRand(7)
	for range 5 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewGeneratorWithoutAssets(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()
	cfg := &config.Configuration{
		Generator: config.GeneratorOptions{
			CompanyAccounts:    2,
			IndividualAccounts: 2,
			Listings:           2,
			Applications:       2,
			CompanyPassword:    "company123",
			IndividualPassword: "user123",
			HashIterations:     1,
			RandomSeed:         1,
		},
		Paths: config.PathOptions{MediaRoot: t.TempDir(), LogoDir: "photos", CVDir: "cv"},
	}

	gen, err := bootstrap.NewGenerator(cfg, logger)
	require.NoError(t, err)

	dataset, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, dataset.Accounts, 4)
	assert.Len(t, dataset.Organizations, 2)
	assert.Len(t, dataset.Listings, 2)
	assert.Len(t, dataset.Applications, 2)
}
