package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mohammadpnp/jobboard-seed/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost port=5432 user=postgres dbname=jobboard password=postgres sslmode=disable", cfg.Database.ConnectionString())
	assert.Equal(t, 30, cfg.Generator.CompanyAccounts)
	assert.Equal(t, 870000, cfg.Generator.HashIterations)
	assert.Equal(t, 30*time.Second, cfg.Assets.HTTPTimeout)
	assert.Equal(t, "./dummy_data", cfg.Paths.ImportDir)
	assert.Equal(t, logrus.InfoLevel, cfg.LogrusLevel())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/jobs")
	t.Setenv("SEED_RANDOM_SEED", "42")
	t.Setenv("SEED_FETCH_LOGOS", "false")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "warning")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/jobs", cfg.Database.ConnectionString())
	assert.Equal(t, uint64(42), cfg.Generator.RandomSeed)
	assert.False(t, cfg.Generator.FetchLogos)
	assert.Equal(t, 5*time.Second, cfg.Assets.HTTPTimeout)
	assert.Equal(t, logrus.WarnLevel, cfg.LogrusLevel())
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"driver":     {"DB_DRIVER", "mysql"},
		"count":      {"SEED_LISTINGS", "-1"},
		"iterations": {"SEED_HASH_ITERATIONS", "0"},
		"level":      {"LOG_LEVEL", "loud"},
		"timeout":    {"HTTP_TIMEOUT", "0s"},
		"not a int":  {"SEED_LISTINGS", "many"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := config.Parse()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadEnvSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(present, []byte("SEED_TEST_ENV_LOAD=ok\n"), 0o644))
	t.Setenv("SEED_TEST_ENV_LOAD", "")
	require.NoError(t, os.Unsetenv("SEED_TEST_ENV_LOAD"))

	n, err := config.LoadEnv([]string{present, filepath.Join(dir, ".env.local")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ok", os.Getenv("SEED_TEST_ENV_LOAD"))
}
