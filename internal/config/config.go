package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultEnvFiles are loaded in order when present; later files do not
// override earlier ones or the process environment.
var DefaultEnvFiles = []string{".env", ".env.local"}

type DatabaseOptions struct {
	Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
	URL         string `env:"DATABASE_URL"`
	Name        string `env:"DB_NAME" envDefault:"jobboard"`
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        string `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASSWORD" envDefault:"postgres"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"./jobboard.db"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// ConnectionString prefers DATABASE_URL and otherwise assembles a keyword
// DSN from the DB_* parts.
func (d DatabaseOptions) ConnectionString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

type GeneratorOptions struct {
	CompanyAccounts    int    `env:"SEED_COMPANY_ACCOUNTS" envDefault:"30"`
	IndividualAccounts int    `env:"SEED_INDIVIDUAL_ACCOUNTS" envDefault:"50"`
	Listings           int    `env:"SEED_LISTINGS" envDefault:"120"`
	Applications       int    `env:"SEED_APPLICATIONS" envDefault:"200"`
	CompanyPassword    string `env:"SEED_COMPANY_PASSWORD" envDefault:"company123"`
	IndividualPassword string `env:"SEED_INDIVIDUAL_PASSWORD" envDefault:"user123"`
	HashIterations     int    `env:"SEED_HASH_ITERATIONS" envDefault:"870000"`
	// RandomSeed of 0 seeds from the clock.
	RandomSeed uint64 `env:"SEED_RANDOM_SEED" envDefault:"0"`
	FetchLogos bool   `env:"SEED_FETCH_LOGOS" envDefault:"true"`
	RenderCVs  bool   `env:"SEED_RENDER_CVS" envDefault:"true"`
}

type PathOptions struct {
	OutputDir string `env:"SEED_OUTPUT_DIR" envDefault:"./dummy_data"`
	ImportDir string `env:"IMPORT_DIR" envDefault:"./dummy_data"`
	ExportDir string `env:"EXPORT_DIR" envDefault:"./exported_data"`
	MediaRoot string `env:"MEDIA_ROOT" envDefault:"."`
	LogoDir   string `env:"LOGO_DIR" envDefault:"photos"`
	CVDir     string `env:"CV_DIR" envDefault:"cv"`
}

type AssetOptions struct {
	PlaceholderURL string        `env:"PLACEHOLDER_URL" envDefault:"https://placehold.co"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

type LogOptions struct {
	Path       string `env:"LOG_PATH" envDefault:"./import_log.txt"`
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	ReportPath string `env:"REPORT_PATH" envDefault:"./import_report.txt"`
}

type Configuration struct {
	Database  DatabaseOptions
	Generator GeneratorOptions
	Paths     PathOptions
	Assets    AssetOptions
	Log       LogOptions
}

// LoadEnv loads the env files that exist and reports how many it found.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads env files, then the environment, then validates.
func Load(envFiles []string) (*Configuration, error) {
	if _, err := LoadEnv(envFiles); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}
	return Parse()
}

// Parse builds the configuration from the process environment only.
func Parse() (*Configuration, error) {
	c := &Configuration{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Configuration) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: DB_DRIVER=%q (expected postgres|sqlite)", ErrInvalidConfig, c.Database.Driver)
	}

	g := c.Generator
	if g.CompanyAccounts < 0 || g.IndividualAccounts < 0 || g.Listings < 0 || g.Applications < 0 {
		return fmt.Errorf("%w: generator counts must not be negative", ErrInvalidConfig)
	}
	if g.HashIterations <= 0 {
		return fmt.Errorf("%w: SEED_HASH_ITERATIONS must be positive", ErrInvalidConfig)
	}

	if _, err := url.ParseRequestURI(c.Assets.PlaceholderURL); err != nil {
		return fmt.Errorf("%w: PLACEHOLDER_URL=%q", ErrInvalidConfig, c.Assets.PlaceholderURL)
	}
	if c.Assets.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: HTTP_TIMEOUT must be positive", ErrInvalidConfig)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL=%q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// LogrusLevel is the parsed LOG_LEVEL; Validate guarantees it parses.
func (c *Configuration) LogrusLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
