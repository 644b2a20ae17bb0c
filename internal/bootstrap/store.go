package bootstrap

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	app "github.com/mohammadpnp/jobboard-seed/internal/application/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/config"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store bundles the open database handles and the repositories built on
// them.
type Store struct {
	DB    *gorm.DB
	Pool  *pgxpool.Pool
	Repos app.Repositories
}

// OpenStore connects to PostgreSQL (gorm plus a pgx pool) or to a SQLite
// file. SQLite stores and stores with AutoMigrate set get their tables
// created.
func OpenStore(ctx context.Context, opts config.DatabaseOptions) (*Store, error) {
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	store := &Store{}
	var err error
	switch opts.Driver {
	case config.DriverSQLite:
		store.DB, err = gorm.Open(sqlite.Open(opts.SQLitePath), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", opts.SQLitePath, err)
		}
	case config.DriverPostgres:
		dsn := opts.ConnectionString()
		store.DB, err = gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		store.Pool, err = pgxpool.New(ctx, dsn)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("create pgx pool: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported driver %q", config.ErrInvalidConfig, opts.Driver)
	}

	if opts.AutoMigrate || opts.Driver == config.DriverSQLite {
		if err := repository.Migrate(ctx, store.DB); err != nil {
			store.Close()
			return nil, err
		}
	}

	store.Repos = app.Repositories{
		Accounts:      repository.NewAccountRepository(store.DB),
		Organizations: repository.NewOrganizationRepository(store.DB),
		Listings:      repository.NewListingRepository(store.DB),
		Applications:  repository.NewApplicationRepository(store.DB),
		Maintenance:   repository.NewMaintenanceRepository(store.DB, store.Pool),
	}
	return store, nil
}

func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
