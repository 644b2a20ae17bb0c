package repository

import (
	"context"
	"fmt"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

// sequenceTables are reset children first, matching the clear order.
var sequenceTables = []string{"applies_apply", "listings_listing", "companies_company", "auth_user"}

const resetSequenceSQL = "SELECT setval(pg_get_serial_sequence(%s, 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)"

// MaintenanceRepository covers the whole-store operations: health check,
// counts, orphan detection, clearing and id sequence resets. The pgx pool
// is optional and only present on PostgreSQL.
type MaintenanceRepository struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

func NewMaintenanceRepository(db *gorm.DB, pool *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{db: db, pool: pool}
}

func (r *MaintenanceRepository) Ping(ctx context.Context) error {
	if r.pool != nil {
		if err := r.pool.Ping(ctx); err != nil {
			return gerrors.Wrap(err, "ping pool")
		}
	}

	sqlDB, err := r.db.DB()
	if err != nil {
		return gerrors.Wrap(err, "get sql db")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return gerrors.Wrap(err, "ping db")
	}
	return nil
}

func (r *MaintenanceRepository) Counts(ctx context.Context) (domain.StoreCounts, error) {
	db := r.db.WithContext(ctx)
	var c domain.StoreCounts

	queries := []struct {
		target *int64
		model  any
		where  string
		args   []any
	}{
		{&c.Accounts, &models.Account{}, "", nil},
		{&c.Superusers, &models.Account{}, "is_superuser = ?", []any{true}},
		{&c.Organizations, &models.Organization{}, "", nil},
		{&c.Listings, &models.Listing{}, "", nil},
		{&c.ActiveListings, &models.Listing{}, "is_active = ?", []any{true}},
		{&c.InactiveListings, &models.Listing{}, "is_active = ?", []any{false}},
		{&c.Applications, &models.Application{}, "", nil},
	}
	for _, q := range queries {
		tx := db.Model(q.model)
		if q.where != "" {
			tx = tx.Where(q.where, q.args...)
		}
		if err := tx.Count(q.target).Error; err != nil {
			return domain.StoreCounts{}, gerrors.Wrap(err, "count rows")
		}
	}
	return c, nil
}

func (r *MaintenanceRepository) Orphans(ctx context.Context) (domain.OrphanCounts, error) {
	db := r.db.WithContext(ctx)
	var o domain.OrphanCounts

	queries := []struct {
		target *int64
		table  string
		join   string
		where  string
	}{
		{&o.OrganizationsWithoutOwner, "companies_company AS c", "LEFT JOIN auth_user AS u ON u.id = c.user_id", "u.id IS NULL"},
		{&o.ListingsWithoutOrganization, "listings_listing AS l", "LEFT JOIN companies_company AS c ON c.id = l.company_id", "c.id IS NULL"},
		{&o.ApplicationsWithoutListing, "applies_apply AS a", "LEFT JOIN listings_listing AS l ON l.id = a.listing_id", "l.id IS NULL"},
		{&o.ApplicationsWithoutApplicant, "applies_apply AS a", "LEFT JOIN auth_user AS u ON u.id = a.user_id", "u.id IS NULL"},
	}
	for _, q := range queries {
		if err := db.Table(q.table).Joins(q.join).Where(q.where).Count(q.target).Error; err != nil {
			return domain.OrphanCounts{}, gerrors.Wrap(err, "count orphans")
		}
	}
	return o, nil
}

// ClearAll deletes children before parents in one transaction. Superuser
// accounts survive.
func (r *MaintenanceRepository) ClearAll(ctx context.Context) (domain.ClearSummary, error) {
	var summary domain.ClearSummary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		res := all.Delete(&models.Application{})
		if res.Error != nil {
			return gerrors.Wrap(res.Error, "delete applies")
		}
		summary.Applications = res.RowsAffected

		res = all.Delete(&models.Listing{})
		if res.Error != nil {
			return gerrors.Wrap(res.Error, "delete listings")
		}
		summary.Listings = res.RowsAffected

		res = all.Delete(&models.Organization{})
		if res.Error != nil {
			return gerrors.Wrap(res.Error, "delete companies")
		}
		summary.Organizations = res.RowsAffected

		res = tx.Where("is_superuser = ?", false).Delete(&models.Account{})
		if res.Error != nil {
			return gerrors.Wrap(res.Error, "delete users")
		}
		summary.Accounts = res.RowsAffected
		return nil
	})
	if err != nil {
		return domain.ClearSummary{}, err
	}
	return summary, nil
}

// ResetSequences moves every id sequence to one past the current maximum
// id, so surviving superusers keep their ids and new rows never collide.
func (r *MaintenanceRepository) ResetSequences(ctx context.Context) error {
	switch r.db.Dialector.Name() {
	case "postgres":
		return r.resetPostgres(ctx)
	case "sqlite":
		return r.resetSQLite(ctx)
	default:
		return fmt.Errorf("reset sequences: unsupported dialect %q", r.db.Dialector.Name())
	}
}

func (r *MaintenanceRepository) resetPostgres(ctx context.Context) error {
	for _, table := range sequenceTables {
		from := pgx.Identifier{table}.Sanitize()
		var err error
		if r.pool != nil {
			_, err = r.pool.Exec(ctx, fmt.Sprintf(resetSequenceSQL, "$1", from), table)
		} else {
			err = r.db.WithContext(ctx).Exec(fmt.Sprintf(resetSequenceSQL, "?", from), table).Error
		}
		if err != nil {
			return gerrors.Wrap(err, "reset sequence "+table)
		}
	}
	return nil
}

// resetSQLite rewrites sqlite_sequence, which holds the last used id rather
// than the next one.
func (r *MaintenanceRepository) resetSQLite(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	for _, table := range sequenceTables {
		err := db.Exec(
			fmt.Sprintf("UPDATE sqlite_sequence SET seq = (SELECT COALESCE(MAX(id), 0) FROM %q) WHERE name = ?", table),
			table,
		).Error
		if err != nil {
			return gerrors.Wrap(err, "reset sequence "+table)
		}
	}
	return nil
}

// Migrate creates the four tables when they are missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return gerrors.Wrap(err, "auto migrate")
	}
	return nil
}
