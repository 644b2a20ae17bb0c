package repository

import (
	"context"

	gerrors "github.com/go-faster/errors"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) IDByNaturalKey(ctx context.Context, listing domain.Listing) (int64, bool, error) {
	id, ok, err := firstID(ctx, r.db, &models.Listing{},
		"company_id = ? AND title = ? AND publish_date = ?",
		listing.OrganizationID, listing.Title, listing.PublishDate.UTC(),
	)
	if err != nil {
		return 0, false, gerrors.Wrap(err, "find listing")
	}
	return id, ok, nil
}

func (r *ListingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, &models.Listing{}, id)
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	row := toListingModel(*listing)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return gerrors.Wrap(err, "create listing")
	}
	listing.ID = row.ID
	return nil
}

func (r *ListingRepository) List(ctx context.Context) ([]domain.Listing, error) {
	var rows []models.Listing
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, gerrors.Wrap(err, "list listings")
	}

	listings := make([]domain.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, toListing(row))
	}
	return listings, nil
}
