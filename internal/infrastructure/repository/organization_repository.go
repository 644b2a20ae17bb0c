package repository

import (
	"context"

	gerrors "github.com/go-faster/errors"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) IDByEmail(ctx context.Context, email string) (int64, bool, error) {
	id, ok, err := firstID(ctx, r.db, &models.Organization{}, "email = ?", email)
	if err != nil {
		return 0, false, gerrors.Wrap(err, "find company by email")
	}
	return id, ok, nil
}

func (r *OrganizationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, &models.Organization{}, id)
}

// OwnedBy reports whether the account already owns a company; the schema
// allows one per account.
func (r *OrganizationRepository) OwnedBy(ctx context.Context, ownerID int64) (bool, error) {
	_, ok, err := firstID(ctx, r.db, &models.Organization{}, "user_id = ?", ownerID)
	if err != nil {
		return false, gerrors.Wrap(err, "find company by owner")
	}
	return ok, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, organization *domain.Organization) error {
	row := toOrganizationModel(*organization)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return gerrors.Wrap(err, "create company")
	}
	organization.ID = row.ID
	return nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	var rows []models.Organization
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, gerrors.Wrap(err, "list companies")
	}

	organizations := make([]domain.Organization, 0, len(rows))
	for _, row := range rows {
		organizations = append(organizations, toOrganization(row))
	}
	return organizations, nil
}
