package repository

import (
	"context"

	gerrors "github.com/go-faster/errors"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) IDByNaturalKey(ctx context.Context, application domain.Application) (int64, bool, error) {
	id, ok, err := firstID(ctx, r.db, &models.Application{},
		"listing_id = ? AND user_id = ? AND apply_date = ?",
		application.ListingID, application.ApplicantID, application.ApplyDate.UTC(),
	)
	if err != nil {
		return 0, false, gerrors.Wrap(err, "find apply")
	}
	return id, ok, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	row := toApplicationModel(*application)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return gerrors.Wrap(err, "create apply")
	}
	application.ID = row.ID
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	var rows []models.Application
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, gerrors.Wrap(err, "list applies")
	}

	applications := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		applications = append(applications, toApplication(row))
	}
	return applications, nil
}
