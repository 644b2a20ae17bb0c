package repository

import (
	"context"
	"time"

	gerrors "github.com/go-faster/errors"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

func firstID(ctx context.Context, db *gorm.DB, model any, query string, args ...any) (int64, bool, error) {
	var ids []int64
	err := db.WithContext(ctx).
		Model(model).
		Where(query, args...).
		Order("id").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

func existsByID(ctx context.Context, db *gorm.DB, model any, id int64) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, gerrors.Wrap(err, "check id")
	}
	return n > 0, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

func fromNullableTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}

func toAccountModel(a domain.Account) models.Account {
	return models.Account{
		Password:    a.Password,
		LastLogin:   nullableTime(a.LastLogin),
		IsSuperuser: a.IsSuperuser,
		Username:    a.Username,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		IsStaff:     a.IsStaff,
		IsActive:    a.IsActive,
		DateJoined:  a.DateJoined.UTC(),
	}
}

func toAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:          m.ID,
		Password:    m.Password,
		LastLogin:   fromNullableTime(m.LastLogin),
		IsSuperuser: m.IsSuperuser,
		Username:    m.Username,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		IsStaff:     m.IsStaff,
		IsActive:    m.IsActive,
		DateJoined:  m.DateJoined.UTC(),
	}
}

func toOrganizationModel(o domain.Organization) models.Organization {
	return models.Organization{
		Name:        o.Name,
		Logo:        o.Logo,
		Industry:    o.Industry,
		Services:    o.Services,
		Description: o.Description,
		Phone:       o.Phone,
		Email:       o.Email,
		CreateDate:  o.CreateDate.UTC(),
		UserID:      o.OwnerID,
	}
}

func toOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		ID:          m.ID,
		Name:        m.Name,
		Logo:        m.Logo,
		Industry:    m.Industry,
		Services:    m.Services,
		Description: m.Description,
		Phone:       m.Phone,
		Email:       m.Email,
		CreateDate:  m.CreateDate.UTC(),
		OwnerID:     m.UserID,
	}
}

func toListingModel(l domain.Listing) models.Listing {
	return models.Listing{
		CompanyID:   l.OrganizationID,
		Title:       l.Title,
		Industry:    l.Industry,
		Budget:      l.Budget,
		Duration:    l.Duration,
		Description: l.Description,
		Requirement: l.Requirement,
		PublishDate: l.PublishDate.UTC(),
		IsActive:    l.IsActive,
	}
}

func toListing(m models.Listing) domain.Listing {
	return domain.Listing{
		ID:             m.ID,
		OrganizationID: m.CompanyID,
		Title:          m.Title,
		Industry:       m.Industry,
		Budget:         m.Budget,
		Duration:       m.Duration,
		Description:    m.Description,
		Requirement:    m.Requirement,
		PublishDate:    m.PublishDate.UTC(),
		IsActive:       m.IsActive,
	}
}

func toApplicationModel(a domain.Application) models.Application {
	return models.Application{
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Message:   a.Message,
		CV:        a.CV,
		ApplyDate: a.ApplyDate.UTC(),
		ListingID: a.ListingID,
		UserID:    a.ApplicantID,
	}
}

func toApplication(m models.Application) domain.Application {
	return domain.Application{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Message:     m.Message,
		CV:          m.CV,
		ApplyDate:   m.ApplyDate.UTC(),
		ListingID:   m.ListingID,
		ApplicantID: m.UserID,
	}
}
