package repository

import (
	"context"

	gerrors "github.com/go-faster/errors"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) IDByUsername(ctx context.Context, username string) (int64, bool, error) {
	id, ok, err := firstID(ctx, r.db, &models.Account{}, "username = ?", username)
	if err != nil {
		return 0, false, gerrors.Wrap(err, "find user by username")
	}
	return id, ok, nil
}

func (r *AccountRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, &models.Account{}, id)
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	row := toAccountModel(*account)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return gerrors.Wrap(err, "create user")
	}
	account.ID = row.ID
	return nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	var rows []models.Account
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, gerrors.Wrap(err, "list users")
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, toAccount(row))
	}
	return accounts, nil
}
