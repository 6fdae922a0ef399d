package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AccountGormRepository struct {
	*GormRepository[models.Account]
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{
		GormRepository: NewGormRepository[models.Account](db),
		db:             db,
	}
}

func (r *AccountGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.Account, error) {
	return r.findBy(ctx, "username = ?", strings.TrimSpace(username))
}

func (r *AccountGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Account, error) {
	return r.findBy(ctx, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *AccountGormRepository) findBy(
	ctx context.Context,
	query string,
	arg any,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}
