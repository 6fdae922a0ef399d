package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
)

// GormRepository implements crud.Repository for any gorm model with a
// uint primary key named id.
type GormRepository[T any] struct {
	db *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func apply(db *gorm.DB, scopes []crud.Scope) *gorm.DB {
	for _, s := range scopes {
		db = s(db)
	}
	return db
}

func (r *GormRepository[T]) List(
	ctx context.Context,
	scopes ...crud.Scope,
) ([]T, error) {

	items := make([]T, 0)
	if err := apply(r.db.WithContext(ctx), scopes).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository[T]) Get(
	ctx context.Context,
	id uint,
	scopes ...crud.Scope,
) (*T, error) {

	var item T
	if err := apply(r.db.WithContext(ctx), scopes).
		First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts the row only; associations are written by the caller.
func (r *GormRepository[T]) Create(
	ctx context.Context,
	entity *T,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(entity).Error
}

func (r *GormRepository[T]) Update(
	ctx context.Context,
	entity *T,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(entity).Error
}

func (r *GormRepository[T]) Delete(
	ctx context.Context,
	id uint,
	scopes ...crud.Scope,
) error {

	var item T
	res := apply(r.db.WithContext(ctx), scopes).Delete(&item, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return crud.ErrNotFound
	}
	return nil
}

// Exists reports whether a row with id is present.
func (r *GormRepository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	var item T
	if err := r.db.WithContext(ctx).
		Model(&item).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ crud.Repository[struct{}] = (*GormRepository[struct{}])(nil)
