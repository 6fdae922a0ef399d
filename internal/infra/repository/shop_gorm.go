package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ShopGormRepository struct {
	*GormRepository[models.Shop]
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{
		GormRepository: NewGormRepository[models.Shop](db),
		db:             db,
	}
}

// ShopDocumentScopes loads everything a shop document inlines.
func ShopDocumentScopes() []crud.Scope {
	return []crud.Scope{
		crud.Preload("Services", orderByID),
		crud.Preload("Barbers", orderByID),
		crud.Preload("Reviews", orderByID),
		crud.Preload("Reviews.Account"),
	}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// FindByName returns the first shop with exactly this name.
func (r *ShopGormRepository) FindByName(
	ctx context.Context,
	name string,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id ASC").
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// Delete removes the shop and everything that depends on it in one
// transaction: booking links, bookings, reviews, barbers and services.
// Bookings of other shops that point at one of its barbers keep the
// booking with the barber cleared.
func (r *ShopGormRepository) Delete(
	ctx context.Context,
	id uint,
	_ ...crud.Scope,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Shop{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return crud.ErrNotFound
		}

		// bookings here, plus bookings elsewhere that use one of its services
		var bookingIDs []uint
		if err := tx.Model(&models.Booking{}).
			Where("shop_id = ?", id).
			Or("id IN (?)", tx.Table("booking_services").
				Select("booking_id").
				Where("service_id IN (?)", tx.Model(&models.Service{}).Select("id").Where("shop_id = ?", id))).
			Pluck("id", &bookingIDs).Error; err != nil {
			return err
		}
		if err := deleteBookings(tx, bookingIDs); err != nil {
			return err
		}

		if err := tx.Model(&models.Booking{}).
			Where("barber_id IN (?)", tx.Model(&models.Barber{}).Select("id").Where("shop_id = ?", id)).
			Update("barber_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("shop_id = ?", id).
			Delete(&models.Review{}).Error; err != nil {
			return err
		}

		if err := tx.Where("shop_id = ?", id).
			Delete(&models.Barber{}).Error; err != nil {
			return err
		}

		if err := tx.Where("shop_id = ?", id).
			Delete(&models.Service{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Shop{}, id).Error
	})
}

var _ crud.Repository[models.Shop] = (*ShopGormRepository)(nil)
