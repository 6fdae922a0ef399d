package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// --------------------------------------------------
// Service
// --------------------------------------------------

type ServiceGormRepository struct {
	*GormRepository[models.Service]
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{
		GormRepository: NewGormRepository[models.Service](db),
		db:             db,
	}
}

// FindByIDs returns the services among ids that exist, ordered by id.
func (r *ServiceGormRepository) FindByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	services := make([]models.Service, 0, len(ids))
	if len(ids) == 0 {
		return services, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// FindInShop looks a service up by its natural key (shop, name).
func (r *ServiceGormRepository) FindInShop(
	ctx context.Context,
	shopID uint,
	name string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND name = ?", shopID, name).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// Delete drops the service together with every booking that uses it.
func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	id uint,
	_ ...crud.Scope,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Service{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return crud.ErrNotFound
		}

		var bookingIDs []uint
		if err := tx.Table("booking_services").
			Where("service_id = ?", id).
			Distinct().
			Pluck("booking_id", &bookingIDs).Error; err != nil {
			return err
		}
		if err := deleteBookings(tx, bookingIDs); err != nil {
			return err
		}

		return tx.Delete(&models.Service{}, id).Error
	})
}

// deleteBookings removes the bookings and all of their service links.
func deleteBookings(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Exec(
		"DELETE FROM booking_services WHERE booking_id IN ?", ids,
	).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Booking{}).Error
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

type BarberGormRepository struct {
	*GormRepository[models.Barber]
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{
		GormRepository: NewGormRepository[models.Barber](db),
		db:             db,
	}
}

func (r *BarberGormRepository) FindInShop(
	ctx context.Context,
	shopID uint,
	name string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND name = ?", shopID, name).
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &barber, nil
}

// Delete clears the barber on its bookings, then removes the barber.
func (r *BarberGormRepository) Delete(
	ctx context.Context,
	id uint,
	_ ...crud.Scope,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).
			Where("barber_id = ?", id).
			Update("barber_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Barber{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return crud.ErrNotFound
		}
		return nil
	})
}

var (
	_ crud.Repository[models.Service] = (*ServiceGormRepository)(nil)
	_ crud.Repository[models.Barber]  = (*BarberGormRepository)(nil)
)
