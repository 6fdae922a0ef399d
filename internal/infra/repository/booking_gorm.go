package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	*GormRepository[models.Booking]
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{
		GormRepository: NewGormRepository[models.Booking](db),
		db:             db,
	}
}

// BookingDocumentScopes loads the shop (with its own nested lists), the
// barber and the services a booking document expands.
func BookingDocumentScopes() []crud.Scope {
	return []crud.Scope{
		crud.Preload("Shop"),
		crud.Preload("Shop.Services", orderByID),
		crud.Preload("Shop.Barbers", orderByID),
		crud.Preload("Shop.Reviews", orderByID),
		crud.Preload("Shop.Reviews.Account"),
		crud.Preload("Barber"),
		crud.Preload("Services", orderByID),
	}
}

// CreateWithServices inserts the booking and links services in one
// transaction.
func (r *BookingGormRepository) CreateWithServices(
	ctx context.Context,
	b *models.Booking,
	services []models.Service,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}
		return replaceServices(tx, b, services)
	})
}

// UpdateWithServices saves the booking columns and, when services is not
// nil, replaces its service links.
func (r *BookingGormRepository) UpdateWithServices(
	ctx context.Context,
	b *models.Booking,
	services []models.Service,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(b).Error; err != nil {
			return err
		}
		if services == nil {
			return nil
		}
		return replaceServices(tx, b, services)
	})
}

func replaceServices(tx *gorm.DB, b *models.Booking, services []models.Service) error {
	if err := tx.Exec(
		"DELETE FROM booking_services WHERE booking_id = ?", b.ID,
	).Error; err != nil {
		return err
	}
	if len(services) == 0 {
		b.Services = []models.Service{}
		return nil
	}

	rows := make([]map[string]any, 0, len(services))
	for _, s := range services {
		rows = append(rows, map[string]any{
			"booking_id": b.ID,
			"service_id": s.ID,
		})
	}
	if err := tx.Table("booking_services").Create(rows).Error; err != nil {
		return err
	}

	b.Services = services
	return nil
}

// Delete removes a booking matching id and scopes together with its
// service links.
func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id uint,
	scopes ...crud.Scope,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := apply(tx, scopes).Select("id").First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return crud.ErrNotFound
			}
			return err
		}

		if err := tx.Exec(
			"DELETE FROM booking_services WHERE booking_id = ?", b.ID,
		).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Booking{}, b.ID).Error
	})
}

var _ crud.Repository[models.Booking] = (*BookingGormRepository)(nil)
