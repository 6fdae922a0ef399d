package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Repository is the booking store the use cases write through.
type Repository interface {
	Get(ctx context.Context, id uint, scopes ...crud.Scope) (*models.Booking, error)
	CreateWithServices(ctx context.Context, b *models.Booking, services []models.Service) error
	UpdateWithServices(ctx context.Context, b *models.Booking, services []models.Service) error
}

type Exister interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type ServiceFinder interface {
	FindByIDs(ctx context.Context, ids []uint) ([]models.Service, error)
}
