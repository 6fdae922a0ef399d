package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CreateBooking struct {
	repo     Repository
	shops    Exister
	barbers  Exister
	services ServiceFinder
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo Repository,
	shops Exister,
	barbers Exister,
	services ServiceFinder,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		shops:    shops,
		barbers:  barbers,
		services: services,
		audit:    audit,
	}
}

// Execute stores a booking owned by accountID. Barber, services and shop
// are not checked against each other.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	accountID uint,
	in Input,
) (*models.Booking, error) {

	res, err := resolve(ctx, in, uc.shops, uc.barbers, uc.services)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}

	b := &models.Booking{
		AccountID:     accountID,
		ShopID:        in.ShopID,
		BarberID:      in.BarberID,
		Date:          res.date,
		Time:          strings.TrimSpace(in.Time),
		PaymentMethod: in.PaymentMethod,
		Status:        status,
	}

	if err := uc.repo.CreateWithServices(ctx, b, res.services); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		AccountID: &accountID,
		Action:    "booking_created",
		Entity:    "booking",
		EntityID:  &b.ID,
		Metadata: map[string]any{
			"shop":     b.ShopID,
			"services": len(res.services),
		},
	})

	return b, nil
}
