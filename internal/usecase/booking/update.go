package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UpdateBooking struct {
	repo     Repository
	shops    Exister
	barbers  Exister
	services ServiceFinder
	audit    *audit.Dispatcher
}

func NewUpdateBooking(
	repo Repository,
	shops Exister,
	barbers Exister,
	services ServiceFinder,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:     repo,
		shops:    shops,
		barbers:  barbers,
		services: services,
		audit:    audit,
	}
}

// Current returns the booking as an Input, the base a partial update
// is applied on. Bookings of other accounts are crud.ErrNotFound.
func (uc *UpdateBooking) Current(
	ctx context.Context,
	accountID uint,
	bookingID uint,
) (Input, error) {

	b, err := uc.repo.Get(ctx, bookingID,
		crud.OwnedBy(accountID),
		crud.Preload("Services"),
	)
	if err != nil {
		return Input{}, err
	}

	ids := make([]uint, 0, len(b.Services))
	for _, s := range b.Services {
		ids = append(ids, s.ID)
	}

	return Input{
		ShopID:        b.ShopID,
		BarberID:      b.BarberID,
		ServiceIDs:    ids,
		Date:          b.Date.Format(domain.DateLayout),
		Time:          b.Time,
		PaymentMethod: b.PaymentMethod,
		Status:        b.Status,
	}, nil
}

// Execute replaces the booking's fields and services. Optional fields
// left out reset: no barber, no payment method, initial status. The
// owner never changes.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	accountID uint,
	bookingID uint,
	in Input,
) (*models.Booking, error) {

	b, err := uc.repo.Get(ctx, bookingID, crud.OwnedBy(accountID))
	if err != nil {
		return nil, err
	}

	res, err := resolve(ctx, in, uc.shops, uc.barbers, uc.services)
	if err != nil {
		return nil, err
	}

	b.ShopID = in.ShopID
	b.BarberID = in.BarberID
	b.Date = res.date
	b.Time = strings.TrimSpace(in.Time)
	b.PaymentMethod = in.PaymentMethod
	b.Status = in.Status
	if b.Status == "" {
		b.Status = string(domain.InitialStatus())
	}

	if err := uc.repo.UpdateWithServices(ctx, b, res.services); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		AccountID: &accountID,
		Action:    "booking_updated",
		Entity:    "booking",
		EntityID:  &b.ID,
		Metadata: map[string]any{
			"status": b.Status,
		},
	})

	return b, nil
}
