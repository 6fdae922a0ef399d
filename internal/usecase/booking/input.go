package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Input is a booking write. The owner never comes from here.
type Input struct {
	ShopID        uint
	BarberID      *uint
	ServiceIDs    []uint
	Date          string
	Time          string
	PaymentMethod *string
	Status        string
}

type resolved struct {
	date     time.Time
	services []models.Service
}

// resolve checks every reference and format in one pass so the caller
// gets all offending fields at once.
func resolve(
	ctx context.Context,
	in Input,
	shops Exister,
	barbers Exister,
	services ServiceFinder,
) (*resolved, error) {

	fields := httperr.FieldErrors{}
	out := &resolved{}

	if in.ShopID == 0 {
		fields["shop"] = "This field is required."
	} else {
		ok, err := shops.Exists(ctx, in.ShopID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fields["shop"] = invalidPK(in.ShopID)
		}
	}

	if in.BarberID != nil {
		ok, err := barbers.Exists(ctx, *in.BarberID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fields["barber"] = invalidPK(*in.BarberID)
		}
	}

	if len(in.ServiceIDs) == 0 {
		fields["services"] = "This list may not be empty."
	} else {
		ids := dedupe(in.ServiceIDs)
		found, err := services.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if missing := firstMissing(ids, found); missing != 0 {
			fields["services"] = invalidPK(missing)
		}
		out.services = found
	}

	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		fields["date"] = "Date has wrong format. Use YYYY-MM-DD."
	}
	out.date = date

	label := strings.TrimSpace(in.Time)
	switch {
	case label == "":
		fields["time"] = "This field may not be blank."
	case len(label) > domain.MaxTimeLabel:
		fields["time"] = fmt.Sprintf("Ensure this field has no more than %d characters.", domain.MaxTimeLabel)
	}

	if in.PaymentMethod != nil && !domain.PaymentMethod(*in.PaymentMethod).Valid() {
		fields["payment_method"] = fmt.Sprintf("%q is not a valid choice.", *in.PaymentMethod)
	}
	if in.Status != "" && !domain.Status(in.Status).Valid() {
		fields["status"] = fmt.Sprintf("%q is not a valid choice.", in.Status)
	}

	if len(fields) > 0 {
		return nil, fields
	}
	return out, nil
}

func invalidPK(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func firstMissing(ids []uint, found []models.Service) uint {
	have := make(map[uint]struct{}, len(found))
	for _, s := range found {
		have[s.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return id
		}
	}
	return 0
}
