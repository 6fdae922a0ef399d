package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

type fixture struct {
	db     *gorm.DB
	create *booking.CreateBooking
	update *booking.UpdateBooking
	repo   *repository.BookingGormRepository
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	repo := repository.NewBookingGormRepository(db)
	shops := repository.NewShopGormRepository(db)
	barbers := repository.NewBarberGormRepository(db)
	services := repository.NewServiceGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())

	return fixture{
		db:     db,
		create: booking.NewCreateBooking(repo, shops, barbers, services, dispatcher),
		update: booking.NewUpdateBooking(repo, shops, barbers, services, dispatcher),
		repo:   repo,
	}
}

func TestCreateAssignsOwnerAndDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := testutil.CreateAccount(t, f.db, "ana")
	shop := testutil.CreateShop(t, f.db, "Viking")
	x := testutil.CreateService(t, f.db, shop.ID, "Corte")
	y := testutil.CreateService(t, f.db, shop.ID, "Barba")

	b, err := f.create.Execute(ctx, ana.ID, booking.Input{
		ShopID:     shop.ID,
		ServiceIDs: []uint{x.ID, y.ID, x.ID},
		Date:       "2024-06-01",
		Time:       "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, ana.ID, b.AccountID)
	assert.Equal(t, "Pending", b.Status)
	assert.Nil(t, b.BarberID)

	got, err := f.repo.Get(ctx, b.ID, repository.BookingDocumentScopes()...)
	require.NoError(t, err)
	assert.Len(t, got.Services, 2)

	var audits int64
	require.NoError(t, f.db.Model(&models.AuditLog{}).Where("action = ?", "booking_created").Count(&audits).Error)
	assert.Equal(t, int64(1), audits)
}

func TestCreateReportsEveryBadField(t *testing.T) {
	f := newFixture(t)
	ana := testutil.CreateAccount(t, f.db, "ana")
	missingBarber := uint(404)
	bad := "cheque"

	_, err := f.create.Execute(context.Background(), ana.ID, booking.Input{
		ShopID:        999,
		BarberID:      &missingBarber,
		ServiceIDs:    []uint{12345},
		Date:          "2024-13-40",
		Time:          "",
		PaymentMethod: &bad,
		Status:        "Done",
	})
	require.Error(t, err)

	fields, ok := httperr.AsFields(err)
	require.True(t, ok)
	for _, name := range []string{"shop", "barber", "services", "date", "time", "payment_method", "status"} {
		assert.Contains(t, fields, name)
	}
	assert.Equal(t, `Invalid pk "12345" - object does not exist.`, fields["services"])
}

func TestCreateRequiresServices(t *testing.T) {
	f := newFixture(t)
	ana := testutil.CreateAccount(t, f.db, "ana")
	shop := testutil.CreateShop(t, f.db, "Viking")

	_, err := f.create.Execute(context.Background(), ana.ID, booking.Input{
		ShopID: shop.ID,
		Date:   "2024-06-01",
		Time:   "09:00",
	})
	fields, ok := httperr.AsFields(err)
	require.True(t, ok)
	assert.Equal(t, "This list may not be empty.", fields["services"])
}

func TestUpdateIsOwnerScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := testutil.CreateAccount(t, f.db, "ana")
	bia := testutil.CreateAccount(t, f.db, "bia")
	shop := testutil.CreateShop(t, f.db, "Viking")
	x := testutil.CreateService(t, f.db, shop.ID, "Corte")
	y := testutil.CreateService(t, f.db, shop.ID, "Barba")
	existing := testutil.CreateBooking(t, f.db, ana.ID, shop.ID, nil, *x)

	in, err := f.update.Current(ctx, ana.ID, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{x.ID}, in.ServiceIDs)
	assert.Equal(t, "2024-06-01", in.Date)

	_, err = f.update.Current(ctx, bia.ID, existing.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)

	in.ServiceIDs = []uint{y.ID}
	in.Status = "Confirmed"
	_, err = f.update.Execute(ctx, bia.ID, existing.ID, in)
	assert.ErrorIs(t, err, crud.ErrNotFound)

	b, err := f.update.Execute(ctx, ana.ID, existing.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", b.Status)
	assert.Equal(t, ana.ID, b.AccountID)

	got, err := f.repo.Get(ctx, existing.ID, repository.BookingDocumentScopes()...)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, y.ID, got.Services[0].ID)
}

func TestUpdateResetsOmittedOptionalFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := testutil.CreateAccount(t, f.db, "ana")
	shop := testutil.CreateShop(t, f.db, "Viking")
	x := testutil.CreateService(t, f.db, shop.ID, "Corte")
	barber := testutil.CreateBarber(t, f.db, shop.ID, "Carlos")
	existing := testutil.CreateBooking(t, f.db, ana.ID, shop.ID, &barber.ID, *x)

	b, err := f.update.Execute(ctx, ana.ID, existing.ID, booking.Input{
		ShopID:     shop.ID,
		ServiceIDs: []uint{x.ID},
		Date:       "2024-07-02",
		Time:       "10:30",
	})
	require.NoError(t, err)
	assert.Nil(t, b.BarberID)
	assert.Nil(t, b.PaymentMethod)
	assert.Equal(t, "Pending", b.Status)
	assert.Equal(t, "2024-07-02", b.Date.Format("2006-01-02"))
}

func TestCreateAcceptsReferencesFromAnotherShop(t *testing.T) {
	f := newFixture(t)
	ana := testutil.CreateAccount(t, f.db, "ana")
	viking := testutil.CreateShop(t, f.db, "Viking")
	other := testutil.CreateShop(t, f.db, "Outra")
	barber := testutil.CreateBarber(t, f.db, other.ID, "Carlos")
	svc := testutil.CreateService(t, f.db, other.ID, "Corte")

	b, err := f.create.Execute(context.Background(), ana.ID, booking.Input{
		ShopID:     viking.ID,
		BarberID:   &barber.ID,
		ServiceIDs: []uint{svc.ID},
		Date:       "2024-06-01",
		Time:       "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, viking.ID, b.ShopID)
	require.NotNil(t, b.BarberID)
	assert.Equal(t, barber.ID, *b.BarberID)
}
