package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/crud"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
)

func TestGormRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	shop := testutil.CreateShop(t, db, "Barbearia Viking")
	repo := NewBarberGormRepository(db)

	b := &models.Barber{ShopID: shop.ID, Name: "André Silva"}
	require.NoError(t, repo.Create(ctx, b))
	require.NotZero(t, b.ID)

	got, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "André Silva", got.Name)

	got.Name = "André S."
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx, crud.OrderByID())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "André S.", list[0].Name)

	require.NoError(t, repo.Delete(ctx, b.ID))

	_, err = repo.Get(ctx, b.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), crud.ErrNotFound)
}

func TestListEmptyIsNotNil(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewShopGormRepository(db)

	shops, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, shops)
	assert.Len(t, shops, 0)
}

func TestShopRatingBounds(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewShopGormRepository(db)

	for _, rating := range []float64{-0.1, 5.01, 10} {
		shop := &models.Shop{Name: "X", Address: "Y", Rating: rating}
		err := repo.Create(ctx, shop)
		require.Error(t, err, "rating %v", rating)

		fields, ok := httperr.AsFields(err)
		require.True(t, ok)
		assert.Contains(t, fields, "rating")
	}

	for _, rating := range []float64{0, 2.5, 5} {
		shop := &models.Shop{Name: "X", Address: "Y", Rating: rating}
		require.NoError(t, repo.Create(ctx, shop), "rating %v", rating)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	acc := testutil.CreateAccount(t, db, "ana")
	shop := testutil.CreateShop(t, db, "Viking")
	repo := NewGormRepository[models.Review](db)

	for _, rating := range []int{0, 6, -1} {
		err := repo.Create(ctx, &models.Review{AccountID: acc.ID, ShopID: shop.ID, Rating: rating, Comment: "x"})
		assert.Error(t, err, "rating %d", rating)
	}

	ok := &models.Review{AccountID: acc.ID, ShopID: shop.ID, Rating: 5, Comment: "ótimo"}
	require.NoError(t, repo.Create(ctx, ok))

	ok.Rating = 9
	assert.Error(t, repo.Update(ctx, ok))
}

func TestShopDeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	acc := testutil.CreateAccount(t, db, "ana")
	shop := testutil.CreateShop(t, db, "Viking")
	other := testutil.CreateShop(t, db, "Estilo & Navalha")

	svc := testutil.CreateService(t, db, shop.ID, "Corte")
	barber := testutil.CreateBarber(t, db, shop.ID, "Carlos")
	booking := testutil.CreateBooking(t, db, acc.ID, shop.ID, &barber.ID, *svc)
	review := testutil.CreateReview(t, db, acc.ID, shop.ID, 5)

	// booking at another shop pointing at this shop's barber
	foreign := testutil.CreateBooking(t, db, acc.ID, other.ID, &barber.ID)
	// booking at another shop using this shop's service
	borrowed := testutil.CreateBooking(t, db, acc.ID, other.ID, nil, *svc)

	repo := NewShopGormRepository(db)
	require.NoError(t, repo.Delete(ctx, shop.ID))

	_, err := repo.Get(ctx, shop.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)

	_, err = NewServiceGormRepository(db).Get(ctx, svc.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)
	_, err = NewBarberGormRepository(db).Get(ctx, barber.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)
	_, err = NewBookingGormRepository(db).Get(ctx, booking.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)
	_, err = NewGormRepository[models.Review](db).Get(ctx, review.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)
	_, err = NewBookingGormRepository(db).Get(ctx, borrowed.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)

	var links int64
	require.NoError(t, db.Table("booking_services").Count(&links).Error)
	assert.Zero(t, links)

	kept, err := NewBookingGormRepository(db).Get(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.BarberID)

	assert.ErrorIs(t, repo.Delete(ctx, shop.ID), crud.ErrNotFound)
}

func TestBarberDeleteKeepsBooking(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	acc := testutil.CreateAccount(t, db, "ana")
	shop := testutil.CreateShop(t, db, "Viking")
	barber := testutil.CreateBarber(t, db, shop.ID, "Carlos")
	booking := testutil.CreateBooking(t, db, acc.ID, shop.ID, &barber.ID)

	require.NoError(t, NewBarberGormRepository(db).Delete(ctx, barber.ID))

	got, err := NewBookingGormRepository(db).Get(ctx, booking.ID, BookingDocumentScopes()...)
	require.NoError(t, err)
	assert.Nil(t, got.BarberID)
	assert.Nil(t, got.Barber)
}

func TestServiceDeleteRemovesDependentBookings(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	acc := testutil.CreateAccount(t, db, "ana")
	shop := testutil.CreateShop(t, db, "Viking")
	a := testutil.CreateService(t, db, shop.ID, "Corte")
	b := testutil.CreateService(t, db, shop.ID, "Barba")
	dependent := testutil.CreateBooking(t, db, acc.ID, shop.ID, nil, *a, *b)
	unrelated := testutil.CreateBooking(t, db, acc.ID, shop.ID, nil, *b)

	repo := NewServiceGormRepository(db)
	require.NoError(t, repo.Delete(ctx, a.ID))

	bookings := NewBookingGormRepository(db)
	_, err := bookings.Get(ctx, dependent.ID)
	assert.ErrorIs(t, err, crud.ErrNotFound)

	kept, err := bookings.Get(ctx, unrelated.ID, BookingDocumentScopes()...)
	require.NoError(t, err)
	require.Len(t, kept.Services, 1)
	assert.Equal(t, b.ID, kept.Services[0].ID)

	var links int64
	require.NoError(t, db.Table("booking_services").Count(&links).Error)
	assert.Equal(t, int64(1), links)

	assert.ErrorIs(t, repo.Delete(ctx, a.ID), crud.ErrNotFound)
}

func TestBookingServicesAndOwnership(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	ana := testutil.CreateAccount(t, db, "ana")
	bia := testutil.CreateAccount(t, db, "bia")
	shop := testutil.CreateShop(t, db, "Viking")
	x := testutil.CreateService(t, db, shop.ID, "Corte")
	y := testutil.CreateService(t, db, shop.ID, "Barba")

	repo := NewBookingGormRepository(db)
	b := &models.Booking{
		AccountID: ana.ID,
		ShopID:    shop.ID,
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:      "09:00",
		Status:    "Pending",
	}
	require.NoError(t, repo.CreateWithServices(ctx, b, []models.Service{*x, *y}))

	got, err := repo.Get(ctx, b.ID, append(BookingDocumentScopes(), crud.OwnedBy(ana.ID))...)
	require.NoError(t, err)
	assert.Len(t, got.Services, 2)
	assert.Equal(t, "Viking", got.Shop.Name)
	assert.Len(t, got.Shop.Services, 2)
	assert.Equal(t, "2024-06-01", got.Date.Format("2006-01-02"))

	_, err = repo.Get(ctx, b.ID, crud.OwnedBy(bia.ID))
	assert.ErrorIs(t, err, crud.ErrNotFound)

	list, err := repo.List(ctx, crud.OwnedBy(bia.ID))
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.UpdateWithServices(ctx, got, []models.Service{*y}))
	got, err = repo.Get(ctx, b.ID, BookingDocumentScopes()...)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, y.ID, got.Services[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID, crud.OwnedBy(bia.ID)), crud.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, b.ID, crud.OwnedBy(ana.ID)))
}

func TestFindByIDsAndNaturalKeys(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	shop := testutil.CreateShop(t, db, "Viking")
	a := testutil.CreateService(t, db, shop.ID, "Corte")
	testutil.CreateBarber(t, db, shop.ID, "Carlos")

	services := NewServiceGormRepository(db)
	found, err := services.FindByIDs(ctx, []uint{a.ID, 9999})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = services.FindInShop(ctx, shop.ID, "Corte")
	assert.NoError(t, err)
	_, err = services.FindInShop(ctx, shop.ID, "Nope")
	assert.ErrorIs(t, err, crud.ErrNotFound)

	_, err = NewBarberGormRepository(db).FindInShop(ctx, shop.ID, "Carlos")
	assert.NoError(t, err)

	byName, err := NewShopGormRepository(db).FindByName(ctx, "Viking")
	require.NoError(t, err)
	assert.Equal(t, shop.ID, byName.ID)
}

func TestAccountLookup(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	acc := testutil.CreateAccount(t, db, "ana")
	repo := NewAccountGormRepository(db)

	got, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)

	got, err = repo.FindByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, crud.ErrNotFound)

	dup := &models.Account{Username: "ana", Email: "other@example.com", PasswordHash: "x"}
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	fields, ok := httperr.FromStore(err)
	require.True(t, ok)
	assert.Contains(t, fields, "username")
}

func TestTokenGormStore(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	acc := testutil.CreateAccount(t, db, "ana")
	store := NewTokenGormStore(db)

	require.NoError(t, store.Save(ctx, "jti-1", acc.ID, time.Now().Add(time.Hour)))

	ok, err := store.Exists(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Revoke(ctx, "jti-1"))
	ok, err = store.Exists(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "jti-2", acc.ID, time.Now().Add(-time.Minute)))
	ok, err = store.Exists(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
