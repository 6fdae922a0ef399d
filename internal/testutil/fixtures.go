package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const Password = "correct-horse"

func CreateAccount(t testing.TB, db *gorm.DB, username string) *models.Account {
	t.Helper()

	hash, err := auth.HashPassword(Password)
	require.NoError(t, err)

	acc := &models.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     username,
		IsActive:     true,
	}
	require.NoError(t, db.Create(acc).Error)
	return acc
}

func CreateShop(t testing.TB, db *gorm.DB, name string) *models.Shop {
	t.Helper()

	shop := &models.Shop{
		Name:             name,
		Address:          "Rua das Flores, 123",
		Rating:           4.5,
		ReviewsCount:     "10 avaliações",
		Image:            "https://example.com/shop.png",
		Status:           "Aberto",
		OpeningHours:     "09:00 - 20:00",
		Phone:            "(11) 99999-8888",
		Tags:             []string{"Corte", "Barba"},
		MainServicePrice: decimal.RequireFromString("45.00"),
		MainServiceName:  "Corte Degradê",
	}
	require.NoError(t, db.Omit(clause.Associations).Create(shop).Error)
	return shop
}

func CreateService(t testing.TB, db *gorm.DB, shopID uint, name string) *models.Service {
	t.Helper()

	s := &models.Service{
		ShopID:      shopID,
		Name:        name,
		Price:       decimal.RequireFromString("35.00"),
		DurationMin: 30,
		Category:    "Cabelo",
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func CreateBarber(t testing.TB, db *gorm.DB, shopID uint, name string) *models.Barber {
	t.Helper()

	b := &models.Barber{ShopID: shopID, Name: name, Avatar: "https://example.com/a.png"}
	require.NoError(t, db.Create(b).Error)
	return b
}

func CreateBooking(
	t testing.TB,
	db *gorm.DB,
	accountID, shopID uint,
	barberID *uint,
	services ...models.Service,
) *models.Booking {
	t.Helper()

	b := &models.Booking{
		AccountID: accountID,
		ShopID:    shopID,
		BarberID:  barberID,
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:      "09:00",
		Status:    "Pending",
	}
	require.NoError(t, db.Omit(clause.Associations).Create(b).Error)
	for _, s := range services {
		require.NoError(t, db.Exec(
			"INSERT INTO booking_services (booking_id, service_id) VALUES (?, ?)", b.ID, s.ID,
		).Error)
	}
	return b
}

func CreateReview(t testing.TB, db *gorm.DB, accountID, shopID uint, rating int) *models.Review {
	t.Helper()

	r := &models.Review{AccountID: accountID, ShopID: shopID, Rating: rating, Comment: "Top"}
	require.NoError(t, db.Omit(clause.Associations).Create(r).Error)
	return r
}
