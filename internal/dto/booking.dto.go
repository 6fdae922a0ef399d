package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// BookingDocument is the read shape of a booking: shop, barber and
// services are expanded, the owner stays an id.
type BookingDocument struct {
	ID            uint              `json:"id"`
	User          uint              `json:"user"`
	Shop          ShopDocument      `json:"shop"`
	Barber        *BarberDocument   `json:"barber"`
	Services      []ServiceDocument `json:"services"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	PaymentMethod *string           `json:"payment_method"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

func NewBookingDocument(b models.Booking) BookingDocument {
	doc := BookingDocument{
		ID:            b.ID,
		User:          b.AccountID,
		Shop:          NewShopDocument(b.Shop),
		Services:      NewServiceDocuments(b.Services),
		Date:          b.Date.Format(booking.DateLayout),
		Time:          b.Time,
		PaymentMethod: b.PaymentMethod,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
	if b.Barber != nil {
		barber := NewBarberDocument(*b.Barber)
		doc.Barber = &barber
	}
	return doc
}

func NewBookingDocuments(bookings []models.Booking) []BookingDocument {
	docs := make([]BookingDocument, 0, len(bookings))
	for _, b := range bookings {
		docs = append(docs, NewBookingDocument(b))
	}
	return docs
}
