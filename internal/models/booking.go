package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccountID uint     `gorm:"not null;index" json:"user"`
	Account   *Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ShopID uint `gorm:"not null;index" json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"shop"`

	// BarberID clears when the barber is deleted; the booking stays.
	BarberID *uint   `gorm:"index" json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	Services []Service `gorm:"many2many:booking_services;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`

	Date          time.Time `gorm:"type:date;not null" json:"date"`
	Time          string    `gorm:"size:10;not null" json:"time"`
	PaymentMethod *string   `gorm:"size:50" json:"payment_method"`
	Status        string    `gorm:"size:20;not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
