package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Service is something a shop sells. ShopID is the only link to the shop.
type Service struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"not null;index" json:"shop"`

	Name        string           `gorm:"size:100;not null" json:"name"`
	Price       decimal.Decimal  `gorm:"type:numeric(6,2);not null" json:"price"`
	DurationMin int              `gorm:"not null" json:"duration_min"`
	Description string           `gorm:"type:text" json:"description"`
	Category    string           `gorm:"size:20;not null;default:'Outros'" json:"category"`
	Discount    *decimal.Decimal `gorm:"type:numeric(6,2)" json:"discount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeSave(tx *gorm.DB) error {
	if s.Category == "" {
		s.Category = string(catalog.DefaultCategory())
	}
	if !catalog.ServiceCategory(s.Category).Valid() {
		return httperr.ErrField("category", "\""+s.Category+"\" is not a valid choice.")
	}
	return nil
}
