package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string  `gorm:"size:255;not null;index" json:"name"`
	Address      string  `gorm:"size:255;not null" json:"address"`
	Rating       float64 `gorm:"not null;default:0;check:chk_shops_rating,rating >= 0 AND rating <= 5" json:"rating"`
	ReviewsCount string  `gorm:"size:50;default:'0 avaliações'" json:"reviews_count"`
	Image        string  `gorm:"size:1000" json:"image"`
	Logo         *string `gorm:"size:1000" json:"logo"`
	Status       string  `gorm:"size:20;not null;default:'Aberto'" json:"status"`
	OpeningHours string  `gorm:"size:100" json:"opening_hours"`
	Phone        string  `gorm:"size:20" json:"phone"`

	Tags datatypes.JSONSlice[string] `json:"tags"`

	MainServicePrice decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0" json:"main_service_price"`
	MainServiceName  string          `gorm:"size:100" json:"main_service_name"`

	Services []Service `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`
	Barbers  []Barber  `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barbers"`
	Reviews  []Review  `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave keeps the rating inside [0,5] whatever path writes the row.
func (s *Shop) BeforeSave(tx *gorm.DB) error {
	if s.Rating < catalog.MinShopRating || s.Rating > catalog.MaxShopRating {
		return httperr.ErrField("rating", "Ensure this value is between 0 and 5.")
	}
	if s.Status == "" {
		s.Status = string(catalog.DefaultShopStatus())
	}
	if !catalog.ShopStatus(s.Status).Valid() {
		return httperr.ErrField("status", "\""+s.Status+"\" is not a valid choice.")
	}
	if s.Tags == nil {
		s.Tags = datatypes.JSONSlice[string]{}
	}
	return nil
}
