package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccountID uint    `gorm:"not null;index" json:"user_id"`
	Account   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ShopID uint `gorm:"not null;index" json:"shop"`

	Rating  int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.Rating < catalog.MinReviewRating || r.Rating > catalog.MaxReviewRating {
		return httperr.ErrField("rating", "Ensure this value is between 1 and 5.")
	}
	return nil
}
