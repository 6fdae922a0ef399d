package models

import "time"

type Barber struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"not null;index" json:"shop"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Avatar string `gorm:"size:1000" json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
