package dto

import "github.com/BruksfildServices01/barber-booking/internal/models"

// AccountPublic is the part of an account other callers may see.
type AccountPublic struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewAccountPublic(a models.Account) AccountPublic {
	return AccountPublic{
		ID:        a.ID,
		Email:     a.Email,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
