package dto

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/domain/identity"
)

type UserDTO struct {
	ID         uint64    `json:"user_id"`
	CompanyID  uint64    `json:"company_id"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	CPF        string    `json:"cpf,omitempty"`
	Email      string    `json:"email"`
	Admin      bool      `json:"admin"`
	Active     bool      `json:"active"`
	UserTypeID uint64    `json:"user_type_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	// SeatID is set when the call also admitted a seat.
	SeatID uint64 `json:"plan_usage_id,omitempty"`
}

func ToUserDTO(u *identity.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:         u.ID().Uint64(),
		CompanyID:  u.CompanyID().Uint64(),
		Name:       u.Name(),
		Surname:    u.Surname(),
		CPF:        u.CPF(),
		Email:      u.Email(),
		Admin:      u.IsAdmin(),
		Active:     u.IsActive(),
		UserTypeID: u.UserTypeID().Uint64(),
		CreatedAt:  u.CreatedAt(),
		UpdatedAt:  u.UpdatedAt(),
	}
}
