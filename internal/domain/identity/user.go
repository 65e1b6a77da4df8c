// Package identity models the peer user database whose roster is kept in
// step with subscription seat usage.
package identity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// User is a member of a company in the identity database.
type User struct {
	id         vo.ID
	companyID  vo.ID
	name       string
	surname    string
	cpf        string
	email      string
	admin      bool
	active     bool
	userTypeID vo.ID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUser(companyID vo.ID, name, surname, cpf, email string, admin bool, userTypeID vo.ID) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if companyID.IsZero() {
		return nil, fmt.Errorf("%w: company ID is required", ErrInvalidUser)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidUser)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidUser)
	}
	if userTypeID.IsZero() {
		return nil, fmt.Errorf("%w: user type ID is required", ErrInvalidUser)
	}

	now := time.Now().UTC()
	return &User{
		companyID:  companyID,
		name:       name,
		surname:    strings.TrimSpace(surname),
		cpf:        strings.TrimSpace(cpf),
		email:      email,
		admin:      admin,
		active:     true,
		userTypeID: userTypeID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructUser(id, companyID vo.ID, name, surname, cpf, email string, admin, active bool,
	userTypeID vo.ID, createdAt, updatedAt time.Time) *User {
	return &User{
		id:         id,
		companyID:  companyID,
		name:       name,
		surname:    surname,
		cpf:        cpf,
		email:      email,
		admin:      admin,
		active:     active,
		userTypeID: userTypeID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (u *User) ID() vo.ID {
	return u.id
}

func (u *User) CompanyID() vo.ID {
	return u.companyID
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Surname() string {
	return u.surname
}

func (u *User) CPF() string {
	return u.cpf
}

func (u *User) Email() string {
	return u.email
}

func (u *User) IsAdmin() bool {
	return u.admin
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) UserTypeID() vo.ID {
	return u.userTypeID
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id vo.ID) {
	u.id = id
}

func (u *User) SetAdmin(admin bool) {
	u.admin = admin
	u.updatedAt = time.Now().UTC()
}

// Deactivate soft-deletes the user.
func (u *User) Deactivate() error {
	if !u.active {
		return ErrUserInactive
	}
	u.active = false
	u.updatedAt = time.Now().UTC()
	return nil
}
