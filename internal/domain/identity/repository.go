package identity

import (
	"context"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

type UserRepository interface {
	// Create inserts the user and its primary email address.
	Create(ctx context.Context, user *User) error
	// GetByID returns (nil, nil) when the user does not exist.
	GetByID(ctx context.Context, id vo.ID) (*User, error)
	Update(ctx context.Context, user *User) error
	ListActiveByCompany(ctx context.Context, companyID vo.ID) ([]*User, error)
}
