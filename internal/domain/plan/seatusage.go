package plan

import (
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// SeatUsage is one occupied seat of a subscription.
type SeatUsage struct {
	id             vo.ID
	subscriptionID vo.ID
	userID         vo.ID
	scope          vo.SeatScope
	createdAt      time.Time
	updatedAt      time.Time
}

func NewSeatUsage(subscriptionID, userID vo.ID, scope vo.SeatScope) (*SeatUsage, error) {
	if subscriptionID.IsZero() {
		return nil, invalid("subscription ID is required")
	}
	if userID.IsZero() {
		return nil, invalid("user ID is required")
	}
	if !scope.IsValid() {
		return nil, invalid("invalid seat scope: %s", scope)
	}

	now := time.Now().UTC()
	return &SeatUsage{
		subscriptionID: subscriptionID,
		userID:         userID,
		scope:          scope,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructSeatUsage(id, subscriptionID, userID vo.ID, scope vo.SeatScope, createdAt, updatedAt time.Time) (*SeatUsage, error) {
	if id.IsZero() {
		return nil, invalid("seat usage ID cannot be zero")
	}
	return &SeatUsage{
		id:             id,
		subscriptionID: subscriptionID,
		userID:         userID,
		scope:          scope,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *SeatUsage) ID() vo.ID {
	return u.id
}

func (u *SeatUsage) SubscriptionID() vo.ID {
	return u.subscriptionID
}

func (u *SeatUsage) UserID() vo.ID {
	return u.userID
}

func (u *SeatUsage) Scope() vo.SeatScope {
	return u.scope
}

func (u *SeatUsage) IsAdmin() bool {
	return u.scope.IsAdmin()
}

func (u *SeatUsage) CreatedAt() time.Time {
	return u.createdAt
}

func (u *SeatUsage) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *SeatUsage) SetID(id vo.ID) {
	u.id = id
}

// ChangeScope moves the seat to another scope. It returns false when the
// seat is already in that scope.
func (u *SeatUsage) ChangeScope(scope vo.SeatScope) (bool, error) {
	if !scope.IsValid() {
		return false, invalid("invalid seat scope: %s", scope)
	}
	if u.scope == scope {
		return false, nil
	}
	u.scope = scope
	u.updatedAt = time.Now().UTC()
	return true, nil
}
