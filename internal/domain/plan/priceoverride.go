package plan

import (
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// PriceOverride is a per-subscription, per-scope extra seat price that takes
// precedence over every other price source.
type PriceOverride struct {
	id             vo.ID
	subscriptionID vo.ID
	scope          vo.SeatScope
	extraSeatPrice int64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPriceOverride(subscriptionID vo.ID, scope vo.SeatScope, extraSeatPrice int64) (*PriceOverride, error) {
	if subscriptionID.IsZero() {
		return nil, invalid("subscription ID is required")
	}
	if !scope.IsValid() {
		return nil, invalid("invalid seat scope: %s", scope)
	}
	if extraSeatPrice < 0 {
		return nil, invalid("extra seat price cannot be negative")
	}

	now := time.Now().UTC()
	return &PriceOverride{
		subscriptionID: subscriptionID,
		scope:          scope,
		extraSeatPrice: extraSeatPrice,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructPriceOverride(id, subscriptionID vo.ID, scope vo.SeatScope, extraSeatPrice int64,
	createdAt, updatedAt time.Time) (*PriceOverride, error) {
	if id.IsZero() {
		return nil, invalid("price override ID cannot be zero")
	}
	return &PriceOverride{
		id:             id,
		subscriptionID: subscriptionID,
		scope:          scope,
		extraSeatPrice: extraSeatPrice,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (o *PriceOverride) ID() vo.ID {
	return o.id
}

func (o *PriceOverride) SubscriptionID() vo.ID {
	return o.subscriptionID
}

func (o *PriceOverride) Scope() vo.SeatScope {
	return o.scope
}

func (o *PriceOverride) ExtraSeatPrice() int64 {
	return o.extraSeatPrice
}

func (o *PriceOverride) CreatedAt() time.Time {
	return o.createdAt
}

func (o *PriceOverride) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *PriceOverride) SetID(id vo.ID) {
	o.id = id
}

func (o *PriceOverride) SetPrice(extraSeatPrice int64) error {
	if extraSeatPrice < 0 {
		return invalid("extra seat price cannot be negative")
	}
	o.extraSeatPrice = extraSeatPrice
	o.updatedAt = time.Now().UTC()
	return nil
}
