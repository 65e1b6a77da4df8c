package plan

import (
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// SeatLimitConfig holds, per plan type and scope, the seat maximum and the
// standard price of each seat beyond it.
type SeatLimitConfig struct {
	id             vo.ID
	planTypeID     vo.ID
	scope          vo.SeatScope
	maxSeats       int
	extraSeatPrice int64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewSeatLimitConfig(planTypeID vo.ID, scope vo.SeatScope, maxSeats int, extraSeatPrice int64) (*SeatLimitConfig, error) {
	if planTypeID.IsZero() {
		return nil, invalid("plan type ID is required")
	}
	if !scope.IsValid() {
		return nil, invalid("invalid seat scope: %s", scope)
	}
	if err := validateSeatLimit(maxSeats, extraSeatPrice); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &SeatLimitConfig{
		planTypeID:     planTypeID,
		scope:          scope,
		maxSeats:       maxSeats,
		extraSeatPrice: extraSeatPrice,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructSeatLimitConfig(id, planTypeID vo.ID, scope vo.SeatScope, maxSeats int, extraSeatPrice int64,
	createdAt, updatedAt time.Time) (*SeatLimitConfig, error) {
	if id.IsZero() {
		return nil, invalid("seat limit config ID cannot be zero")
	}
	return &SeatLimitConfig{
		id:             id,
		planTypeID:     planTypeID,
		scope:          scope,
		maxSeats:       maxSeats,
		extraSeatPrice: extraSeatPrice,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func validateSeatLimit(maxSeats int, extraSeatPrice int64) error {
	if maxSeats <= 0 {
		return invalid("number of seats must be greater than zero")
	}
	if extraSeatPrice < 0 {
		return invalid("extra seat price cannot be negative")
	}
	return nil
}

func (c *SeatLimitConfig) ID() vo.ID {
	return c.id
}

func (c *SeatLimitConfig) PlanTypeID() vo.ID {
	return c.planTypeID
}

func (c *SeatLimitConfig) Scope() vo.SeatScope {
	return c.scope
}

func (c *SeatLimitConfig) MaxSeats() int {
	return c.maxSeats
}

func (c *SeatLimitConfig) ExtraSeatPrice() int64 {
	return c.extraSeatPrice
}

func (c *SeatLimitConfig) CreatedAt() time.Time {
	return c.createdAt
}

func (c *SeatLimitConfig) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *SeatLimitConfig) SetID(id vo.ID) {
	c.id = id
}

func (c *SeatLimitConfig) Update(maxSeats int, extraSeatPrice int64) error {
	if err := validateSeatLimit(maxSeats, extraSeatPrice); err != nil {
		return err
	}
	c.maxSeats = maxSeats
	c.extraSeatPrice = extraSeatPrice
	c.updatedAt = time.Now().UTC()
	return nil
}
