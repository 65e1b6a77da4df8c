package plan

import (
	"strings"
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// Cancellation is a two-phase cancellation of a subscription: it is created in
// the requested state and moved to confirmed exactly once.
//
// cancelledAt is normally stamped on confirmation. Records created with
// stampOnRequest carry a cancelledAt from the request onwards; their state is
// still decided by status alone.
type Cancellation struct {
	id             vo.ID
	subscriptionID vo.ID
	reason         string
	details        map[string]any
	status         vo.CancellationStatus
	requestedBy    vo.ID
	confirmedBy    *vo.ID
	requestedAt    time.Time
	cancelledAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCancellation(subscriptionID, requestedBy vo.ID, reason string, details map[string]any,
	stampOnRequest bool) (*Cancellation, error) {
	if subscriptionID.IsZero() {
		return nil, invalid("subscription ID is required")
	}
	if requestedBy.IsZero() {
		return nil, invalid("requesting user ID is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, invalid("cancellation reason is required")
	}

	now := time.Now().UTC()
	c := &Cancellation{
		subscriptionID: subscriptionID,
		reason:         reason,
		details:        details,
		status:         vo.CancellationRequested,
		requestedBy:    requestedBy,
		requestedAt:    now,
		createdAt:      now,
		updatedAt:      now,
	}
	if stampOnRequest {
		c.cancelledAt = &now
	}
	return c, nil
}

func ReconstructCancellation(id, subscriptionID vo.ID, reason string, details map[string]any,
	status vo.CancellationStatus, requestedBy vo.ID, confirmedBy *vo.ID, requestedAt time.Time,
	cancelledAt *time.Time, createdAt, updatedAt time.Time) (*Cancellation, error) {
	if id.IsZero() {
		return nil, invalid("cancellation ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, invalid("invalid cancellation status: %s", status)
	}
	return &Cancellation{
		id:             id,
		subscriptionID: subscriptionID,
		reason:         reason,
		details:        details,
		status:         status,
		requestedBy:    requestedBy,
		confirmedBy:    confirmedBy,
		requestedAt:    requestedAt,
		cancelledAt:    cancelledAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (c *Cancellation) ID() vo.ID {
	return c.id
}

func (c *Cancellation) SubscriptionID() vo.ID {
	return c.subscriptionID
}

func (c *Cancellation) Reason() string {
	return c.reason
}

func (c *Cancellation) Details() map[string]any {
	return c.details
}

func (c *Cancellation) Status() vo.CancellationStatus {
	return c.status
}

func (c *Cancellation) RequestedBy() vo.ID {
	return c.requestedBy
}

func (c *Cancellation) ConfirmedBy() *vo.ID {
	return c.confirmedBy
}

func (c *Cancellation) RequestedAt() time.Time {
	return c.requestedAt
}

func (c *Cancellation) CancelledAt() *time.Time {
	return c.cancelledAt
}

func (c *Cancellation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Cancellation) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Cancellation) SetID(id vo.ID) {
	c.id = id
}

func (c *Cancellation) IsConfirmed() bool {
	return c.status == vo.CancellationConfirmed
}

// Confirm moves the cancellation to confirmed. A second call fails with
// ErrCancellationProcessed.
func (c *Cancellation) Confirm(confirmedBy vo.ID) error {
	if c.IsConfirmed() {
		return ErrCancellationProcessed
	}
	if confirmedBy.IsZero() {
		return invalid("confirming user ID is required")
	}

	now := time.Now().UTC()
	c.status = vo.CancellationConfirmed
	c.confirmedBy = &confirmedBy
	if c.cancelledAt == nil {
		c.cancelledAt = &now
	}
	c.updatedAt = now
	return nil
}
