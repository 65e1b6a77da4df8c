package plan

import (
	"errors"
	"fmt"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

var (
	ErrInvalidInput             = errors.New("invalid input")
	ErrPlanNotFound             = errors.New("plan not found")
	ErrPlanTypeNotFound         = errors.New("plan type not found")
	ErrPlanTypeInUse            = errors.New("plan type still referenced by plans")
	ErrSeatLimitNotFound        = errors.New("seat limit config not found")
	ErrDuplicateSeatLimit       = errors.New("seat limit config already exists for plan type and scope")
	ErrPriceOverrideNotFound    = errors.New("price override not found")
	ErrSubscriptionNotFound     = errors.New("company subscription not found")
	ErrNoActiveSubscription     = errors.New("no active subscription for company")
	ErrActiveSubscriptionExists = errors.New("company already has an active subscription")
	ErrSubscriptionInactive     = errors.New("company subscription is not active")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrSeatNotFound             = errors.New("user seat not found in subscription")
	ErrSeatAlreadyOccupied      = errors.New("user already occupies a seat in subscription")
	ErrSeatLimitExceeded        = errors.New("seat limit exceeded")
	ErrCancellationNotFound     = errors.New("cancellation not found")
	ErrCancellationProcessed    = errors.New("cancellation already processed")
	ErrPlanReportNotFound       = errors.New("plan report not found")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func ErrInvalidTransition(from, to vo.SubscriptionStatus) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}

// ErrLimitWouldBeExceeded reports that adding seats would take scope past limit.
func ErrLimitWouldBeExceeded(scope vo.SeatScope, limit, wouldBe int) error {
	return fmt.Errorf("%w: %s limit (%d) would be exceeded (%d)", ErrSeatLimitExceeded, scope.Label(), limit, wouldBe)
}

// ErrLimitReached reports that scope has no free seat left.
func ErrLimitReached(scope vo.SeatScope, limit int) error {
	return fmt.Errorf("%w: %s limit (%d) reached", ErrSeatLimitExceeded, scope.Label(), limit)
}
