package usecases

import (
	"errors"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	apperrors "github.com/GraziArcH/domain-sales/internal/shared/errors"
)

// toAppError translates domain failures into application errors. Errors that
// are already AppErrors, and unknown (infrastructure) errors, pass through.
func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}

	msg := err.Error()
	switch {
	case errors.Is(err, plan.ErrInvalidInput), errors.Is(err, vo.ErrInvalidID):
		return apperrors.NewValidationError(msg)

	case errors.Is(err, plan.ErrPlanNotFound),
		errors.Is(err, plan.ErrPlanTypeNotFound),
		errors.Is(err, plan.ErrSeatLimitNotFound),
		errors.Is(err, plan.ErrPriceOverrideNotFound),
		errors.Is(err, plan.ErrSubscriptionNotFound),
		errors.Is(err, plan.ErrNoActiveSubscription),
		errors.Is(err, plan.ErrSeatNotFound),
		errors.Is(err, plan.ErrCancellationNotFound),
		errors.Is(err, plan.ErrPlanReportNotFound):
		return apperrors.NewNotFoundError(msg)

	case errors.Is(err, plan.ErrActiveSubscriptionExists),
		errors.Is(err, plan.ErrDuplicateSeatLimit),
		errors.Is(err, plan.ErrPlanTypeInUse),
		errors.Is(err, plan.ErrSeatAlreadyOccupied):
		return apperrors.NewConflictError(msg)

	case errors.Is(err, plan.ErrSubscriptionInactive),
		errors.Is(err, plan.ErrInvalidStatusTransition),
		errors.Is(err, plan.ErrCancellationProcessed):
		return apperrors.NewInvalidStateError(msg)

	case errors.Is(err, plan.ErrSeatLimitExceeded):
		return apperrors.NewLimitExceededError(msg)
	}
	return err
}
