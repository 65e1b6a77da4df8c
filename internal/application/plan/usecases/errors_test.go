package usecases

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	apperrors "github.com/GraziArcH/domain-sales/internal/shared/errors"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.ErrorType
	}{
		{"invalid id", fmt.Errorf("%w: 0", vo.ErrInvalidID), apperrors.ErrorTypeValidation},
		{"missing plan", plan.ErrPlanNotFound, apperrors.ErrorTypeNotFound},
		{"no active subscription", plan.ErrNoActiveSubscription, apperrors.ErrorTypeNotFound},
		{"duplicate active", plan.ErrActiveSubscriptionExists, apperrors.ErrorTypeConflict},
		{"inactive", plan.ErrSubscriptionInactive, apperrors.ErrorTypeInvalidState},
		{"processed", plan.ErrCancellationProcessed, apperrors.ErrorTypeInvalidState},
		{"limit", plan.ErrLimitReached(vo.ScopeAdmin, 3), apperrors.ErrorTypeLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperrors.GetAppError(toAppError(tt.err))
			if assert.NotNil(t, appErr) {
				assert.Equal(t, tt.want, appErr.Type)
			}
		})
	}

	raw := errors.New("connection refused")
	assert.Same(t, raw, toAppError(raw))
	assert.NoError(t, toAppError(nil))
}
