package usecases

import (
	"errors"

	"github.com/GraziArcH/domain-sales/internal/domain/identity"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	apperrors "github.com/GraziArcH/domain-sales/internal/shared/errors"
)

func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	switch {
	case errors.Is(err, identity.ErrInvalidUser), errors.Is(err, vo.ErrInvalidID):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, identity.ErrUserNotFound):
		return apperrors.NewNotFoundError(err.Error())
	case errors.Is(err, identity.ErrUserInactive):
		return apperrors.NewInvalidStateError(err.Error())
	}
	return err
}

func parseID(field string, v int64) (vo.ID, error) {
	id, err := vo.NewID(v)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid "+field, err.Error())
	}
	return id, nil
}
