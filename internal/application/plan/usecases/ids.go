package usecases

import (
	"fmt"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	apperrors "github.com/GraziArcH/domain-sales/internal/shared/errors"
)

// parseID validates a raw identifier from a command.
func parseID(field string, v int64) (vo.ID, error) {
	id, err := vo.NewID(v)
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("invalid %s", field), err.Error())
	}
	return id, nil
}

func parseScope(admin bool) vo.SeatScope {
	return vo.ScopeFromAdmin(admin)
}
