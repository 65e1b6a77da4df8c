package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
)

// ParseIDParam parses a positive integer identifier from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "companyId").
// entityName is used in error messages (e.g., "plan", "company").
func ParseIDParam(c *gin.Context, paramName, entityName string) (int64, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := vo.ParseID(raw)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName), err.Error())
	}

	return int64(id.Uint64()), nil
}
