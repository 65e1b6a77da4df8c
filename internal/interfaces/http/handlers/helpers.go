package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/shared/biztime"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

// bindJSON binds the request body and writes the error response on failure.
func bindJSON(c *gin.Context, log logger.Interface, req interface{}, operation string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warnw("invalid request body", "operation", operation, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return false
	}
	return true
}

// parseScopeParam reads an "admin" or "regular" path segment as the admin flag.
func parseScopeParam(c *gin.Context, name string) (bool, error) {
	scope, err := vo.ParseSeatScope(c.Param(name))
	if err != nil {
		return false, errors.NewValidationError("scope must be admin or regular", err.Error())
	}
	return scope.IsAdmin(), nil
}

// parseDate accepts RFC3339 or YYYY-MM-DD; a plain end date means the end of that business day.
func parseDate(field, value string, endOfDay bool) (time.Time, error) {
	t, err := biztime.ParseDate(value, endOfDay)
	if err != nil {
		return time.Time{}, errors.NewValidationError(fmt.Sprintf("invalid %s", field), err.Error())
	}
	return t, nil
}
