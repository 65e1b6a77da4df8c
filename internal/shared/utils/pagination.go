package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/shared/errors"
)

// OptionalIntQuery parses an integer query parameter, nil when absent.
// Range checks are left to the caller.
func OptionalIntQuery(c *gin.Context, key string) (*int, error) {
	val, ok := c.GetQuery(key)
	if !ok || val == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be an integer", key))
	}
	return &n, nil
}

// OptionalInt64Query parses an int64 query parameter, nil when absent.
func OptionalInt64Query(c *gin.Context, key string) (*int64, error) {
	val, ok := c.GetQuery(key)
	if !ok || val == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be an integer", key))
	}
	return &n, nil
}

// OptionalBoolQuery parses a boolean query parameter, nil when absent.
func OptionalBoolQuery(c *gin.Context, key string) (*bool, error) {
	val, ok := c.GetQuery(key)
	if !ok || val == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be true or false", key))
	}
	return &b, nil
}

// LimitQuery parses a positive limit with a default, capped at max.
func LimitQuery(c *gin.Context, key string, defaultVal, max int) (int, error) {
	n, err := OptionalIntQuery(c, key)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return defaultVal, nil
	}
	if *n < 1 {
		return 0, errors.NewValidationError(fmt.Sprintf("%s must be greater than 0", key))
	}
	if *n > max {
		return max, nil
	}
	return *n, nil
}
