package authorization

import (
	"github.com/gin-gonic/gin"
)

// Context keys set by the authentication middleware.
const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// ActorID returns the authenticated user id, zero when unauthenticated.
func ActorID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

// Role returns the authenticated role, empty when unauthenticated.
func Role(c *gin.Context) UserRole {
	return UserRole(c.GetString(ContextRole))
}

// SetPrincipal records the authenticated user for downstream handlers.
func SetPrincipal(c *gin.Context, userID uint64, role UserRole) {
	c.Set(ContextUserID, userID)
	c.Set(ContextRole, role.String())
}
