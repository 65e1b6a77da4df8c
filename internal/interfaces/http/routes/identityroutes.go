package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/permission"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/handlers"
)

// IdentityRouteConfig holds dependencies for identity integration routes.
type IdentityRouteConfig struct {
	IdentityHandler *handlers.IdentityHandler
	Guard           *Guard
}

// SetupIdentityRoutes configures the user and seat integration routes.
func SetupIdentityRoutes(r gin.IRouter, cfg *IdentityRouteConfig) {
	h := cfg.IdentityHandler
	write := cfg.Guard.write(permission.ResourceIdentity)

	identity := r.Group("/identity")
	identity.Use(cfg.Guard.Auth.RequireAuth())
	{
		identity.POST("/companies/:companyId/users", write, h.CreateUser)
		identity.POST("/companies/:companyId/sync", write, h.SyncCompany)
		identity.PUT("/users/:userId/admin", write, h.ChangeAdminStatus)
		identity.DELETE("/users/:userId", write, h.RemoveUser)
	}
}
