// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/permission"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/handlers"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/middleware"
)

// Guard bundles the authentication and permission middleware shared by the
// protected route groups.
type Guard struct {
	Auth       *middleware.AuthMiddleware
	Permission *middleware.PermissionMiddleware
}

func (g *Guard) read(resource string) gin.HandlerFunc {
	return g.Permission.RequirePermission(resource, permission.ActionRead)
}

func (g *Guard) write(resource string) gin.HandlerFunc {
	return g.Permission.RequirePermission(resource, permission.ActionWrite)
}

// CatalogRouteConfig holds dependencies for the admin catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
	Guard          *Guard
}

// SetupCatalogRoutes configures plan type, plan, seat limit and report link routes.
func SetupCatalogRoutes(r gin.IRouter, cfg *CatalogRouteConfig) {
	h := cfg.CatalogHandler
	read := cfg.Guard.read(permission.ResourceCatalog)
	write := cfg.Guard.write(permission.ResourceCatalog)

	catalog := r.Group("")
	catalog.Use(cfg.Guard.Auth.RequireAuth())
	{
		planTypes := catalog.Group("/plan-types")
		{
			planTypes.GET("", read, h.ListPlanTypes)
			planTypes.POST("", write, h.CreatePlanType)
			planTypes.GET("/:id", read, h.GetPlanType)
			planTypes.PUT("/:id", write, h.UpdatePlanType)
			planTypes.DELETE("/:id", write, h.DeletePlanType)

			planTypes.GET("/:id/seat-limits", read, h.ListSeatLimits)
			planTypes.POST("/:id/seat-limits", write, h.CreateSeatLimit)
			planTypes.GET("/:id/seat-limits/:scope", read, h.GetSeatLimitByScope)

			planTypes.GET("/:id/reports", read, h.ListPlanReports)
			planTypes.POST("/:id/reports", write, h.AddPlanReport)
		}

		seatLimits := catalog.Group("/seat-limits")
		{
			seatLimits.GET("/:id", read, h.GetSeatLimit)
			seatLimits.PUT("/:id", write, h.UpdateSeatLimit)
			seatLimits.DELETE("/:id", write, h.DeleteSeatLimit)
		}

		reports := catalog.Group("/plan-reports")
		{
			reports.PUT("/:id", write, h.UpdatePlanReport)
			reports.DELETE("/:id", write, h.DeletePlanReport)
		}

		plans := catalog.Group("/plans")
		{
			plans.GET("", read, h.ListPlans)
			plans.POST("", write, h.CreatePlan)
			plans.GET("/:id", read, h.GetPlan)
			plans.PUT("/:id", write, h.UpdatePlan)
			plans.DELETE("/:id", write, h.DeletePlan)
		}
	}
}
