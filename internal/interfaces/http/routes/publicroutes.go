package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/interfaces/http/handlers"
)

// PublicRouteConfig holds dependencies for the unauthenticated catalog.
type PublicRouteConfig struct {
	PublicCatalogHandler *handlers.PublicCatalogHandler
	// RateLimit is nil when rate limiting is disabled.
	RateLimit gin.HandlerFunc
}

// SetupPublicRoutes configures the public catalog routes.
func SetupPublicRoutes(r gin.IRouter, cfg *PublicRouteConfig) {
	public := r.Group("/public")
	if cfg.RateLimit != nil {
		public.Use(cfg.RateLimit)
	}
	{
		public.GET("/plans", cfg.PublicCatalogHandler.ListPlans)
		public.GET("/plans/:id", cfg.PublicCatalogHandler.GetPlan)
	}
}
