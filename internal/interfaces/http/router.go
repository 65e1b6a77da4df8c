package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/GraziArcH/domain-sales/internal/interfaces/http/middleware"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/routes"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"

	_ "github.com/GraziArcH/domain-sales/docs"
)

// Engine returns the gin engine with every route registered by SetupRoutes.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// SetupRoutes configures all HTTP routes.
func (c *Container) SetupRoutes() {
	utils.RegisterBindingTagNames()

	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log, c.metrics))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.health.HealthCheck)
	c.engine.GET("/version", c.hdlrs.health.Version)
	if c.cfg.Metrics.Enabled {
		c.engine.GET(c.cfg.Metrics.Path, gin.WrapH(c.metrics.Handler()))
	}
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	guard := &routes.Guard{Auth: c.authMiddleware, Permission: c.permissionMiddleware}
	api := c.engine.Group("/api")

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		CatalogHandler: c.hdlrs.catalog,
		Guard:          guard,
	})
	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: c.hdlrs.subscription,
		SeatHandler:         c.hdlrs.seat,
		Guard:               guard,
	})
	routes.SetupIdentityRoutes(api, &routes.IdentityRouteConfig{
		IdentityHandler: c.hdlrs.identity,
		Guard:           guard,
	})
	routes.SetupPublicRoutes(api, &routes.PublicRouteConfig{
		PublicCatalogHandler: c.hdlrs.publicCatalog,
		RateLimit:            c.publicRateLimit,
	})
}
