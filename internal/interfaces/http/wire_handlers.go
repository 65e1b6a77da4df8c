package http

import (
	"context"

	"github.com/GraziArcH/domain-sales/internal/interfaces/http/handlers"
)

type allHandlers struct {
	catalog       *handlers.CatalogHandler
	subscription  *handlers.SubscriptionHandler
	seat          *handlers.SeatHandler
	identity      *handlers.IdentityHandler
	publicCatalog *handlers.PublicCatalogHandler
	health        *handlers.HealthHandler
}

func (c *Container) initHandlers() *allHandlers {
	u := c.ucs
	return &allHandlers{
		catalog:       handlers.NewCatalogHandler(u.planTypes, u.plans, u.seatLimits, u.planReports, c.log),
		subscription:  handlers.NewSubscriptionHandler(u.subscriptions, u.changes, u.overrides, u.history, u.cancellations, c.log),
		seat:          handlers.NewSeatHandler(u.seatEngine, u.planReports, c.log),
		identity:      handlers.NewIdentityHandler(u.identity, c.log),
		publicCatalog: handlers.NewPublicCatalogHandler(u.publicCatalog, c.log),
		health:        handlers.NewHealthHandler(c.healthChecks(), c.log),
	}
}

// healthChecks lists the dependencies /health pings.
func (c *Container) healthChecks() map[string]handlers.Pinger {
	checks := map[string]handlers.Pinger{
		"redis": handlers.PingFunc(func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}),
	}
	if sqlDB, err := c.db.DB(); err == nil {
		checks["database"] = sqlDB
	}
	if sqlDB, err := c.identityDB.DB(); err == nil {
		checks["identity_database"] = sqlDB
	}
	return checks
}
