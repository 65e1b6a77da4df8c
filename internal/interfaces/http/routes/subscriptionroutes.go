package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/permission"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/handlers"
)

// SubscriptionRouteConfig holds dependencies for subscription and seat routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	SeatHandler         *handlers.SeatHandler
	Guard               *Guard
}

// SetupSubscriptionRoutes configures subscription, cancellation, seat and
// company level routes.
// :id is the subscription ID unless the group says otherwise.
func SetupSubscriptionRoutes(r gin.IRouter, cfg *SubscriptionRouteConfig) {
	subs := cfg.SubscriptionHandler
	seats := cfg.SeatHandler
	subRead := cfg.Guard.read(permission.ResourceSubscription)
	subWrite := cfg.Guard.write(permission.ResourceSubscription)
	seatRead := cfg.Guard.read(permission.ResourceSeat)
	seatWrite := cfg.Guard.write(permission.ResourceSeat)

	protected := r.Group("")
	protected.Use(cfg.Guard.Auth.RequireAuth())

	subscriptions := protected.Group("/subscriptions")
	{
		subscriptions.POST("", subWrite, subs.CreateSubscription)
		subscriptions.GET("/:id", subRead, subs.GetSubscription)
		subscriptions.PUT("/:id", subWrite, subs.UpdateSubscription)
		subscriptions.POST("/:id/change-plan", subWrite, subs.ChangePlan)
		subscriptions.POST("/:id/renew", subWrite, subs.RenewSubscription)
		subscriptions.GET("/:id/history", subRead, subs.GetHistory)

		subscriptions.GET("/:id/price-overrides", subRead, subs.ListPriceOverrides)
		subscriptions.GET("/:id/price-overrides/:scope", subRead, subs.GetPriceOverride)
		subscriptions.PUT("/:id/price-overrides/:scope", subWrite, subs.SetPriceOverride)
		subscriptions.DELETE("/:id/price-overrides/:scope", subWrite, subs.DeletePriceOverride)

		subscriptions.GET("/:id/cancellations", subRead, subs.ListCancellations)
		subscriptions.POST("/:id/cancellations", subWrite, subs.RequestCancellation)

		subscriptions.GET("/:id/price", seatRead, seats.ResolveExtraSeatPrice)
		subscriptions.GET("/:id/seats/can-admit", seatRead, seats.CanAdmitSeat)
		subscriptions.GET("/:id/seats/validate", seatRead, seats.ValidateSeats)
		subscriptions.POST("/:id/seats", seatWrite, seats.AdmitSeat)
		subscriptions.DELETE("/:id/seats/:userId", seatWrite, seats.RemoveSeat)
	}

	cancellations := protected.Group("/cancellations")
	{
		cancellations.GET("/:id", subRead, subs.GetCancellation)
		cancellations.POST("/:id/confirm", subWrite, subs.ConfirmCancellation)
	}

	companies := protected.Group("/companies/:companyId")
	{
		companies.GET("/subscription", subRead, subs.GetActiveSubscription)
		companies.GET("/subscriptions", subRead, subs.ListCompanySubscriptions)

		companies.GET("/seats", seatRead, seats.ListCompanySeats)
		companies.POST("/seats/sync", seatWrite, seats.SyncSeats)
		companies.PUT("/seats/:userId/scope", seatWrite, seats.ChangeSeatScope)
		companies.GET("/capacity", seatRead, seats.GetCapacity)
		companies.GET("/snapshot", seatRead, seats.GetUsageSnapshot)
		companies.GET("/reports", seatRead, seats.ListCompanyReports)
	}
}
