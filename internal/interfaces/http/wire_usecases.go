package http

import (
	identityusecases "github.com/GraziArcH/domain-sales/internal/application/identity/usecases"
	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
)

// allUseCases holds every use case the handlers and jobs consume.
type allUseCases struct {
	planTypes           *usecases.ManagePlanTypesUseCase
	plans               *usecases.ManagePlansUseCase
	seatLimits          *usecases.ManageSeatLimitsUseCase
	planReports         *usecases.ManagePlanReportsUseCase
	subscriptions       *usecases.ManageSubscriptionsUseCase
	changes             *usecases.SubscriptionChangesUseCase
	overrides           *usecases.ManagePriceOverridesUseCase
	history             *usecases.GetSubscriptionHistoryUseCase
	cancellations       *usecases.CancellationUseCase
	seatEngine          *usecases.SeatEngineUseCase
	publicCatalog       *usecases.PublicCatalogUseCase
	expireSubscriptions *usecases.ExpireSubscriptionsUseCase
	identity            *identityusecases.UserSeatIntegrationUseCase
}

func (c *Container) initUseCases() *allUseCases {
	r := c.repos
	ucs := &allUseCases{
		planTypes:   usecases.NewManagePlanTypesUseCase(r.planTypeRepo, r.planRepo, c.txMgr, c.log),
		plans:       usecases.NewManagePlansUseCase(r.planRepo, r.planTypeRepo, c.txMgr, c.log),
		seatLimits:  usecases.NewManageSeatLimitsUseCase(r.seatLimitRepo, r.planTypeRepo, c.txMgr, c.log),
		planReports: usecases.NewManagePlanReportsUseCase(r.planReportRepo, r.planTypeRepo, r.planRepo, r.subscriptionRepo, c.txMgr, c.log),

		subscriptions: usecases.NewManageSubscriptionsUseCase(r.subscriptionRepo, r.planRepo, c.txMgr, c.log),
		changes:       usecases.NewSubscriptionChangesUseCase(r.subscriptionRepo, r.planRepo, r.historyRepo, c.renderer, c.txMgr, c.log),
		overrides:     usecases.NewManagePriceOverridesUseCase(r.overrideRepo, r.subscriptionRepo, c.txMgr, c.log),
		history:       usecases.NewGetSubscriptionHistoryUseCase(r.historyRepo, c.log),
		cancellations: usecases.NewCancellationUseCase(
			r.subscriptionRepo,
			r.cancellationRepo,
			r.historyRepo,
			c.renderer,
			c.notifier,
			c.metrics,
			usecases.CancellationOptions{
				StampOnRequest: c.cfg.Cancellation.StampOnRequest,
				DefaultReason:  c.cfg.Cancellation.DefaultReason,
			},
			c.txMgr,
			c.log,
		),

		seatEngine: usecases.NewSeatEngineUseCase(
			r.subscriptionRepo,
			r.planRepo,
			r.seatLimitRepo,
			r.overrideRepo,
			r.seatRepo,
			r.planReportRepo,
			c.metrics,
			c.txMgr,
			c.log,
		),
		publicCatalog:       usecases.NewPublicCatalogUseCase(r.catalogRepo, c.renderer, c.prices, c.log),
		expireSubscriptions: usecases.NewExpireSubscriptionsUseCase(r.subscriptionRepo, c.metrics, c.cfg.Auth.ServiceActorID, c.txMgr, c.log),
	}

	// Identity writes run on the identity database; seat changes go through
	// the plan database inside the same call.
	seats := usecases.NewSeatFacade(ucs.subscriptions, ucs.seatEngine)
	ucs.identity = identityusecases.NewUserSeatIntegrationUseCase(r.userRepo, seats, c.identTx, c.log)
	return ucs
}
