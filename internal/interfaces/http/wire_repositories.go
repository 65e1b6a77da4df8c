package http

import (
	"github.com/GraziArcH/domain-sales/internal/domain/identity"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	planTypeRepo     plan.PlanTypeRepository
	planRepo         plan.PlanRepository
	seatLimitRepo    plan.SeatLimitConfigRepository
	seatRepo         plan.SeatUsageRepository
	subscriptionRepo plan.SubscriptionRepository
	historyRepo      plan.SubscriptionHistoryRepository
	cancellationRepo plan.CancellationRepository
	planReportRepo   plan.PlanReportRepository
	catalogRepo      plan.CatalogRepository
	overrideRepo     plan.PriceOverrideRepository
	userRepo         identity.UserRepository
}

func (c *Container) initRepositories() *repositories {
	return &repositories{
		planTypeRepo:     repository.NewPlanTypeRepository(c.db, c.planCache, c.log),
		planRepo:         repository.NewPlanRepository(c.db, c.planCache, c.log),
		seatLimitRepo:    repository.NewSeatLimitConfigRepository(c.db, c.planCache, c.log),
		seatRepo:         repository.NewSeatUsageRepository(c.db, c.planCache, c.log),
		subscriptionRepo: repository.NewSubscriptionRepository(c.db, c.planCache, c.log),
		historyRepo:      repository.NewHistoryRepository(c.db, c.planCache, c.log),
		cancellationRepo: repository.NewCancellationRepository(c.db, c.planCache, c.log),
		planReportRepo:   repository.NewPlanReportRepository(c.db, c.planCache, c.log),
		catalogRepo:      repository.NewCatalogRepository(c.db, c.planCache, c.log),
		overrideRepo:     repository.NewPriceOverrideRepository(c.db, c.log),
		userRepo:         repository.NewUserRepository(c.identityDB, c.log),
	}
}
