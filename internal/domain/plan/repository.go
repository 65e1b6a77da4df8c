package plan

import (
	"context"
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// Get* methods return (nil, nil) when the record does not exist.

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id vo.ID) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id vo.ID) error
	List(ctx context.Context) ([]*Plan, error)
	CountByPlanType(ctx context.Context, planTypeID vo.ID) (int64, error)
}

type PlanTypeRepository interface {
	Create(ctx context.Context, planType *PlanType) error
	GetByID(ctx context.Context, id vo.ID) (*PlanType, error)
	Update(ctx context.Context, planType *PlanType) error
	Delete(ctx context.Context, id vo.ID) error
	List(ctx context.Context) ([]*PlanType, error)
}

type SeatLimitConfigRepository interface {
	Create(ctx context.Context, config *SeatLimitConfig) error
	GetByID(ctx context.Context, id vo.ID) (*SeatLimitConfig, error)
	GetByPlanTypeAndScope(ctx context.Context, planTypeID vo.ID, scope vo.SeatScope) (*SeatLimitConfig, error)
	ListByPlanType(ctx context.Context, planTypeID vo.ID) ([]*SeatLimitConfig, error)
	Update(ctx context.Context, config *SeatLimitConfig) error
	Delete(ctx context.Context, id vo.ID) error
}

type PriceOverrideRepository interface {
	Create(ctx context.Context, override *PriceOverride) error
	GetByID(ctx context.Context, id vo.ID) (*PriceOverride, error)
	GetBySubscriptionAndScope(ctx context.Context, subscriptionID vo.ID, scope vo.SeatScope) (*PriceOverride, error)
	ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*PriceOverride, error)
	Update(ctx context.Context, override *PriceOverride) error
	Delete(ctx context.Context, id vo.ID) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *CompanySubscription) error
	GetByID(ctx context.Context, id vo.ID) (*CompanySubscription, error)
	// GetByIDForUpdate locks the subscription row until the surrounding
	// transaction ends. Seat counting for admission happens under this lock.
	GetByIDForUpdate(ctx context.Context, id vo.ID) (*CompanySubscription, error)
	GetActiveByCompany(ctx context.Context, companyID vo.ID) (*CompanySubscription, error)
	ListByCompany(ctx context.Context, companyID vo.ID) ([]*CompanySubscription, error)
	// ListExpired returns active subscriptions whose end date is before the given time.
	ListExpired(ctx context.Context, before time.Time) ([]*CompanySubscription, error)
	Update(ctx context.Context, subscription *CompanySubscription) error
}

type SeatUsageRepository interface {
	Create(ctx context.Context, seat *SeatUsage) error
	BulkCreate(ctx context.Context, seats []*SeatUsage) error
	GetBySubscriptionAndUser(ctx context.Context, subscriptionID, userID vo.ID) (*SeatUsage, error)
	ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*SeatUsage, error)
	CountByScope(ctx context.Context, subscriptionID vo.ID, scope vo.SeatScope) (int, error)
	// CountAll returns the seat count of every scope, zero for scopes without seats.
	CountAll(ctx context.Context, subscriptionID vo.ID) (map[vo.SeatScope]int, error)
	Update(ctx context.Context, seat *SeatUsage) error
	Delete(ctx context.Context, seat *SeatUsage) error
}

type CancellationRepository interface {
	Create(ctx context.Context, cancellation *Cancellation) error
	GetByID(ctx context.Context, id vo.ID) (*Cancellation, error)
	ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*Cancellation, error)
	Update(ctx context.Context, cancellation *Cancellation) error
}

type SubscriptionHistoryRepository interface {
	Create(ctx context.Context, history *SubscriptionHistory) error
	// ListBySubscription returns entries newest first; limit <= 0 returns all.
	ListBySubscription(ctx context.Context, subscriptionID vo.ID, limit int) ([]*SubscriptionHistory, error)
}

type PlanReportRepository interface {
	Create(ctx context.Context, report *PlanReport) error
	GetByID(ctx context.Context, id vo.ID) (*PlanReport, error)
	ListByPlanType(ctx context.Context, planTypeID vo.ID) ([]*PlanReport, error)
	Update(ctx context.Context, report *PlanReport) error
	Delete(ctx context.Context, report *PlanReport) error
}

// CatalogRepository serves the denormalized public catalog.
type CatalogRepository interface {
	List(ctx context.Context, query CatalogQuery) ([]*PublicPlan, int64, error)
	GetByID(ctx context.Context, id vo.ID) (*PublicPlan, error)
}
