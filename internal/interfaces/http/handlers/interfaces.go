package handlers

import (
	"context"

	identitydto "github.com/GraziArcH/domain-sales/internal/application/identity/dto"
	identityusecases "github.com/GraziArcH/domain-sales/internal/application/identity/usecases"
	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
)

// Use case interfaces consumed by the handlers

type planTypeUseCase interface {
	Create(ctx context.Context, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error)
	Update(ctx context.Context, id int64, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error)
	Delete(ctx context.Context, id int64, actorID uint64) error
	Get(ctx context.Context, id int64) (*dto.PlanTypeDTO, error)
	List(ctx context.Context) ([]*dto.PlanTypeDTO, error)
}

type planUseCase interface {
	Create(ctx context.Context, cmd usecases.PlanCommand) (*dto.PlanDTO, error)
	Update(ctx context.Context, id int64, cmd usecases.PlanCommand) (*dto.PlanDTO, error)
	Delete(ctx context.Context, id int64, actorID uint64) error
	Get(ctx context.Context, id int64) (*dto.PlanDTO, error)
	List(ctx context.Context) ([]*dto.PlanDTO, error)
}

type seatLimitUseCase interface {
	Create(ctx context.Context, cmd usecases.CreateSeatLimitCommand) (*dto.SeatLimitDTO, error)
	Update(ctx context.Context, id int64, cmd usecases.UpdateSeatLimitCommand) (*dto.SeatLimitDTO, error)
	Delete(ctx context.Context, id int64, actorID uint64) error
	Get(ctx context.Context, id int64) (*dto.SeatLimitDTO, error)
	GetByScope(ctx context.Context, planTypeID int64, admin bool) (*dto.SeatLimitDTO, error)
	ListByPlanType(ctx context.Context, planTypeID int64) ([]*dto.SeatLimitDTO, error)
}

type planReportUseCase interface {
	Add(ctx context.Context, planTypeID, templateID int64, actorID uint64) (*dto.PlanReportDTO, error)
	UpdateTemplate(ctx context.Context, id, templateID int64, actorID uint64) (*dto.PlanReportDTO, error)
	Delete(ctx context.Context, id int64, actorID uint64) error
	ListByPlanType(ctx context.Context, planTypeID int64) ([]*dto.PlanReportDTO, error)
	ListForCompany(ctx context.Context, companyID int64) ([]*dto.PlanReportDTO, error)
}

type subscriptionUseCase interface {
	Create(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error)
	Get(ctx context.Context, id int64) (*dto.SubscriptionDTO, error)
	GetActiveByCompany(ctx context.Context, companyID int64) (*dto.SubscriptionDTO, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*dto.SubscriptionDTO, error)
	Update(ctx context.Context, id int64, cmd usecases.UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error)
}

type subscriptionChangeUseCase interface {
	ChangePlan(ctx context.Context, cmd usecases.ChangePlanCommand) (*dto.SubscriptionDTO, error)
	Renew(ctx context.Context, cmd usecases.RenewSubscriptionCommand) (*dto.SubscriptionDTO, error)
}

type priceOverrideUseCase interface {
	Set(ctx context.Context, cmd usecases.SetPriceOverrideCommand) (*dto.PriceOverrideDTO, error)
	Get(ctx context.Context, subscriptionID int64, admin bool) (*dto.PriceOverrideDTO, error)
	List(ctx context.Context, subscriptionID int64) ([]*dto.PriceOverrideDTO, error)
	Delete(ctx context.Context, subscriptionID int64, admin bool, actorID uint64) error
}

type historyUseCase interface {
	Execute(ctx context.Context, subscriptionID int64, recent int) ([]*dto.HistoryDTO, error)
}

type cancellationUseCase interface {
	Request(ctx context.Context, cmd usecases.RequestCancellationCommand) (*dto.CancellationDTO, error)
	Confirm(ctx context.Context, cmd usecases.ConfirmCancellationCommand) (*dto.CancellationDTO, error)
	Get(ctx context.Context, id int64) (*dto.CancellationDTO, error)
	ListBySubscription(ctx context.Context, subscriptionID int64) ([]*dto.CancellationDTO, error)
}

type seatEngineUseCase interface {
	ResolveExtraSeatPrice(ctx context.Context, subscriptionID int64, admin bool, quantity int) (*dto.ExtraSeatPriceDTO, error)
	CanAdmitSeat(ctx context.Context, subscriptionID int64, admin bool) (bool, error)
	AdmitSeat(ctx context.Context, cmd usecases.AdmitSeatCommand) (*dto.SeatDTO, error)
	ChangeSeatScope(ctx context.Context, cmd usecases.ChangeSeatScopeCommand) (*dto.SeatDTO, error)
	RemoveSeat(ctx context.Context, cmd usecases.RemoveSeatCommand) error
	SyncSeats(ctx context.Context, cmd usecases.SyncSeatsCommand) (*dto.SyncResultDTO, error)
	GetCapacity(ctx context.Context, companyID int64) (*dto.CapacityDTO, error)
	ValidateAllSeatsWithinLimits(ctx context.Context, subscriptionID int64) (*dto.CapacityDTO, error)
	GetUsageSnapshot(ctx context.Context, companyID int64) (*dto.UsageSnapshotDTO, error)
	CompanySeats(ctx context.Context, companyID int64) ([]*dto.SeatDTO, error)
}

type publicCatalogUseCase interface {
	List(ctx context.Context, params plan.CatalogParams) (*dto.PublicPlanListDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.PublicPlanDTO, error)
}

type identityIntegrationUseCase interface {
	CreateUserWithSeat(ctx context.Context, cmd identityusecases.CreateUserCommand) (*identitydto.UserDTO, error)
	ChangeUserAdminStatus(ctx context.Context, userID int64, admin bool, actorID uint64) (*identitydto.UserDTO, error)
	RemoveUser(ctx context.Context, userID int64, actorID uint64) error
	FullSyncCompany(ctx context.Context, companyID int64, actorID uint64) (*identityusecases.SyncReport, error)
}
