package handlers

import (
	"context"

	identitydto "github.com/GraziArcH/domain-sales/internal/application/identity/dto"
	identityusecases "github.com/GraziArcH/domain-sales/internal/application/identity/usecases"
	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockPlanTypeUC struct {
	CreateFunc func(ctx context.Context, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error)
	UpdateFunc func(ctx context.Context, id int64, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error)
	DeleteFunc func(ctx context.Context, id int64, actorID uint64) error
	GetFunc    func(ctx context.Context, id int64) (*dto.PlanTypeDTO, error)
	ListFunc   func(ctx context.Context) ([]*dto.PlanTypeDTO, error)
}

func (m *mockPlanTypeUC) Create(ctx context.Context, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error) {
	return m.CreateFunc(ctx, cmd)
}

func (m *mockPlanTypeUC) Update(ctx context.Context, id int64, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

func (m *mockPlanTypeUC) Delete(ctx context.Context, id int64, actorID uint64) error {
	return m.DeleteFunc(ctx, id, actorID)
}

func (m *mockPlanTypeUC) Get(ctx context.Context, id int64) (*dto.PlanTypeDTO, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockPlanTypeUC) List(ctx context.Context) ([]*dto.PlanTypeDTO, error) {
	return m.ListFunc(ctx)
}

type mockPlanUC struct {
	CreateFunc func(ctx context.Context, cmd usecases.PlanCommand) (*dto.PlanDTO, error)
	UpdateFunc func(ctx context.Context, id int64, cmd usecases.PlanCommand) (*dto.PlanDTO, error)
	DeleteFunc func(ctx context.Context, id int64, actorID uint64) error
	GetFunc    func(ctx context.Context, id int64) (*dto.PlanDTO, error)
	ListFunc   func(ctx context.Context) ([]*dto.PlanDTO, error)
}

func (m *mockPlanUC) Create(ctx context.Context, cmd usecases.PlanCommand) (*dto.PlanDTO, error) {
	return m.CreateFunc(ctx, cmd)
}

func (m *mockPlanUC) Update(ctx context.Context, id int64, cmd usecases.PlanCommand) (*dto.PlanDTO, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

func (m *mockPlanUC) Delete(ctx context.Context, id int64, actorID uint64) error {
	return m.DeleteFunc(ctx, id, actorID)
}

func (m *mockPlanUC) Get(ctx context.Context, id int64) (*dto.PlanDTO, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockPlanUC) List(ctx context.Context) ([]*dto.PlanDTO, error) {
	return m.ListFunc(ctx)
}

type mockSeatLimitUC struct {
	CreateFunc         func(ctx context.Context, cmd usecases.CreateSeatLimitCommand) (*dto.SeatLimitDTO, error)
	UpdateFunc         func(ctx context.Context, id int64, cmd usecases.UpdateSeatLimitCommand) (*dto.SeatLimitDTO, error)
	DeleteFunc         func(ctx context.Context, id int64, actorID uint64) error
	GetFunc            func(ctx context.Context, id int64) (*dto.SeatLimitDTO, error)
	GetByScopeFunc     func(ctx context.Context, planTypeID int64, admin bool) (*dto.SeatLimitDTO, error)
	ListByPlanTypeFunc func(ctx context.Context, planTypeID int64) ([]*dto.SeatLimitDTO, error)
}

func (m *mockSeatLimitUC) Create(ctx context.Context, cmd usecases.CreateSeatLimitCommand) (*dto.SeatLimitDTO, error) {
	return m.CreateFunc(ctx, cmd)
}

func (m *mockSeatLimitUC) Update(ctx context.Context, id int64, cmd usecases.UpdateSeatLimitCommand) (*dto.SeatLimitDTO, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

func (m *mockSeatLimitUC) Delete(ctx context.Context, id int64, actorID uint64) error {
	return m.DeleteFunc(ctx, id, actorID)
}

func (m *mockSeatLimitUC) Get(ctx context.Context, id int64) (*dto.SeatLimitDTO, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockSeatLimitUC) GetByScope(ctx context.Context, planTypeID int64, admin bool) (*dto.SeatLimitDTO, error) {
	return m.GetByScopeFunc(ctx, planTypeID, admin)
}

func (m *mockSeatLimitUC) ListByPlanType(ctx context.Context, planTypeID int64) ([]*dto.SeatLimitDTO, error) {
	return m.ListByPlanTypeFunc(ctx, planTypeID)
}

type mockPlanReportUC struct {
	AddFunc            func(ctx context.Context, planTypeID, templateID int64, actorID uint64) (*dto.PlanReportDTO, error)
	UpdateTemplateFunc func(ctx context.Context, id, templateID int64, actorID uint64) (*dto.PlanReportDTO, error)
	DeleteFunc         func(ctx context.Context, id int64, actorID uint64) error
	ListByPlanTypeFunc func(ctx context.Context, planTypeID int64) ([]*dto.PlanReportDTO, error)
	ListForCompanyFunc func(ctx context.Context, companyID int64) ([]*dto.PlanReportDTO, error)
}

func (m *mockPlanReportUC) Add(ctx context.Context, planTypeID, templateID int64, actorID uint64) (*dto.PlanReportDTO, error) {
	return m.AddFunc(ctx, planTypeID, templateID, actorID)
}

func (m *mockPlanReportUC) UpdateTemplate(ctx context.Context, id, templateID int64, actorID uint64) (*dto.PlanReportDTO, error) {
	return m.UpdateTemplateFunc(ctx, id, templateID, actorID)
}

func (m *mockPlanReportUC) Delete(ctx context.Context, id int64, actorID uint64) error {
	return m.DeleteFunc(ctx, id, actorID)
}

func (m *mockPlanReportUC) ListByPlanType(ctx context.Context, planTypeID int64) ([]*dto.PlanReportDTO, error) {
	return m.ListByPlanTypeFunc(ctx, planTypeID)
}

func (m *mockPlanReportUC) ListForCompany(ctx context.Context, companyID int64) ([]*dto.PlanReportDTO, error) {
	return m.ListForCompanyFunc(ctx, companyID)
}

type mockSubscriptionUC struct {
	CreateFunc             func(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error)
	GetFunc                func(ctx context.Context, id int64) (*dto.SubscriptionDTO, error)
	GetActiveByCompanyFunc func(ctx context.Context, companyID int64) (*dto.SubscriptionDTO, error)
	ListByCompanyFunc      func(ctx context.Context, companyID int64) ([]*dto.SubscriptionDTO, error)
	UpdateFunc             func(ctx context.Context, id int64, cmd usecases.UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error)
}

func (m *mockSubscriptionUC) Create(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	return m.CreateFunc(ctx, cmd)
}

func (m *mockSubscriptionUC) Get(ctx context.Context, id int64) (*dto.SubscriptionDTO, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockSubscriptionUC) GetActiveByCompany(ctx context.Context, companyID int64) (*dto.SubscriptionDTO, error) {
	return m.GetActiveByCompanyFunc(ctx, companyID)
}

func (m *mockSubscriptionUC) ListByCompany(ctx context.Context, companyID int64) ([]*dto.SubscriptionDTO, error) {
	return m.ListByCompanyFunc(ctx, companyID)
}

func (m *mockSubscriptionUC) Update(ctx context.Context, id int64, cmd usecases.UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	return m.UpdateFunc(ctx, id, cmd)
}

type mockSubscriptionChangeUC struct {
	ChangePlanFunc func(ctx context.Context, cmd usecases.ChangePlanCommand) (*dto.SubscriptionDTO, error)
	RenewFunc      func(ctx context.Context, cmd usecases.RenewSubscriptionCommand) (*dto.SubscriptionDTO, error)
}

func (m *mockSubscriptionChangeUC) ChangePlan(ctx context.Context, cmd usecases.ChangePlanCommand) (*dto.SubscriptionDTO, error) {
	return m.ChangePlanFunc(ctx, cmd)
}

func (m *mockSubscriptionChangeUC) Renew(ctx context.Context, cmd usecases.RenewSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	return m.RenewFunc(ctx, cmd)
}

type mockPriceOverrideUC struct {
	SetFunc    func(ctx context.Context, cmd usecases.SetPriceOverrideCommand) (*dto.PriceOverrideDTO, error)
	GetFunc    func(ctx context.Context, subscriptionID int64, admin bool) (*dto.PriceOverrideDTO, error)
	ListFunc   func(ctx context.Context, subscriptionID int64) ([]*dto.PriceOverrideDTO, error)
	DeleteFunc func(ctx context.Context, subscriptionID int64, admin bool, actorID uint64) error
}

func (m *mockPriceOverrideUC) Set(ctx context.Context, cmd usecases.SetPriceOverrideCommand) (*dto.PriceOverrideDTO, error) {
	return m.SetFunc(ctx, cmd)
}

func (m *mockPriceOverrideUC) Get(ctx context.Context, subscriptionID int64, admin bool) (*dto.PriceOverrideDTO, error) {
	return m.GetFunc(ctx, subscriptionID, admin)
}

func (m *mockPriceOverrideUC) List(ctx context.Context, subscriptionID int64) ([]*dto.PriceOverrideDTO, error) {
	return m.ListFunc(ctx, subscriptionID)
}

func (m *mockPriceOverrideUC) Delete(ctx context.Context, subscriptionID int64, admin bool, actorID uint64) error {
	return m.DeleteFunc(ctx, subscriptionID, admin, actorID)
}

type mockHistoryUC struct {
	ExecuteFunc func(ctx context.Context, subscriptionID int64, recent int) ([]*dto.HistoryDTO, error)
}

func (m *mockHistoryUC) Execute(ctx context.Context, subscriptionID int64, recent int) ([]*dto.HistoryDTO, error) {
	return m.ExecuteFunc(ctx, subscriptionID, recent)
}

type mockCancellationUC struct {
	RequestFunc            func(ctx context.Context, cmd usecases.RequestCancellationCommand) (*dto.CancellationDTO, error)
	ConfirmFunc            func(ctx context.Context, cmd usecases.ConfirmCancellationCommand) (*dto.CancellationDTO, error)
	GetFunc                func(ctx context.Context, id int64) (*dto.CancellationDTO, error)
	ListBySubscriptionFunc func(ctx context.Context, subscriptionID int64) ([]*dto.CancellationDTO, error)
}

func (m *mockCancellationUC) Request(ctx context.Context, cmd usecases.RequestCancellationCommand) (*dto.CancellationDTO, error) {
	return m.RequestFunc(ctx, cmd)
}

func (m *mockCancellationUC) Confirm(ctx context.Context, cmd usecases.ConfirmCancellationCommand) (*dto.CancellationDTO, error) {
	return m.ConfirmFunc(ctx, cmd)
}

func (m *mockCancellationUC) Get(ctx context.Context, id int64) (*dto.CancellationDTO, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockCancellationUC) ListBySubscription(ctx context.Context, subscriptionID int64) ([]*dto.CancellationDTO, error) {
	return m.ListBySubscriptionFunc(ctx, subscriptionID)
}

type mockSeatEngineUC struct {
	ResolveExtraSeatPriceFunc        func(ctx context.Context, subscriptionID int64, admin bool, quantity int) (*dto.ExtraSeatPriceDTO, error)
	CanAdmitSeatFunc                 func(ctx context.Context, subscriptionID int64, admin bool) (bool, error)
	AdmitSeatFunc                    func(ctx context.Context, cmd usecases.AdmitSeatCommand) (*dto.SeatDTO, error)
	ChangeSeatScopeFunc              func(ctx context.Context, cmd usecases.ChangeSeatScopeCommand) (*dto.SeatDTO, error)
	RemoveSeatFunc                   func(ctx context.Context, cmd usecases.RemoveSeatCommand) error
	SyncSeatsFunc                    func(ctx context.Context, cmd usecases.SyncSeatsCommand) (*dto.SyncResultDTO, error)
	GetCapacityFunc                  func(ctx context.Context, companyID int64) (*dto.CapacityDTO, error)
	ValidateAllSeatsWithinLimitsFunc func(ctx context.Context, subscriptionID int64) (*dto.CapacityDTO, error)
	GetUsageSnapshotFunc             func(ctx context.Context, companyID int64) (*dto.UsageSnapshotDTO, error)
	CompanySeatsFunc                 func(ctx context.Context, companyID int64) ([]*dto.SeatDTO, error)
}

func (m *mockSeatEngineUC) ResolveExtraSeatPrice(ctx context.Context, subscriptionID int64, admin bool, quantity int) (*dto.ExtraSeatPriceDTO, error) {
	return m.ResolveExtraSeatPriceFunc(ctx, subscriptionID, admin, quantity)
}

func (m *mockSeatEngineUC) CanAdmitSeat(ctx context.Context, subscriptionID int64, admin bool) (bool, error) {
	return m.CanAdmitSeatFunc(ctx, subscriptionID, admin)
}

func (m *mockSeatEngineUC) AdmitSeat(ctx context.Context, cmd usecases.AdmitSeatCommand) (*dto.SeatDTO, error) {
	return m.AdmitSeatFunc(ctx, cmd)
}

func (m *mockSeatEngineUC) ChangeSeatScope(ctx context.Context, cmd usecases.ChangeSeatScopeCommand) (*dto.SeatDTO, error) {
	return m.ChangeSeatScopeFunc(ctx, cmd)
}

func (m *mockSeatEngineUC) RemoveSeat(ctx context.Context, cmd usecases.RemoveSeatCommand) error {
	return m.RemoveSeatFunc(ctx, cmd)
}

func (m *mockSeatEngineUC) SyncSeats(ctx context.Context, cmd usecases.SyncSeatsCommand) (*dto.SyncResultDTO, error) {
	return m.SyncSeatsFunc(ctx, cmd)
}

func (m *mockSeatEngineUC) GetCapacity(ctx context.Context, companyID int64) (*dto.CapacityDTO, error) {
	return m.GetCapacityFunc(ctx, companyID)
}

func (m *mockSeatEngineUC) ValidateAllSeatsWithinLimits(ctx context.Context, subscriptionID int64) (*dto.CapacityDTO, error) {
	return m.ValidateAllSeatsWithinLimitsFunc(ctx, subscriptionID)
}

func (m *mockSeatEngineUC) GetUsageSnapshot(ctx context.Context, companyID int64) (*dto.UsageSnapshotDTO, error) {
	return m.GetUsageSnapshotFunc(ctx, companyID)
}

func (m *mockSeatEngineUC) CompanySeats(ctx context.Context, companyID int64) ([]*dto.SeatDTO, error) {
	return m.CompanySeatsFunc(ctx, companyID)
}

type mockPublicCatalogUC struct {
	ListFunc    func(ctx context.Context, params plan.CatalogParams) (*dto.PublicPlanListDTO, error)
	GetByIDFunc func(ctx context.Context, id int64) (*dto.PublicPlanDTO, error)
}

func (m *mockPublicCatalogUC) List(ctx context.Context, params plan.CatalogParams) (*dto.PublicPlanListDTO, error) {
	return m.ListFunc(ctx, params)
}

func (m *mockPublicCatalogUC) GetByID(ctx context.Context, id int64) (*dto.PublicPlanDTO, error) {
	return m.GetByIDFunc(ctx, id)
}

type mockIdentityUC struct {
	CreateUserWithSeatFunc    func(ctx context.Context, cmd identityusecases.CreateUserCommand) (*identitydto.UserDTO, error)
	ChangeUserAdminStatusFunc func(ctx context.Context, userID int64, admin bool, actorID uint64) (*identitydto.UserDTO, error)
	RemoveUserFunc            func(ctx context.Context, userID int64, actorID uint64) error
	FullSyncCompanyFunc       func(ctx context.Context, companyID int64, actorID uint64) (*identityusecases.SyncReport, error)
}

func (m *mockIdentityUC) CreateUserWithSeat(ctx context.Context, cmd identityusecases.CreateUserCommand) (*identitydto.UserDTO, error) {
	return m.CreateUserWithSeatFunc(ctx, cmd)
}

func (m *mockIdentityUC) ChangeUserAdminStatus(ctx context.Context, userID int64, admin bool, actorID uint64) (*identitydto.UserDTO, error) {
	return m.ChangeUserAdminStatusFunc(ctx, userID, admin, actorID)
}

func (m *mockIdentityUC) RemoveUser(ctx context.Context, userID int64, actorID uint64) error {
	return m.RemoveUserFunc(ctx, userID, actorID)
}

func (m *mockIdentityUC) FullSyncCompany(ctx context.Context, companyID int64, actorID uint64) (*identityusecases.SyncReport, error) {
	return m.FullSyncCompanyFunc(ctx, companyID, actorID)
}
