package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type mockPlanRepository struct {
	CreateFunc          func(ctx context.Context, p *plan.Plan) error
	GetByIDFunc         func(ctx context.Context, id vo.ID) (*plan.Plan, error)
	UpdateFunc          func(ctx context.Context, p *plan.Plan) error
	DeleteFunc          func(ctx context.Context, id vo.ID) error
	ListFunc            func(ctx context.Context) ([]*plan.Plan, error)
	CountByPlanTypeFunc func(ctx context.Context, planTypeID vo.ID) (int64, error)
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id vo.ID) (*plan.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, id vo.ID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepository) CountByPlanType(ctx context.Context, planTypeID vo.ID) (int64, error) {
	if m.CountByPlanTypeFunc != nil {
		return m.CountByPlanTypeFunc(ctx, planTypeID)
	}
	return 0, nil
}

type mockPlanTypeRepository struct {
	CreateFunc  func(ctx context.Context, t *plan.PlanType) error
	GetByIDFunc func(ctx context.Context, id vo.ID) (*plan.PlanType, error)
	UpdateFunc  func(ctx context.Context, t *plan.PlanType) error
	DeleteFunc  func(ctx context.Context, id vo.ID) error
	ListFunc    func(ctx context.Context) ([]*plan.PlanType, error)
}

func (m *mockPlanTypeRepository) Create(ctx context.Context, t *plan.PlanType) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockPlanTypeRepository) GetByID(ctx context.Context, id vo.ID) (*plan.PlanType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanTypeRepository) Update(ctx context.Context, t *plan.PlanType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockPlanTypeRepository) Delete(ctx context.Context, id vo.ID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPlanTypeRepository) List(ctx context.Context) ([]*plan.PlanType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockSeatLimitRepository struct {
	CreateFunc                func(ctx context.Context, c *plan.SeatLimitConfig) error
	GetByIDFunc               func(ctx context.Context, id vo.ID) (*plan.SeatLimitConfig, error)
	GetByPlanTypeAndScopeFunc func(ctx context.Context, planTypeID vo.ID, scope vo.SeatScope) (*plan.SeatLimitConfig, error)
	ListByPlanTypeFunc        func(ctx context.Context, planTypeID vo.ID) ([]*plan.SeatLimitConfig, error)
	UpdateFunc                func(ctx context.Context, c *plan.SeatLimitConfig) error
	DeleteFunc                func(ctx context.Context, id vo.ID) error
}

func (m *mockSeatLimitRepository) Create(ctx context.Context, c *plan.SeatLimitConfig) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockSeatLimitRepository) GetByID(ctx context.Context, id vo.ID) (*plan.SeatLimitConfig, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSeatLimitRepository) GetByPlanTypeAndScope(ctx context.Context, planTypeID vo.ID, scope vo.SeatScope) (*plan.SeatLimitConfig, error) {
	if m.GetByPlanTypeAndScopeFunc != nil {
		return m.GetByPlanTypeAndScopeFunc(ctx, planTypeID, scope)
	}
	return nil, nil
}

func (m *mockSeatLimitRepository) ListByPlanType(ctx context.Context, planTypeID vo.ID) ([]*plan.SeatLimitConfig, error) {
	if m.ListByPlanTypeFunc != nil {
		return m.ListByPlanTypeFunc(ctx, planTypeID)
	}
	return nil, nil
}

func (m *mockSeatLimitRepository) Update(ctx context.Context, c *plan.SeatLimitConfig) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockSeatLimitRepository) Delete(ctx context.Context, id vo.ID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockPriceOverrideRepository struct {
	CreateFunc                    func(ctx context.Context, o *plan.PriceOverride) error
	GetByIDFunc                   func(ctx context.Context, id vo.ID) (*plan.PriceOverride, error)
	GetBySubscriptionAndScopeFunc func(ctx context.Context, subscriptionID vo.ID, scope vo.SeatScope) (*plan.PriceOverride, error)
	ListBySubscriptionFunc        func(ctx context.Context, subscriptionID vo.ID) ([]*plan.PriceOverride, error)
	UpdateFunc                    func(ctx context.Context, o *plan.PriceOverride) error
	DeleteFunc                    func(ctx context.Context, id vo.ID) error
}

func (m *mockPriceOverrideRepository) Create(ctx context.Context, o *plan.PriceOverride) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockPriceOverrideRepository) GetByID(ctx context.Context, id vo.ID) (*plan.PriceOverride, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPriceOverrideRepository) GetBySubscriptionAndScope(ctx context.Context, subscriptionID vo.ID, scope vo.SeatScope) (*plan.PriceOverride, error) {
	if m.GetBySubscriptionAndScopeFunc != nil {
		return m.GetBySubscriptionAndScopeFunc(ctx, subscriptionID, scope)
	}
	return nil, nil
}

func (m *mockPriceOverrideRepository) ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*plan.PriceOverride, error) {
	if m.ListBySubscriptionFunc != nil {
		return m.ListBySubscriptionFunc(ctx, subscriptionID)
	}
	return nil, nil
}

func (m *mockPriceOverrideRepository) Update(ctx context.Context, o *plan.PriceOverride) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockPriceOverrideRepository) Delete(ctx context.Context, id vo.ID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockSubscriptionRepository struct {
	CreateFunc             func(ctx context.Context, s *plan.CompanySubscription) error
	GetByIDFunc            func(ctx context.Context, id vo.ID) (*plan.CompanySubscription, error)
	GetByIDForUpdateFunc   func(ctx context.Context, id vo.ID) (*plan.CompanySubscription, error)
	GetActiveByCompanyFunc func(ctx context.Context, companyID vo.ID) (*plan.CompanySubscription, error)
	ListByCompanyFunc      func(ctx context.Context, companyID vo.ID) ([]*plan.CompanySubscription, error)
	ListExpiredFunc        func(ctx context.Context, before time.Time) ([]*plan.CompanySubscription, error)
	UpdateFunc             func(ctx context.Context, s *plan.CompanySubscription) error
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, s *plan.CompanySubscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id vo.ID) (*plan.CompanySubscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

// GetByIDForUpdate falls back to GetByIDFunc so tests only stub one lookup.
func (m *mockSubscriptionRepository) GetByIDForUpdate(ctx context.Context, id vo.ID) (*plan.CompanySubscription, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockSubscriptionRepository) GetActiveByCompany(ctx context.Context, companyID vo.ID) (*plan.CompanySubscription, error) {
	if m.GetActiveByCompanyFunc != nil {
		return m.GetActiveByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByCompany(ctx context.Context, companyID vo.ID) ([]*plan.CompanySubscription, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListExpired(ctx context.Context, before time.Time) ([]*plan.CompanySubscription, error) {
	if m.ListExpiredFunc != nil {
		return m.ListExpiredFunc(ctx, before)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *plan.CompanySubscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

type mockSeatRepository struct {
	CreateFunc                   func(ctx context.Context, seat *plan.SeatUsage) error
	BulkCreateFunc               func(ctx context.Context, seats []*plan.SeatUsage) error
	GetBySubscriptionAndUserFunc func(ctx context.Context, subscriptionID, userID vo.ID) (*plan.SeatUsage, error)
	ListBySubscriptionFunc       func(ctx context.Context, subscriptionID vo.ID) ([]*plan.SeatUsage, error)
	CountByScopeFunc             func(ctx context.Context, subscriptionID vo.ID, scope vo.SeatScope) (int, error)
	CountAllFunc                 func(ctx context.Context, subscriptionID vo.ID) (map[vo.SeatScope]int, error)
	UpdateFunc                   func(ctx context.Context, seat *plan.SeatUsage) error
	DeleteFunc                   func(ctx context.Context, seat *plan.SeatUsage) error
}

func (m *mockSeatRepository) Create(ctx context.Context, seat *plan.SeatUsage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, seat)
	}
	return nil
}

func (m *mockSeatRepository) BulkCreate(ctx context.Context, seats []*plan.SeatUsage) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, seats)
	}
	return nil
}

func (m *mockSeatRepository) GetBySubscriptionAndUser(ctx context.Context, subscriptionID, userID vo.ID) (*plan.SeatUsage, error) {
	if m.GetBySubscriptionAndUserFunc != nil {
		return m.GetBySubscriptionAndUserFunc(ctx, subscriptionID, userID)
	}
	return nil, nil
}

func (m *mockSeatRepository) ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*plan.SeatUsage, error) {
	if m.ListBySubscriptionFunc != nil {
		return m.ListBySubscriptionFunc(ctx, subscriptionID)
	}
	return nil, nil
}

func (m *mockSeatRepository) CountByScope(ctx context.Context, subscriptionID vo.ID, scope vo.SeatScope) (int, error) {
	if m.CountByScopeFunc != nil {
		return m.CountByScopeFunc(ctx, subscriptionID, scope)
	}
	return 0, nil
}

func (m *mockSeatRepository) CountAll(ctx context.Context, subscriptionID vo.ID) (map[vo.SeatScope]int, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx, subscriptionID)
	}
	return map[vo.SeatScope]int{}, nil
}

func (m *mockSeatRepository) Update(ctx context.Context, seat *plan.SeatUsage) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, seat)
	}
	return nil
}

func (m *mockSeatRepository) Delete(ctx context.Context, seat *plan.SeatUsage) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, seat)
	}
	return nil
}

type mockCancellationRepository struct {
	CreateFunc             func(ctx context.Context, c *plan.Cancellation) error
	GetByIDFunc            func(ctx context.Context, id vo.ID) (*plan.Cancellation, error)
	ListBySubscriptionFunc func(ctx context.Context, subscriptionID vo.ID) ([]*plan.Cancellation, error)
	UpdateFunc             func(ctx context.Context, c *plan.Cancellation) error
}

func (m *mockCancellationRepository) Create(ctx context.Context, c *plan.Cancellation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCancellationRepository) GetByID(ctx context.Context, id vo.ID) (*plan.Cancellation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCancellationRepository) ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*plan.Cancellation, error) {
	if m.ListBySubscriptionFunc != nil {
		return m.ListBySubscriptionFunc(ctx, subscriptionID)
	}
	return nil, nil
}

func (m *mockCancellationRepository) Update(ctx context.Context, c *plan.Cancellation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

type mockHistoryRepository struct {
	CreateFunc             func(ctx context.Context, h *plan.SubscriptionHistory) error
	ListBySubscriptionFunc func(ctx context.Context, subscriptionID vo.ID, limit int) ([]*plan.SubscriptionHistory, error)
}

func (m *mockHistoryRepository) Create(ctx context.Context, h *plan.SubscriptionHistory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, h)
	}
	return nil
}

func (m *mockHistoryRepository) ListBySubscription(ctx context.Context, subscriptionID vo.ID, limit int) ([]*plan.SubscriptionHistory, error) {
	if m.ListBySubscriptionFunc != nil {
		return m.ListBySubscriptionFunc(ctx, subscriptionID, limit)
	}
	return nil, nil
}

type mockPlanReportRepository struct {
	CreateFunc         func(ctx context.Context, r *plan.PlanReport) error
	GetByIDFunc        func(ctx context.Context, id vo.ID) (*plan.PlanReport, error)
	ListByPlanTypeFunc func(ctx context.Context, planTypeID vo.ID) ([]*plan.PlanReport, error)
	UpdateFunc         func(ctx context.Context, r *plan.PlanReport) error
	DeleteFunc         func(ctx context.Context, r *plan.PlanReport) error
}

func (m *mockPlanReportRepository) Create(ctx context.Context, r *plan.PlanReport) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockPlanReportRepository) GetByID(ctx context.Context, id vo.ID) (*plan.PlanReport, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanReportRepository) ListByPlanType(ctx context.Context, planTypeID vo.ID) ([]*plan.PlanReport, error) {
	if m.ListByPlanTypeFunc != nil {
		return m.ListByPlanTypeFunc(ctx, planTypeID)
	}
	return nil, nil
}

func (m *mockPlanReportRepository) Update(ctx context.Context, r *plan.PlanReport) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockPlanReportRepository) Delete(ctx context.Context, r *plan.PlanReport) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, r)
	}
	return nil
}

type mockCatalogRepository struct {
	ListFunc    func(ctx context.Context, query plan.CatalogQuery) ([]*plan.PublicPlan, int64, error)
	GetByIDFunc func(ctx context.Context, id vo.ID) (*plan.PublicPlan, error)
}

func (m *mockCatalogRepository) List(ctx context.Context, query plan.CatalogQuery) ([]*plan.PublicPlan, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return nil, 0, nil
}

func (m *mockCatalogRepository) GetByID(ctx context.Context, id vo.ID) (*plan.PublicPlan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

// mockTxManager runs fn directly and records the actor of each call.
type mockTxManager struct {
	actors []uint64
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, actorID uint64, fn func(ctx context.Context) error) error {
	m.actors = append(m.actors, actorID)
	return fn(ctx)
}

type mockMetrics struct {
	admitted     map[vo.SeatScope]int
	rejected     []string
	removed      int
	scopeChanges int
	syncAdded    int
	syncRejected int
	requested    int
	confirmed    int
	expired      int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{admitted: map[vo.SeatScope]int{}}
}

func (m *mockMetrics) SeatAdmitted(scope vo.SeatScope) { m.admitted[scope]++ }
func (m *mockMetrics) SeatRejected(scope vo.SeatScope, reason string) {
	m.rejected = append(m.rejected, scope.String()+":"+reason)
}
func (m *mockMetrics) SeatRemoved(vo.SeatScope)                { m.removed++ }
func (m *mockMetrics) ScopeChanged(vo.SeatScope, vo.SeatScope) { m.scopeChanges++ }
func (m *mockMetrics) SyncCompleted(added, _, _ int)           { m.syncAdded += added }
func (m *mockMetrics) SyncRejected()                           { m.syncRejected++ }
func (m *mockMetrics) CancellationRequested()                  { m.requested++ }
func (m *mockMetrics) CancellationConfirmed()                  { m.confirmed++ }
func (m *mockMetrics) SubscriptionsExpired(n int)              { m.expired += n }

type mockNotifier struct {
	RequestedFunc func(ctx context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error
	ConfirmedFunc func(ctx context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error
}

func (m *mockNotifier) CancellationRequested(ctx context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error {
	if m.RequestedFunc != nil {
		return m.RequestedFunc(ctx, sub, c)
	}
	return nil
}

func (m *mockNotifier) CancellationConfirmed(ctx context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error {
	if m.ConfirmedFunc != nil {
		return m.ConfirmedFunc(ctx, sub, c)
	}
	return nil
}

// passthroughSanitizer leaves text unchanged.
type passthroughSanitizer struct{}

func (passthroughSanitizer) StripHTML(text string) string { return text }

type mockRenderer struct {
	RenderFunc func(markdown string) (string, error)
}

func (m *mockRenderer) Render(markdown string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockPriceFormatter struct{}

func (mockPriceFormatter) Currency() string { return "BRL" }
func (mockPriceFormatter) Format(cents int64) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}

type mockLogger struct {
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) WithContext(ctx context.Context) logger.Interface {
	return m
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
