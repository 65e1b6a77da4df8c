package usecases

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

var tracer = otel.Tracer("github.com/GraziArcH/domain-sales/seatengine")

type AdmitSeatCommand struct {
	SubscriptionID int64
	UserID         int64
	Admin          bool
	ActorID        uint64
}

type ChangeSeatScopeCommand struct {
	CompanyID int64
	UserID    int64
	Admin     bool
	ActorID   uint64
}

type RemoveSeatCommand struct {
	SubscriptionID int64
	UserID         int64
	ActorID        uint64
}

type SyncSeatsCommand struct {
	CompanyID int64
	Users     []plan.SeatCandidate
	ActorID   uint64
}

// SeatEngineUseCase answers pricing and admission questions for subscription
// seats and applies seat changes. Every check that precedes a seat write runs
// with the subscription row locked.
type SeatEngineUseCase struct {
	subscriptionRepo plan.SubscriptionRepository
	planRepo         plan.PlanRepository
	seatLimitRepo    plan.SeatLimitConfigRepository
	overrideRepo     plan.PriceOverrideRepository
	seatRepo         plan.SeatUsageRepository
	reportRepo       plan.PlanReportRepository
	metrics          SeatMetrics
	txMgr            TxManager
	logger           logger.Interface
}

func NewSeatEngineUseCase(
	subscriptionRepo plan.SubscriptionRepository,
	planRepo plan.PlanRepository,
	seatLimitRepo plan.SeatLimitConfigRepository,
	overrideRepo plan.PriceOverrideRepository,
	seatRepo plan.SeatUsageRepository,
	reportRepo plan.PlanReportRepository,
	metrics SeatMetrics,
	txMgr TxManager,
	logger logger.Interface,
) *SeatEngineUseCase {
	if metrics == nil {
		metrics = NoopMetrics()
	}
	return &SeatEngineUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		seatLimitRepo:    seatLimitRepo,
		overrideRepo:     overrideRepo,
		seatRepo:         seatRepo,
		reportRepo:       reportRepo,
		metrics:          metrics,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "SeatEngine."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (uc *SeatEngineUseCase) getSubscription(ctx context.Context, id vo.ID, lock bool) (*plan.CompanySubscription, error) {
	var (
		sub *plan.CompanySubscription
		err error
	)
	if lock {
		sub, err = uc.subscriptionRepo.GetByIDForUpdate(ctx, id)
	} else {
		sub, err = uc.subscriptionRepo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, toAppError(plan.ErrSubscriptionNotFound)
	}
	return sub, nil
}

// lockActiveSubscription finds the company's active subscription and locks it.
func (uc *SeatEngineUseCase) lockActiveSubscription(ctx context.Context, companyID vo.ID) (*plan.CompanySubscription, error) {
	active, err := uc.subscriptionRepo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}
	if active == nil {
		return nil, toAppError(plan.ErrNoActiveSubscription)
	}
	sub, err := uc.getSubscription(ctx, active.ID(), true)
	if err != nil {
		return nil, err
	}
	if !sub.IsActive() {
		return nil, toAppError(plan.ErrNoActiveSubscription)
	}
	return sub, nil
}

func (uc *SeatEngineUseCase) planTypeOf(ctx context.Context, sub *plan.CompanySubscription) (vo.ID, error) {
	p, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		return 0, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return 0, toAppError(plan.ErrPlanNotFound)
	}
	return p.PlanTypeID(), nil
}

func (uc *SeatEngineUseCase) loadLimits(ctx context.Context, planTypeID vo.ID) (map[vo.SeatScope]*plan.SeatLimitConfig, error) {
	configs, err := uc.seatLimitRepo.ListByPlanType(ctx, planTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seat limits: %w", err)
	}
	out := make(map[vo.SeatScope]*plan.SeatLimitConfig, len(configs))
	for _, c := range configs {
		out[c.Scope()] = c
	}
	return out, nil
}

// admits counts the seats of scope and compares them with the configured limit.
func (uc *SeatEngineUseCase) admits(ctx context.Context, sub *plan.CompanySubscription, scope vo.SeatScope) (bool, *plan.SeatLimitConfig, error) {
	planTypeID, err := uc.planTypeOf(ctx, sub)
	if err != nil {
		return false, nil, err
	}
	config, err := uc.seatLimitRepo.GetByPlanTypeAndScope(ctx, planTypeID, scope)
	if err != nil {
		return false, nil, fmt.Errorf("failed to get seat limit: %w", err)
	}
	if config == nil {
		return false, nil, toAppError(fmt.Errorf("%w: no %s limit for plan type %s", plan.ErrSeatLimitNotFound, scope, planTypeID))
	}
	count, err := uc.seatRepo.CountByScope(ctx, sub.ID(), scope)
	if err != nil {
		return false, nil, fmt.Errorf("failed to count seats: %w", err)
	}
	return plan.Admits(count, config), config, nil
}

// resolvePrice applies the pricing precedence, reading the standard price
// only when neither an override nor a blanket amount applies.
func (uc *SeatEngineUseCase) resolvePrice(ctx context.Context, sub *plan.CompanySubscription, scope vo.SeatScope, quantity int) (plan.ExtraSeatPrice, error) {
	override, err := uc.overrideRepo.GetBySubscriptionAndScope(ctx, sub.ID(), scope)
	if err != nil {
		return plan.ExtraSeatPrice{}, fmt.Errorf("failed to get price override: %w", err)
	}

	var standard *plan.SeatLimitConfig
	if override == nil && !sub.HasBlanketAmount() {
		planTypeID, err := uc.planTypeOf(ctx, sub)
		if err != nil {
			return plan.ExtraSeatPrice{}, err
		}
		standard, err = uc.seatLimitRepo.GetByPlanTypeAndScope(ctx, planTypeID, scope)
		if err != nil {
			return plan.ExtraSeatPrice{}, fmt.Errorf("failed to get seat limit: %w", err)
		}
	}

	price, err := plan.ResolveExtraSeatPrice(sub, override, standard, quantity)
	if err != nil {
		return plan.ExtraSeatPrice{}, toAppError(err)
	}
	return price, nil
}

// ResolveExtraSeatPrice returns the price of quantity extra seats of a scope.
func (uc *SeatEngineUseCase) ResolveExtraSeatPrice(ctx context.Context, subscriptionID int64, admin bool, quantity int) (result *dto.ExtraSeatPriceDTO, err error) {
	scope := parseScope(admin)
	ctx, span := startSpan(ctx, "ResolveExtraSeatPrice",
		attribute.Int64("subscription_id", subscriptionID), attribute.String("scope", scope.String()))
	defer func() { endSpan(span, err) }()

	subID, err := parseID("subscription ID", subscriptionID)
	if err != nil {
		return nil, err
	}
	if quantity == 0 {
		quantity = 1
	}

	sub, err := uc.getSubscription(ctx, subID, false)
	if err != nil {
		return nil, err
	}
	price, err := uc.resolvePrice(ctx, sub, scope, quantity)
	if err != nil {
		uc.logger.Warnw("failed to resolve extra seat price", "error", err, "subscription_id", subscriptionID, "scope", scope)
		return nil, err
	}
	return dto.ToExtraSeatPriceDTO(subID, scope, price), nil
}

// CanAdmitSeat reports whether one more seat of the scope fits the limit.
func (uc *SeatEngineUseCase) CanAdmitSeat(ctx context.Context, subscriptionID int64, admin bool) (ok bool, err error) {
	scope := parseScope(admin)
	ctx, span := startSpan(ctx, "CanAdmitSeat",
		attribute.Int64("subscription_id", subscriptionID), attribute.String("scope", scope.String()))
	defer func() { endSpan(span, err) }()

	subID, err := parseID("subscription ID", subscriptionID)
	if err != nil {
		return false, err
	}
	sub, err := uc.getSubscription(ctx, subID, false)
	if err != nil {
		return false, err
	}
	if !sub.IsActive() {
		return false, toAppError(plan.ErrSubscriptionInactive)
	}

	ok, _, err = uc.admits(ctx, sub, scope)
	if err != nil {
		return false, err
	}
	span.SetAttributes(attribute.Bool("admitted", ok))
	return ok, nil
}

// AdmitSeat gives the user a seat of the scope in the subscription.
func (uc *SeatEngineUseCase) AdmitSeat(ctx context.Context, cmd AdmitSeatCommand) (result *dto.SeatDTO, err error) {
	scope := parseScope(cmd.Admin)
	ctx, span := startSpan(ctx, "AdmitSeat",
		attribute.Int64("subscription_id", cmd.SubscriptionID),
		attribute.Int64("user_id", cmd.UserID),
		attribute.String("scope", scope.String()))
	defer func() { endSpan(span, err) }()

	subID, err := parseID("subscription ID", cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user ID", cmd.UserID)
	if err != nil {
		return nil, err
	}

	var seat *plan.SeatUsage
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		sub, err := uc.getSubscription(txCtx, subID, true)
		if err != nil {
			return err
		}
		if !sub.IsActive() {
			return toAppError(plan.ErrSubscriptionInactive)
		}

		existing, err := uc.seatRepo.GetBySubscriptionAndUser(txCtx, subID, userID)
		if err != nil {
			return fmt.Errorf("failed to check user seat: %w", err)
		}
		if existing != nil {
			return toAppError(plan.ErrSeatAlreadyOccupied)
		}

		ok, config, err := uc.admits(txCtx, sub, scope)
		if err != nil {
			return err
		}
		if !ok {
			uc.metrics.SeatRejected(scope, "limit")
			return toAppError(plan.ErrLimitReached(scope, config.MaxSeats()))
		}

		seat, err = plan.NewSeatUsage(subID, userID, scope)
		if err != nil {
			return toAppError(err)
		}
		if err := uc.seatRepo.Create(txCtx, seat); err != nil {
			if errors.IsDuplicateError(err) {
				return toAppError(plan.ErrSeatAlreadyOccupied)
			}
			return fmt.Errorf("failed to create seat: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to admit seat", "error", err,
			"subscription_id", cmd.SubscriptionID, "user_id", cmd.UserID, "scope", scope)
		return nil, err
	}

	uc.metrics.SeatAdmitted(scope)
	uc.logger.Infow("seat admitted", "subscription_id", subID, "user_id", userID, "scope", scope, "actor_id", cmd.ActorID)
	return dto.ToSeatDTO(seat), nil
}

// ChangeSeatScope moves a user's seat between scopes. Demotion is always
// allowed; promotion needs a free admin seat.
func (uc *SeatEngineUseCase) ChangeSeatScope(ctx context.Context, cmd ChangeSeatScopeCommand) (result *dto.SeatDTO, err error) {
	target := parseScope(cmd.Admin)
	ctx, span := startSpan(ctx, "ChangeSeatScope",
		attribute.Int64("company_id", cmd.CompanyID),
		attribute.Int64("user_id", cmd.UserID),
		attribute.String("scope", target.String()))
	defer func() { endSpan(span, err) }()

	companyID, err := parseID("company ID", cmd.CompanyID)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user ID", cmd.UserID)
	if err != nil {
		return nil, err
	}

	var (
		seat     *plan.SeatUsage
		previous vo.SeatScope
		changed  bool
	)
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		sub, err := uc.lockActiveSubscription(txCtx, companyID)
		if err != nil {
			return err
		}

		seat, err = uc.seatRepo.GetBySubscriptionAndUser(txCtx, sub.ID(), userID)
		if err != nil {
			return fmt.Errorf("failed to get user seat: %w", err)
		}
		if seat == nil {
			return toAppError(plan.ErrSeatNotFound)
		}
		previous = seat.Scope()

		if target.IsAdmin() && !previous.IsAdmin() {
			ok, config, err := uc.admits(txCtx, sub, vo.ScopeAdmin)
			if err != nil {
				return err
			}
			if !ok {
				uc.metrics.SeatRejected(vo.ScopeAdmin, "promotion")
				return toAppError(plan.ErrLimitReached(vo.ScopeAdmin, config.MaxSeats()))
			}
		}

		changed, err = seat.ChangeScope(target)
		if err != nil {
			return toAppError(err)
		}
		if !changed {
			return nil
		}
		if err := uc.seatRepo.Update(txCtx, seat); err != nil {
			return fmt.Errorf("failed to update seat: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to change seat scope", "error", err,
			"company_id", cmd.CompanyID, "user_id", cmd.UserID, "scope", target)
		return nil, err
	}

	if changed {
		uc.metrics.ScopeChanged(previous, target)
		uc.logger.Infow("seat scope changed", "company_id", companyID, "user_id", userID, "from", previous, "to", target)
	}
	return dto.ToSeatDTO(seat), nil
}

// RemoveSeat frees the user's seat in the subscription.
func (uc *SeatEngineUseCase) RemoveSeat(ctx context.Context, cmd RemoveSeatCommand) (err error) {
	ctx, span := startSpan(ctx, "RemoveSeat",
		attribute.Int64("subscription_id", cmd.SubscriptionID), attribute.Int64("user_id", cmd.UserID))
	defer func() { endSpan(span, err) }()

	subID, err := parseID("subscription ID", cmd.SubscriptionID)
	if err != nil {
		return err
	}
	userID, err := parseID("user ID", cmd.UserID)
	if err != nil {
		return err
	}

	var scope vo.SeatScope
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		seat, err := uc.seatRepo.GetBySubscriptionAndUser(txCtx, subID, userID)
		if err != nil {
			return fmt.Errorf("failed to get user seat: %w", err)
		}
		if seat == nil {
			return toAppError(plan.ErrSeatNotFound)
		}
		scope = seat.Scope()
		if err := uc.seatRepo.Delete(txCtx, seat); err != nil {
			return fmt.Errorf("failed to delete seat: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to remove seat", "error", err, "subscription_id", cmd.SubscriptionID, "user_id", cmd.UserID)
		return err
	}

	uc.metrics.SeatRemoved(scope)
	uc.logger.Infow("seat removed", "subscription_id", subID, "user_id", userID, "scope", scope)
	return nil
}

// SyncSeats adds a seat for every reported user not yet holding one. The limit
// check covers the whole batch: if any scope would exceed its limit nothing is inserted.
func (uc *SeatEngineUseCase) SyncSeats(ctx context.Context, cmd SyncSeatsCommand) (result *dto.SyncResultDTO, err error) {
	ctx, span := startSpan(ctx, "SyncSeats",
		attribute.Int64("company_id", cmd.CompanyID), attribute.Int("users", len(cmd.Users)))
	defer func() { endSpan(span, err) }()

	companyID, err := parseID("company ID", cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	var outcome plan.SyncResult
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		sub, err := uc.lockActiveSubscription(txCtx, companyID)
		if err != nil {
			return err
		}

		existing, err := uc.seatRepo.ListBySubscription(txCtx, sub.ID())
		if err != nil {
			return fmt.Errorf("failed to list seats: %w", err)
		}
		current := make(map[vo.SeatScope]int, len(vo.AllScopes))
		for _, seat := range existing {
			current[seat.Scope()]++
		}

		syncPlan := plan.PlanSeatSync(sub.ID(), existing, cmd.Users)

		planTypeID, err := uc.planTypeOf(txCtx, sub)
		if err != nil {
			return err
		}
		limits, err := uc.loadLimits(txCtx, planTypeID)
		if err != nil {
			return err
		}
		if err := plan.CheckSyncLimits(current, syncPlan, limits); err != nil {
			uc.metrics.SyncRejected()
			return toAppError(err)
		}

		if len(syncPlan.ToAdd) > 0 {
			if err := uc.seatRepo.BulkCreate(txCtx, syncPlan.ToAdd); err != nil {
				return fmt.Errorf("failed to insert seats: %w", err)
			}
		}

		outcome = plan.SyncResult{Skipped: syncPlan.Skipped, Errors: syncPlan.Issues}
		for _, seat := range syncPlan.ToAdd {
			outcome.Added = append(outcome.Added, seat.UserID())
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to sync seats", "error", err, "company_id", cmd.CompanyID, "users", len(cmd.Users))
		return nil, err
	}

	uc.metrics.SyncCompleted(len(outcome.Added), len(outcome.Skipped), len(outcome.Errors))
	uc.logger.Infow("seats synced",
		"company_id", companyID,
		"added", len(outcome.Added),
		"skipped", len(outcome.Skipped),
		"errors", len(outcome.Errors),
	)
	return dto.ToSyncResultDTO(outcome), nil
}

func (uc *SeatEngineUseCase) capacityOf(ctx context.Context, sub *plan.CompanySubscription) (plan.Capacity, vo.ID, error) {
	planTypeID, err := uc.planTypeOf(ctx, sub)
	if err != nil {
		return plan.Capacity{}, 0, err
	}
	limits, err := uc.loadLimits(ctx, planTypeID)
	if err != nil {
		return plan.Capacity{}, 0, err
	}
	counts, err := uc.seatRepo.CountAll(ctx, sub.ID())
	if err != nil {
		return plan.Capacity{}, 0, fmt.Errorf("failed to count seats: %w", err)
	}
	return plan.BuildCapacity(sub.ID(), counts, limits), planTypeID, nil
}

func (uc *SeatEngineUseCase) activeSubscription(ctx context.Context, companyID int64) (*plan.CompanySubscription, error) {
	cID, err := parseID("company ID", companyID)
	if err != nil {
		return nil, err
	}
	sub, err := uc.subscriptionRepo.GetActiveByCompany(ctx, cID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}
	if sub == nil {
		return nil, toAppError(plan.ErrNoActiveSubscription)
	}
	return sub, nil
}

// GetCapacity reports per-scope usage of the company's active subscription.
func (uc *SeatEngineUseCase) GetCapacity(ctx context.Context, companyID int64) (result *dto.CapacityDTO, err error) {
	ctx, span := startSpan(ctx, "GetCapacity", attribute.Int64("company_id", companyID))
	defer func() { endSpan(span, err) }()

	sub, err := uc.activeSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}
	capacity, _, err := uc.capacityOf(ctx, sub)
	if err != nil {
		uc.logger.Errorw("failed to compute capacity", "error", err, "company_id", companyID)
		return nil, err
	}
	return dto.ToCapacityDTO(capacity), nil
}

// ValidateAllSeatsWithinLimits checks current seats of any subscription against its limits.
func (uc *SeatEngineUseCase) ValidateAllSeatsWithinLimits(ctx context.Context, subscriptionID int64) (result *dto.CapacityDTO, err error) {
	ctx, span := startSpan(ctx, "ValidateAllSeatsWithinLimits", attribute.Int64("subscription_id", subscriptionID))
	defer func() { endSpan(span, err) }()

	subID, err := parseID("subscription ID", subscriptionID)
	if err != nil {
		return nil, err
	}
	sub, err := uc.getSubscription(ctx, subID, false)
	if err != nil {
		return nil, err
	}
	capacity, _, err := uc.capacityOf(ctx, sub)
	if err != nil {
		return nil, err
	}
	return dto.ToCapacityDTO(capacity), nil
}

// GetUsageSnapshot prices the seats above each limit at the unit price of a
// single extra seat and adds them to the subscription amount.
func (uc *SeatEngineUseCase) GetUsageSnapshot(ctx context.Context, companyID int64) (result *dto.UsageSnapshotDTO, err error) {
	ctx, span := startSpan(ctx, "GetUsageSnapshot", attribute.Int64("company_id", companyID))
	defer func() { endSpan(span, err) }()

	sub, err := uc.activeSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}
	capacity, planTypeID, err := uc.capacityOf(ctx, sub)
	if err != nil {
		return nil, err
	}

	usage := make(map[vo.SeatScope]plan.ScopeUsage, len(vo.AllScopes))
	for _, scope := range vo.AllScopes {
		var price *plan.ExtraSeatPrice
		resolved, err := uc.resolvePrice(ctx, sub, scope, 1)
		switch {
		case err == nil:
			price = &resolved
		case errors.IsNotFoundError(err):
			// no price source for this scope; extra seats cost nothing
		default:
			return nil, err
		}
		usage[scope] = plan.NewScopeUsage(capacity.Scope(scope), price)
	}

	reports, err := uc.reportRepo.ListByPlanType(ctx, planTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan reports: %w", err)
	}

	snapshot := plan.BuildUsageSnapshot(sub, usage[vo.ScopeAdmin], usage[vo.ScopeRegular], reports)
	return dto.ToUsageSnapshotDTO(snapshot), nil
}

// CompanySeats lists the seats of the company's active subscription.
func (uc *SeatEngineUseCase) CompanySeats(ctx context.Context, companyID int64) ([]*dto.SeatDTO, error) {
	sub, err := uc.activeSubscription(ctx, companyID)
	if err != nil {
		return nil, err
	}
	seats, err := uc.seatRepo.ListBySubscription(ctx, sub.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	return dto.ToList(seats, dto.ToSeatDTO), nil
}
