package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	CompanyID int64
	PlanID    int64
	// Amount defaults to the plan's default amount when nil.
	Amount               *int64
	StartDate            time.Time
	EndDate              time.Time
	AdditionalUserAmount int64
	ActorID              uint64
}

type UpdateSubscriptionCommand struct {
	Amount               int64
	EndDate              time.Time
	AdditionalUserAmount int64
	ActorID              uint64
}

type ManageSubscriptionsUseCase struct {
	subscriptionRepo plan.SubscriptionRepository
	planRepo         plan.PlanRepository
	txMgr            TxManager
	logger           logger.Interface
}

func NewManageSubscriptionsUseCase(
	subscriptionRepo plan.SubscriptionRepository,
	planRepo plan.PlanRepository,
	txMgr TxManager,
	logger logger.Interface,
) *ManageSubscriptionsUseCase {
	return &ManageSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// Create subscribes a company to a plan. A company holds at most one active
// subscription; the check here is backed by a unique storage constraint.
func (uc *ManageSubscriptionsUseCase) Create(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	companyID, err := parseID("company ID", cmd.CompanyID)
	if err != nil {
		return nil, err
	}
	planID, err := parseID("plan ID", cmd.PlanID)
	if err != nil {
		return nil, err
	}

	var sub *plan.CompanySubscription
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		p, err := uc.planRepo.GetByID(txCtx, planID)
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if p == nil {
			return toAppError(plan.ErrPlanNotFound)
		}

		active, err := uc.subscriptionRepo.GetActiveByCompany(txCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to check active subscription: %w", err)
		}
		if active != nil {
			return toAppError(plan.ErrActiveSubscriptionExists)
		}

		amount := p.DefaultAmount()
		if cmd.Amount != nil {
			amount = *cmd.Amount
		}
		sub, err = plan.NewCompanySubscription(companyID, planID, amount, cmd.StartDate, cmd.EndDate, cmd.AdditionalUserAmount)
		if err != nil {
			return toAppError(err)
		}

		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			if errors.IsDuplicateError(err) {
				return toAppError(plan.ErrActiveSubscriptionExists)
			}
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "company_id", cmd.CompanyID, "plan_id", cmd.PlanID)
		return nil, err
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"company_id", companyID,
		"plan_id", planID,
		"amount", sub.Amount(),
	)
	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *ManageSubscriptionsUseCase) Get(ctx context.Context, id int64) (*dto.SubscriptionDTO, error) {
	subID, err := parseID("subscription ID", id)
	if err != nil {
		return nil, err
	}
	sub, err := uc.subscriptionRepo.GetByID(ctx, subID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, toAppError(plan.ErrSubscriptionNotFound)
	}
	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *ManageSubscriptionsUseCase) GetActiveByCompany(ctx context.Context, companyID int64) (*dto.SubscriptionDTO, error) {
	cID, err := parseID("company ID", companyID)
	if err != nil {
		return nil, err
	}
	sub, err := uc.subscriptionRepo.GetActiveByCompany(ctx, cID)
	if err != nil {
		uc.logger.Errorw("failed to get active subscription", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}
	if sub == nil {
		return nil, toAppError(plan.ErrNoActiveSubscription)
	}
	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *ManageSubscriptionsUseCase) ListByCompany(ctx context.Context, companyID int64) ([]*dto.SubscriptionDTO, error) {
	cID, err := parseID("company ID", companyID)
	if err != nil {
		return nil, err
	}
	subs, err := uc.subscriptionRepo.ListByCompany(ctx, cID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return dto.ToList(subs, dto.ToSubscriptionDTO), nil
}

// Update changes amount, end date and blanket additional user amount.
func (uc *ManageSubscriptionsUseCase) Update(ctx context.Context, id int64, cmd UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	subID, err := parseID("subscription ID", id)
	if err != nil {
		return nil, err
	}

	var sub *plan.CompanySubscription
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		sub, err = uc.subscriptionRepo.GetByIDForUpdate(txCtx, subID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return toAppError(plan.ErrSubscriptionNotFound)
		}
		if err := sub.UpdateTerms(cmd.Amount, cmd.EndDate, cmd.AdditionalUserAmount); err != nil {
			return toAppError(err)
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", id)
		return nil, err
	}

	uc.logger.Infow("subscription updated",
		"subscription_id", subID,
		"amount", sub.Amount(),
		"additional_user_amount", sub.AdditionalUserAmount(),
	)
	return dto.ToSubscriptionDTO(sub), nil
}
