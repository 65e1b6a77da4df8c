package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type ChangePlanCommand struct {
	SubscriptionID int64
	NewPlanID      int64
	// Amount defaults to the new plan's default amount when nil.
	Amount  *int64
	Reason  string
	ActorID uint64
}

type RenewSubscriptionCommand struct {
	SubscriptionID int64
	NewEndDate     time.Time
	Reason         string
	ActorID        uint64
}

// SubscriptionChangesUseCase moves subscriptions between plans and periods,
// recording one history entry per change.
type SubscriptionChangesUseCase struct {
	subscriptionRepo plan.SubscriptionRepository
	planRepo         plan.PlanRepository
	historyRepo      plan.SubscriptionHistoryRepository
	sanitizer        TextSanitizer
	txMgr            TxManager
	logger           logger.Interface
}

func NewSubscriptionChangesUseCase(
	subscriptionRepo plan.SubscriptionRepository,
	planRepo plan.PlanRepository,
	historyRepo plan.SubscriptionHistoryRepository,
	sanitizer TextSanitizer,
	txMgr TxManager,
	logger logger.Interface,
) *SubscriptionChangesUseCase {
	return &SubscriptionChangesUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		historyRepo:      historyRepo,
		sanitizer:        sanitizer,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *SubscriptionChangesUseCase) ChangePlan(ctx context.Context, cmd ChangePlanCommand) (*dto.SubscriptionDTO, error) {
	subID, err := parseID("subscription ID", cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	newPlanID, err := parseID("plan ID", cmd.NewPlanID)
	if err != nil {
		return nil, err
	}
	actor, err := parseID("acting user ID", int64(cmd.ActorID))
	if err != nil {
		return nil, err
	}

	var (
		sub        *plan.CompanySubscription
		changeType vo.ChangeType
	)
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		sub, err = uc.subscriptionRepo.GetByIDForUpdate(txCtx, subID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return toAppError(plan.ErrSubscriptionNotFound)
		}

		current, err := uc.planRepo.GetByID(txCtx, sub.PlanID())
		if err != nil {
			return fmt.Errorf("failed to get current plan: %w", err)
		}
		next, err := uc.planRepo.GetByID(txCtx, newPlanID)
		if err != nil {
			return fmt.Errorf("failed to get new plan: %w", err)
		}
		if next == nil {
			return toAppError(plan.ErrPlanNotFound)
		}

		previousAmount := sub.Amount()
		if current != nil {
			previousAmount = current.DefaultAmount()
		}
		changeType = plan.ClassifyPlanChange(previousAmount, next.DefaultAmount())

		amount := next.DefaultAmount()
		if cmd.Amount != nil {
			amount = *cmd.Amount
		}
		previousPlanID := sub.PlanID()
		if err := sub.ChangePlan(newPlanID, amount); err != nil {
			return toAppError(err)
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		history, err := plan.NewSubscriptionHistory(sub, &previousPlanID, &newPlanID, changeType,
			uc.sanitizer.StripHTML(cmd.Reason), actor, map[string]any{
				"previous_amount": previousAmount,
				"new_amount":      amount,
			})
		if err != nil {
			return toAppError(err)
		}
		if err := uc.historyRepo.Create(txCtx, history); err != nil {
			return fmt.Errorf("failed to record history: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to change subscription plan", "error", err,
			"subscription_id", cmd.SubscriptionID, "new_plan_id", cmd.NewPlanID)
		return nil, err
	}

	uc.logger.Infow("subscription plan changed",
		"subscription_id", subID,
		"new_plan_id", newPlanID,
		"change_type", changeType,
		"actor_id", cmd.ActorID,
	)
	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *SubscriptionChangesUseCase) Renew(ctx context.Context, cmd RenewSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	subID, err := parseID("subscription ID", cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	actor, err := parseID("acting user ID", int64(cmd.ActorID))
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

		previousEnd := sub.EndDate()
		if err := sub.Renew(cmd.NewEndDate); err != nil {
			return toAppError(err)
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		planID := sub.PlanID()
		history, err := plan.NewSubscriptionHistory(sub, &planID, &planID, vo.ChangeRenewal,
			uc.sanitizer.StripHTML(cmd.Reason), actor, map[string]any{
				"previous_end_date": previousEnd.Format(time.RFC3339),
				"new_end_date":      cmd.NewEndDate.Format(time.RFC3339),
			})
		if err != nil {
			return toAppError(err)
		}
		if err := uc.historyRepo.Create(txCtx, history); err != nil {
			return fmt.Errorf("failed to record history: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to renew subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, err
	}

	uc.logger.Infow("subscription renewed", "subscription_id", subID, "end_date", sub.EndDate())
	return dto.ToSubscriptionDTO(sub), nil
}
