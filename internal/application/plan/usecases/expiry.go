package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// ExpireSubscriptionsUseCase moves active subscriptions past their end date
// to expired. It runs from the scheduler with the system actor.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo plan.SubscriptionRepository
	metrics          SeatMetrics
	actorID          uint64
	txMgr            TxManager
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo plan.SubscriptionRepository,
	metrics SeatMetrics,
	actorID uint64,
	txMgr TxManager,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	if metrics == nil {
		metrics = NoopMetrics()
	}
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		metrics:          metrics,
		actorID:          actorID,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// Execute expires every subscription that ended before now and returns how
// many were changed. Each subscription is expired in its own transaction so
// one failure does not hold back the rest.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	due, err := uc.subscriptionRepo.ListExpired(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to list expired subscriptions", "error", err)
		return 0, fmt.Errorf("failed to list expired subscriptions: %w", err)
	}

	expired := 0
	var firstErr error
	for _, candidate := range due {
		err := uc.txMgr.RunInTransaction(ctx, uc.actorID, func(txCtx context.Context) error {
			sub, err := uc.subscriptionRepo.GetByIDForUpdate(txCtx, candidate.ID())
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}
			if sub == nil || !sub.IsActive() || !sub.IsExpiredAt(now) {
				return nil
			}
			if err := sub.Expire(); err != nil {
				return toAppError(err)
			}
			if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
				return fmt.Errorf("failed to update subscription: %w", err)
			}
			expired++
			return nil
		})
		if err != nil {
			uc.logger.Errorw("failed to expire subscription", "error", err, "subscription_id", candidate.ID())
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if expired > 0 {
		uc.metrics.SubscriptionsExpired(expired)
		uc.logger.Infow("subscriptions expired", "count", expired)
	}
	return expired, firstErr
}
