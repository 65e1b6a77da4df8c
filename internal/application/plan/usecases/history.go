package usecases

import (
	"context"
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

const defaultRecentHistory = 10

type GetSubscriptionHistoryUseCase struct {
	historyRepo plan.SubscriptionHistoryRepository
	logger      logger.Interface
}

func NewGetSubscriptionHistoryUseCase(historyRepo plan.SubscriptionHistoryRepository, logger logger.Interface) *GetSubscriptionHistoryUseCase {
	return &GetSubscriptionHistoryUseCase{historyRepo: historyRepo, logger: logger}
}

// Execute returns the history of a subscription newest first. recent > 0
// limits the result to that many entries; recent < 0 uses the default of 10.
func (uc *GetSubscriptionHistoryUseCase) Execute(ctx context.Context, subscriptionID int64, recent int) ([]*dto.HistoryDTO, error) {
	subID, err := parseID("subscription ID", subscriptionID)
	if err != nil {
		return nil, err
	}
	if recent < 0 {
		recent = defaultRecentHistory
	}

	entries, err := uc.historyRepo.ListBySubscription(ctx, subID, recent)
	if err != nil {
		uc.logger.Errorw("failed to list subscription history", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list subscription history: %w", err)
	}
	return dto.ToList(entries, dto.ToHistoryDTO), nil
}
