package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/mappers"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// HistoryRepositoryImpl appends to company_plan_history. Entries are never
// updated or deleted.
type HistoryRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	mapper mappers.HistoryMapper
	logger logger.Interface
}

func NewHistoryRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.SubscriptionHistoryRepository {
	return &HistoryRepositoryImpl{
		db:     db,
		cache:  planCache,
		mapper: mappers.NewHistoryMapper(),
		logger: logger,
	}
}

func (r *HistoryRepositoryImpl) Create(ctx context.Context, history *plan.SubscriptionHistory) error {
	model, err := r.mapper.ToModel(history)
	if err != nil {
		r.logger.Errorw("failed to convert history entry to model", "error", err)
		return fmt.Errorf("failed to convert history entry to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create history entry", "error", err,
			"subscription_id", model.SubscriptionID,
			"change_type", model.ChangeType,
		)
		return fmt.Errorf("failed to create history entry: %w", err)
	}

	history.SetID(vo.ID(model.ID))
	invalidate(ctx, r.cache, cache.EventHistoryCreated, cache.EventScope{CompanyID: model.CompanyID})

	r.logger.Debugw("history entry created",
		"history_id", model.ID,
		"subscription_id", model.SubscriptionID,
		"change_type", model.ChangeType,
	)
	return nil
}

func (r *HistoryRepositoryImpl) ListBySubscription(ctx context.Context, subscriptionID vo.ID, limit int) ([]*plan.SubscriptionHistory, error) {
	var historyModels []*models.HistoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_plan_id = ?", subscriptionID.Uint64()).
		Scopes(db.Paginate(limit, 0)).
		Order("change_at DESC, history_id DESC").
		Find(&historyModels).Error
	if err != nil {
		r.logger.Errorw("failed to list history", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return r.mapper.ToEntities(historyModels)
}
