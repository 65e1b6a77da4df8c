package repository

import (
	"context"
	"errors"
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

type CancellationRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	mapper mappers.CancellationMapper
	logger logger.Interface
}

func NewCancellationRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.CancellationRepository {
	return &CancellationRepositoryImpl{
		db:     db,
		cache:  planCache,
		mapper: mappers.NewCancellationMapper(),
		logger: logger,
	}
}

func (r *CancellationRepositoryImpl) Create(ctx context.Context, cancellation *plan.Cancellation) error {
	model, err := r.mapper.ToModel(cancellation)
	if err != nil {
		r.logger.Errorw("failed to convert cancellation to model", "error", err)
		return fmt.Errorf("failed to convert cancellation to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create cancellation", "error", err, "subscription_id", model.SubscriptionID)
		return fmt.Errorf("failed to create cancellation: %w", err)
	}

	cancellation.SetID(vo.ID(model.ID))
	r.emit(ctx, tx, cache.EventCancellationCreated, model.SubscriptionID)

	r.logger.Infow("cancellation created successfully",
		"cancellation_id", model.ID,
		"subscription_id", model.SubscriptionID,
		"requested_by", model.RequestedByUserID,
	)
	return nil
}

func (r *CancellationRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*plan.Cancellation, error) {
	var model models.CancellationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get cancellation by ID", "error", err, "cancellation_id", id)
		return nil, fmt.Errorf("failed to get cancellation: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CancellationRepositoryImpl) ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*plan.Cancellation, error) {
	var cancellationModels []*models.CancellationModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_plan_id = ?", subscriptionID.Uint64()).
		Order("requested_at DESC, plan_cancellation_id DESC").
		Find(&cancellationModels).Error
	if err != nil {
		r.logger.Errorw("failed to list cancellations", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list cancellations: %w", err)
	}

	return r.mapper.ToEntities(cancellationModels)
}

func (r *CancellationRepositoryImpl) Update(ctx context.Context, cancellation *plan.Cancellation) error {
	model, err := r.mapper.ToModel(cancellation)
	if err != nil {
		r.logger.Errorw("failed to convert cancellation to model", "error", err)
		return fmt.Errorf("failed to convert cancellation to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.CancellationModel{}).
		Where("plan_cancellation_id = ?", model.ID).
		Updates(map[string]any{
			"cancellation_reason":  model.Reason,
			"details":              model.Details,
			"status":               model.Status,
			"confirmed_by_user_id": model.ConfirmedByUserID,
			"cancelled_at":         model.CancelledAt,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update cancellation", "error", result.Error, "cancellation_id", model.ID)
		return fmt.Errorf("failed to update cancellation: %w", result.Error)
	}

	r.emit(ctx, tx, cache.EventCancellationStatusChanged, model.SubscriptionID)

	r.logger.Infow("cancellation updated successfully", "cancellation_id", model.ID, "status", model.Status)
	return nil
}

func (r *CancellationRepositoryImpl) emit(ctx context.Context, tx *gorm.DB, event cache.Event, subscriptionID uint64) {
	if r.cache == nil {
		return
	}
	companyID, err := companyOf(tx, subscriptionID)
	if err != nil {
		r.logger.Warnw("failed to resolve company for cache invalidation", "error", err, "subscription_id", subscriptionID)
		return
	}
	invalidate(ctx, r.cache, event, cache.EventScope{CompanyID: companyID})
}
