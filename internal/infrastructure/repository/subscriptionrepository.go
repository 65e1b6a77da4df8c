package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/cache"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/mappers"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// SubscriptionRepositoryImpl persists company_plan rows. The active
// subscription of a company is cached, misses included.
type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		cache:  planCache,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *plan.CompanySubscription) error {
	model := r.mapper.ToModel(subscription)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err,
			"company_id", model.CompanyID,
			"plan_id", model.PlanID,
		)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	subscription.SetID(vo.ID(model.ID))
	invalidate(ctx, r.cache, cache.EventSubscriptionCreated, cache.EventScope{CompanyID: model.CompanyID})

	r.logger.Infow("subscription created successfully",
		"subscription_id", model.ID,
		"company_id", model.CompanyID,
		"plan_id", model.PlanID,
	)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*plan.CompanySubscription, error) {
	return r.getByID(db.GetTxFromContext(ctx, r.db), id)
}

func (r *SubscriptionRepositoryImpl) GetByIDForUpdate(ctx context.Context, id vo.ID) (*plan.CompanySubscription, error) {
	return r.getByID(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *SubscriptionRepositoryImpl) getByID(tx *gorm.DB, id vo.ID) (*plan.CompanySubscription, error) {
	var model models.CompanyPlanModel
	if err := tx.First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetActiveByCompany(ctx context.Context, companyID vo.ID) (*plan.CompanySubscription, error) {
	key := cache.ActivePlanKey(companyID.Uint64())
	cacheable := r.cache != nil && !db.InTransaction(ctx)

	if cacheable {
		var cached *models.CompanyPlanModel
		if hit, err := r.cache.Get(ctx, key, &cached); err == nil && hit {
			return r.mapper.ToEntity(cached)
		}
	}

	var model models.CompanyPlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_id = ? AND status = ?", companyID.Uint64(), vo.StatusActive.String()).
		Order("start_date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if cacheable {
				_ = r.cache.SetNullMarker(ctx, key)
			}
			return nil, nil
		}
		r.logger.Errorw("failed to get active subscription", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}

	if cacheable {
		_ = r.cache.Set(ctx, key, &model, cache.ActivePlanTTL)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ListByCompany(ctx context.Context, companyID vo.ID) ([]*plan.CompanySubscription, error) {
	var subModels []*models.CompanyPlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_id = ?", companyID.Uint64()).
		Order("start_date DESC").
		Find(&subModels).Error
	if err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subModels)
}

func (r *SubscriptionRepositoryImpl) ListExpired(ctx context.Context, before time.Time) ([]*plan.CompanySubscription, error) {
	var subModels []*models.CompanyPlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND end_date < ?", vo.StatusActive.String(), before).
		Order("end_date ASC").
		Find(&subModels).Error
	if err != nil {
		r.logger.Errorw("failed to list expired subscriptions", "error", err, "before", before)
		return nil, fmt.Errorf("failed to list expired subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subModels)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *plan.CompanySubscription) error {
	model := r.mapper.ToModel(subscription)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.CompanyPlanModel{}).
		Where("company_plan_id = ?", model.ID).
		Updates(map[string]any{
			"plan_id":                model.PlanID,
			"amount":                 model.Amount,
			"start_date":             model.StartDate,
			"end_date":               model.EndDate,
			"status":                 model.Status,
			"additional_user_amount": model.AdditionalUserAmount,
			"active_company_id":      model.ActiveCompanyID,
			"updated_at":             model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", model.ID)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	scope := cache.EventScope{CompanyID: model.CompanyID}
	invalidate(ctx, r.cache, cache.EventSubscriptionUpdated, scope)
	if model.Status != vo.StatusActive.String() {
		invalidate(ctx, r.cache, cache.EventSubscriptionStatusChanged, scope)
	}

	r.logger.Infow("subscription updated successfully", "subscription_id", model.ID, "status", model.Status)
	return nil
}
