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
	apperrors "github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		cache:  planCache,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "name", p.Name())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	p.SetID(vo.ID(model.ID))
	invalidate(ctx, r.cache, cache.EventPlanCreated, cache.EventScope{PlanTypeID: model.PlanTypeID})

	r.logger.Infow("plan created successfully", "plan_id", model.ID, "name", model.Name)
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*plan.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("plan_id = ?", model.ID).
		Updates(map[string]any{
			"plan_name":      model.Name,
			"description":    model.Description,
			"default_amount": model.DefaultAmount,
			"plan_type_id":   model.PlanTypeID,
			"plan_duration":  model.Duration,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", model.ID)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	invalidate(ctx, r.cache, cache.EventPlanUpdated, cache.EventScope{PlanTypeID: model.PlanTypeID})

	r.logger.Infow("plan updated successfully", "plan_id", model.ID)
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id vo.ID) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanModel{}, id.Uint64())
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(plan.ErrPlanNotFound.Error())
	}

	invalidate(ctx, r.cache, cache.EventPlanDeleted, cache.EventScope{})

	r.logger.Infow("plan deleted successfully", "plan_id", id)
	return nil
}

func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Order("created_at DESC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}

func (r *PlanRepositoryImpl) CountByPlanType(ctx context.Context, planTypeID vo.ID) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("plan_type_id = ?", planTypeID.Uint64()).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count plans by type", "error", err, "plan_type_id", planTypeID)
		return 0, fmt.Errorf("failed to count plans by type: %w", err)
	}
	return count, nil
}
