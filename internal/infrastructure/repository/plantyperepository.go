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

type PlanTypeRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	mapper mappers.PlanTypeMapper
	logger logger.Interface
}

func NewPlanTypeRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.PlanTypeRepository {
	return &PlanTypeRepositoryImpl{
		db:     db,
		cache:  planCache,
		mapper: mappers.NewPlanTypeMapper(),
		logger: logger,
	}
}

func (r *PlanTypeRepositoryImpl) Create(ctx context.Context, planType *plan.PlanType) error {
	model := r.mapper.ToModel(planType)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan type", "error", err, "type_name", planType.TypeName())
		return fmt.Errorf("failed to create plan type: %w", err)
	}

	planType.SetID(vo.ID(model.ID))

	r.logger.Infow("plan type created successfully", "plan_type_id", model.ID, "type_name", model.TypeName)
	return nil
}

func (r *PlanTypeRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*plan.PlanType, error) {
	var model models.PlanTypeModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan type by ID", "error", err, "plan_type_id", id)
		return nil, fmt.Errorf("failed to get plan type: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanTypeRepositoryImpl) Update(ctx context.Context, planType *plan.PlanType) error {
	model := r.mapper.ToModel(planType)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanTypeModel{}).
		Where("plan_type_id = ?", model.ID).
		Updates(map[string]any{
			"type_name":   model.TypeName,
			"description": model.Description,
			"is_active":   model.IsActive,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan type", "error", result.Error, "plan_type_id", model.ID)
		return fmt.Errorf("failed to update plan type: %w", result.Error)
	}

	invalidate(ctx, r.cache, cache.EventPlanTypeUpdated, cache.EventScope{PlanTypeID: model.ID})

	r.logger.Infow("plan type updated successfully", "plan_type_id", model.ID)
	return nil
}

func (r *PlanTypeRepositoryImpl) Delete(ctx context.Context, id vo.ID) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanTypeModel{}, id.Uint64())
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan type", "error", result.Error, "plan_type_id", id)
		return fmt.Errorf("failed to delete plan type: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(plan.ErrPlanTypeNotFound.Error())
	}

	invalidate(ctx, r.cache, cache.EventPlanTypeUpdated, cache.EventScope{PlanTypeID: id.Uint64()})

	r.logger.Infow("plan type deleted successfully", "plan_type_id", id)
	return nil
}

func (r *PlanTypeRepositoryImpl) List(ctx context.Context) ([]*plan.PlanType, error) {
	var typeModels []*models.PlanTypeModel
	if err := db.GetTxFromContext(ctx, r.db).Order("type_name ASC").Find(&typeModels).Error; err != nil {
		r.logger.Errorw("failed to list plan types", "error", err)
		return nil, fmt.Errorf("failed to list plan types: %w", err)
	}

	return r.mapper.ToEntities(typeModels)
}
