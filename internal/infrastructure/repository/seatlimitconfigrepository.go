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

// SeatLimitConfigRepositoryImpl persists plan_user_type rows. The per plan
// type list is cached under plan_type:{id}:user_configs.
type SeatLimitConfigRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	mapper mappers.SeatLimitConfigMapper
	logger logger.Interface
}

func NewSeatLimitConfigRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.SeatLimitConfigRepository {
	return &SeatLimitConfigRepositoryImpl{
		db:     db,
		cache:  planCache,
		mapper: mappers.NewSeatLimitConfigMapper(),
		logger: logger,
	}
}

func (r *SeatLimitConfigRepositoryImpl) Create(ctx context.Context, config *plan.SeatLimitConfig) error {
	model := r.mapper.ToModel(config)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create seat limit config", "error", err,
			"plan_type_id", model.PlanTypeID,
			"admin", model.Admin,
		)
		return fmt.Errorf("failed to create seat limit config: %w", err)
	}

	config.SetID(vo.ID(model.ID))
	invalidate(ctx, r.cache, cache.EventSeatLimitCreated, cache.EventScope{PlanTypeID: model.PlanTypeID})

	r.logger.Infow("seat limit config created successfully", "config_id", model.ID, "plan_type_id", model.PlanTypeID)
	return nil
}

func (r *SeatLimitConfigRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*plan.SeatLimitConfig, error) {
	var model models.SeatLimitConfigModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get seat limit config by ID", "error", err, "config_id", id)
		return nil, fmt.Errorf("failed to get seat limit config: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SeatLimitConfigRepositoryImpl) GetByPlanTypeAndScope(ctx context.Context, planTypeID vo.ID, scope vo.SeatScope) (*plan.SeatLimitConfig, error) {
	configs, err := r.ListByPlanType(ctx, planTypeID)
	if err != nil {
		return nil, err
	}
	for _, c := range configs {
		if c.Scope() == scope {
			return c, nil
		}
	}
	return nil, nil
}

func (r *SeatLimitConfigRepositoryImpl) ListByPlanType(ctx context.Context, planTypeID vo.ID) ([]*plan.SeatLimitConfig, error) {
	configModels, err := readThrough(ctx, r.cache, cache.UserConfigsKey(planTypeID.Uint64()), cache.UserConfigsTTL,
		func() ([]*models.SeatLimitConfigModel, error) {
			var found []*models.SeatLimitConfigModel
			err := db.GetTxFromContext(ctx, r.db).
				Where("plan_type_id = ?", planTypeID.Uint64()).
				Order("admin DESC").
				Find(&found).Error
			if err != nil {
				r.logger.Errorw("failed to list seat limit configs", "error", err, "plan_type_id", planTypeID)
				return nil, fmt.Errorf("failed to list seat limit configs: %w", err)
			}
			return found, nil
		})
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(configModels)
}

func (r *SeatLimitConfigRepositoryImpl) Update(ctx context.Context, config *plan.SeatLimitConfig) error {
	model := r.mapper.ToModel(config)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SeatLimitConfigModel{}).
		Where("plan_user_type_id = ?", model.ID).
		Updates(map[string]any{
			"number_of_users":  model.NumberOfUsers,
			"extra_user_price": model.ExtraUserPrice,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update seat limit config", "error", result.Error, "config_id", model.ID)
		return fmt.Errorf("failed to update seat limit config: %w", result.Error)
	}

	invalidate(ctx, r.cache, cache.EventSeatLimitUpdated, cache.EventScope{PlanTypeID: model.PlanTypeID})

	r.logger.Infow("seat limit config updated successfully", "config_id", model.ID)
	return nil
}

func (r *SeatLimitConfigRepositoryImpl) Delete(ctx context.Context, id vo.ID) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SeatLimitConfigModel
	if err := tx.First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError(plan.ErrSeatLimitNotFound.Error())
		}
		return fmt.Errorf("failed to get seat limit config: %w", err)
	}

	if err := tx.Delete(&model).Error; err != nil {
		r.logger.Errorw("failed to delete seat limit config", "error", err, "config_id", id)
		return fmt.Errorf("failed to delete seat limit config: %w", err)
	}

	invalidate(ctx, r.cache, cache.EventSeatLimitDeleted, cache.EventScope{PlanTypeID: model.PlanTypeID})

	r.logger.Infow("seat limit config deleted successfully", "config_id", id)
	return nil
}
