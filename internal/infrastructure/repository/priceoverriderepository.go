package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/mappers"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	apperrors "github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type PriceOverrideRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PriceOverrideMapper
	logger logger.Interface
}

func NewPriceOverrideRepository(db *gorm.DB, logger logger.Interface) plan.PriceOverrideRepository {
	return &PriceOverrideRepositoryImpl{
		db:     db,
		mapper: mappers.NewPriceOverrideMapper(),
		logger: logger,
	}
}

func (r *PriceOverrideRepositoryImpl) Create(ctx context.Context, override *plan.PriceOverride) error {
	model := r.mapper.ToModel(override)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create price override", "error", err, "subscription_id", model.SubscriptionID)
		return fmt.Errorf("failed to create price override: %w", err)
	}

	override.SetID(vo.ID(model.ID))

	r.logger.Infow("price override created successfully", "override_id", model.ID, "subscription_id", model.SubscriptionID)
	return nil
}

func (r *PriceOverrideRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*plan.PriceOverride, error) {
	var model models.PriceOverrideModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get price override by ID", "error", err, "override_id", id)
		return nil, fmt.Errorf("failed to get price override: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PriceOverrideRepositoryImpl) GetBySubscriptionAndScope(ctx context.Context, subscriptionID vo.ID, scope vo.SeatScope) (*plan.PriceOverride, error) {
	var model models.PriceOverrideModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_plan_id = ? AND admin = ?", subscriptionID.Uint64(), scope.IsAdmin()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get price override by scope", "error", err,
			"subscription_id", subscriptionID,
			"scope", scope,
		)
		return nil, fmt.Errorf("failed to get price override: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PriceOverrideRepositoryImpl) ListBySubscription(ctx context.Context, subscriptionID vo.ID) ([]*plan.PriceOverride, error) {
	var overrideModels []*models.PriceOverrideModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_plan_id = ?", subscriptionID.Uint64()).
		Order("admin DESC").
		Find(&overrideModels).Error
	if err != nil {
		r.logger.Errorw("failed to list price overrides", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list price overrides: %w", err)
	}

	return r.mapper.ToEntities(overrideModels)
}

func (r *PriceOverrideRepositoryImpl) Update(ctx context.Context, override *plan.PriceOverride) error {
	model := r.mapper.ToModel(override)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PriceOverrideModel{}).
		Where("plan_user_override_id = ?", model.ID).
		Updates(map[string]any{
			"extra_user_price": model.ExtraUserPrice,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update price override", "error", result.Error, "override_id", model.ID)
		return fmt.Errorf("failed to update price override: %w", result.Error)
	}

	r.logger.Infow("price override updated successfully", "override_id", model.ID)
	return nil
}

func (r *PriceOverrideRepositoryImpl) Delete(ctx context.Context, id vo.ID) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PriceOverrideModel{}, id.Uint64())
	if result.Error != nil {
		r.logger.Errorw("failed to delete price override", "error", result.Error, "override_id", id)
		return fmt.Errorf("failed to delete price override: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(plan.ErrPriceOverrideNotFound.Error())
	}

	r.logger.Infow("price override deleted successfully", "override_id", id)
	return nil
}
