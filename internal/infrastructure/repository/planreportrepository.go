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

type PlanReportRepositoryImpl struct {
	db     *gorm.DB
	cache  cache.PlanCache
	mapper mappers.PlanReportMapper
	logger logger.Interface
}

func NewPlanReportRepository(db *gorm.DB, planCache cache.PlanCache, logger logger.Interface) plan.PlanReportRepository {
	return &PlanReportRepositoryImpl{
		db:     db,
		cache:  planCache,
		mapper: mappers.NewPlanReportMapper(),
		logger: logger,
	}
}

func (r *PlanReportRepositoryImpl) Create(ctx context.Context, report *plan.PlanReport) error {
	model := r.mapper.ToModel(report)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan report", "error", err,
			"plan_type_id", model.PlanTypeID,
			"template_id", model.TemplateID,
		)
		return fmt.Errorf("failed to create plan report: %w", err)
	}

	report.SetID(vo.ID(model.ID))
	invalidate(ctx, r.cache, cache.EventPlanReportCreated, cache.EventScope{PlanTypeID: model.PlanTypeID})

	r.logger.Infow("plan report created successfully", "report_id", model.ID, "plan_type_id", model.PlanTypeID)
	return nil
}

func (r *PlanReportRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*plan.PlanReport, error) {
	var model models.PlanReportModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan report by ID", "error", err, "report_id", id)
		return nil, fmt.Errorf("failed to get plan report: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanReportRepositoryImpl) ListByPlanType(ctx context.Context, planTypeID vo.ID) ([]*plan.PlanReport, error) {
	reportModels, err := readThrough(ctx, r.cache, cache.AvailableReportsKey(planTypeID.Uint64()), cache.AvailableReportsTTL,
		func() ([]*models.PlanReportModel, error) {
			var found []*models.PlanReportModel
			err := db.GetTxFromContext(ctx, r.db).
				Where("plan_type_id = ?", planTypeID.Uint64()).
				Order("plan_report_id ASC").
				Find(&found).Error
			if err != nil {
				r.logger.Errorw("failed to list plan reports", "error", err, "plan_type_id", planTypeID)
				return nil, fmt.Errorf("failed to list plan reports: %w", err)
			}
			return found, nil
		})
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(reportModels)
}

func (r *PlanReportRepositoryImpl) Update(ctx context.Context, report *plan.PlanReport) error {
	model := r.mapper.ToModel(report)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanReportModel{}).
		Where("plan_report_id = ?", model.ID).
		Updates(map[string]any{
			"template_id": model.TemplateID,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan report", "error", result.Error, "report_id", model.ID)
		return fmt.Errorf("failed to update plan report: %w", result.Error)
	}

	invalidate(ctx, r.cache, cache.EventPlanReportUpdated, cache.EventScope{PlanTypeID: model.PlanTypeID})

	r.logger.Infow("plan report updated successfully", "report_id", model.ID, "template_id", model.TemplateID)
	return nil
}

func (r *PlanReportRepositoryImpl) Delete(ctx context.Context, report *plan.PlanReport) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanReportModel{}, report.ID().Uint64())
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan report", "error", result.Error, "report_id", report.ID())
		return fmt.Errorf("failed to delete plan report: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(plan.ErrPlanReportNotFound.Error())
	}

	invalidate(ctx, r.cache, cache.EventPlanReportDeleted, cache.EventScope{PlanTypeID: report.PlanTypeID().Uint64()})

	r.logger.Infow("plan report deleted successfully", "report_id", report.ID())
	return nil
}
