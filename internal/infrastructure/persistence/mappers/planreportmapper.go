package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
)

type PlanReportMapper interface {
	ToEntity(model *models.PlanReportModel) (*plan.PlanReport, error)
	ToModel(entity *plan.PlanReport) *models.PlanReportModel
	ToEntities(models []*models.PlanReportModel) ([]*plan.PlanReport, error)
}

type planReportMapper struct{}

func NewPlanReportMapper() PlanReportMapper {
	return &planReportMapper{}
}

func (m *planReportMapper) ToEntity(model *models.PlanReportModel) (*plan.PlanReport, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlanReport(vo.ID(model.ID), vo.ID(model.PlanTypeID), vo.ID(model.TemplateID),
		model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan report: %w", err)
	}
	return entity, nil
}

func (m *planReportMapper) ToModel(entity *plan.PlanReport) *models.PlanReportModel {
	if entity == nil {
		return nil
	}

	return &models.PlanReportModel{
		ID:         entity.ID().Uint64(),
		PlanTypeID: entity.PlanTypeID().Uint64(),
		TemplateID: entity.TemplateID().Uint64(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *planReportMapper) ToEntities(reportModels []*models.PlanReportModel) ([]*plan.PlanReport, error) {
	return mapper.MapSlicePtrWithID(reportModels, m.ToEntity, func(rm *models.PlanReportModel) uint64 { return rm.ID })
}
