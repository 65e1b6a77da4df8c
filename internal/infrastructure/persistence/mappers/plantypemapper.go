package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
)

type PlanTypeMapper interface {
	ToEntity(model *models.PlanTypeModel) (*plan.PlanType, error)
	ToModel(entity *plan.PlanType) *models.PlanTypeModel
	ToEntities(models []*models.PlanTypeModel) ([]*plan.PlanType, error)
}

type planTypeMapper struct{}

func NewPlanTypeMapper() PlanTypeMapper {
	return &planTypeMapper{}
}

func (m *planTypeMapper) ToEntity(model *models.PlanTypeModel) (*plan.PlanType, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlanType(vo.ID(model.ID), model.TypeName, model.Description, model.IsActive,
		model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan type entity: %w", err)
	}
	return entity, nil
}

func (m *planTypeMapper) ToModel(entity *plan.PlanType) *models.PlanTypeModel {
	if entity == nil {
		return nil
	}

	return &models.PlanTypeModel{
		ID:          entity.ID().Uint64(),
		TypeName:    entity.TypeName(),
		Description: entity.Description(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *planTypeMapper) ToEntities(typeModels []*models.PlanTypeModel) ([]*plan.PlanType, error) {
	return mapper.MapSlicePtrWithID(typeModels, m.ToEntity, func(tm *models.PlanTypeModel) uint64 { return tm.ID })
}
