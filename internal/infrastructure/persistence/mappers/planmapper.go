package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
)

// PlanMapper handles the conversion between plan entities and persistence models
type PlanMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.PlanModel) (*plan.Plan, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *plan.Plan) *models.PlanModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type planMapper struct{}

func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlan(
		vo.ID(model.ID),
		model.Name,
		model.Description,
		model.DefaultAmount,
		vo.Duration(model.Duration),
		vo.ID(model.PlanTypeID),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}
	return entity, nil
}

func (m *planMapper) ToModel(entity *plan.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}

	return &models.PlanModel{
		ID:            entity.ID().Uint64(),
		Name:          entity.Name(),
		Description:   entity.Description(),
		DefaultAmount: entity.DefaultAmount(),
		PlanTypeID:    entity.PlanTypeID().Uint64(),
		Duration:      entity.Duration().String(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *planMapper) ToEntities(planModels []*models.PlanModel) ([]*plan.Plan, error) {
	return mapper.MapSlicePtrWithID(planModels, m.ToEntity, func(pm *models.PlanModel) uint64 { return pm.ID })
}
