package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
)

type PriceOverrideMapper interface {
	ToEntity(model *models.PriceOverrideModel) (*plan.PriceOverride, error)
	ToModel(entity *plan.PriceOverride) *models.PriceOverrideModel
	ToEntities(models []*models.PriceOverrideModel) ([]*plan.PriceOverride, error)
}

type priceOverrideMapper struct{}

func NewPriceOverrideMapper() PriceOverrideMapper {
	return &priceOverrideMapper{}
}

func (m *priceOverrideMapper) ToEntity(model *models.PriceOverrideModel) (*plan.PriceOverride, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPriceOverride(
		vo.ID(model.ID),
		vo.ID(model.SubscriptionID),
		vo.ScopeFromAdmin(model.Admin),
		model.ExtraUserPrice,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct price override: %w", err)
	}
	return entity, nil
}

func (m *priceOverrideMapper) ToModel(entity *plan.PriceOverride) *models.PriceOverrideModel {
	if entity == nil {
		return nil
	}

	return &models.PriceOverrideModel{
		ID:             entity.ID().Uint64(),
		SubscriptionID: entity.SubscriptionID().Uint64(),
		Admin:          entity.Scope().IsAdmin(),
		ExtraUserPrice: entity.ExtraSeatPrice(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *priceOverrideMapper) ToEntities(overrideModels []*models.PriceOverrideModel) ([]*plan.PriceOverride, error) {
	return mapper.MapSlicePtrWithID(overrideModels, m.ToEntity, func(om *models.PriceOverrideModel) uint64 { return om.ID })
}
