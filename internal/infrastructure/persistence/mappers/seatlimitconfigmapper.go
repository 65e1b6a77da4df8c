package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
)

// SeatLimitConfigMapper converts between the admin flag column and the seat scope.
type SeatLimitConfigMapper interface {
	ToEntity(model *models.SeatLimitConfigModel) (*plan.SeatLimitConfig, error)
	ToModel(entity *plan.SeatLimitConfig) *models.SeatLimitConfigModel
	ToEntities(models []*models.SeatLimitConfigModel) ([]*plan.SeatLimitConfig, error)
}

type seatLimitConfigMapper struct{}

func NewSeatLimitConfigMapper() SeatLimitConfigMapper {
	return &seatLimitConfigMapper{}
}

func (m *seatLimitConfigMapper) ToEntity(model *models.SeatLimitConfigModel) (*plan.SeatLimitConfig, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructSeatLimitConfig(
		vo.ID(model.ID),
		vo.ID(model.PlanTypeID),
		vo.ScopeFromAdmin(model.Admin),
		model.NumberOfUsers,
		model.ExtraUserPrice,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct seat limit config: %w", err)
	}
	return entity, nil
}

func (m *seatLimitConfigMapper) ToModel(entity *plan.SeatLimitConfig) *models.SeatLimitConfigModel {
	if entity == nil {
		return nil
	}

	return &models.SeatLimitConfigModel{
		ID:             entity.ID().Uint64(),
		PlanTypeID:     entity.PlanTypeID().Uint64(),
		Admin:          entity.Scope().IsAdmin(),
		NumberOfUsers:  entity.MaxSeats(),
		ExtraUserPrice: entity.ExtraSeatPrice(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *seatLimitConfigMapper) ToEntities(configModels []*models.SeatLimitConfigModel) ([]*plan.SeatLimitConfig, error) {
	return mapper.MapSlicePtrWithID(configModels, m.ToEntity, func(cm *models.SeatLimitConfigModel) uint64 { return cm.ID })
}
