package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
)

type SeatUsageMapper interface {
	ToEntity(model *models.SeatUsageModel) (*plan.SeatUsage, error)
	ToModel(entity *plan.SeatUsage) *models.SeatUsageModel
	ToEntities(models []*models.SeatUsageModel) ([]*plan.SeatUsage, error)
}

type seatUsageMapper struct{}

func NewSeatUsageMapper() SeatUsageMapper {
	return &seatUsageMapper{}
}

func (m *seatUsageMapper) ToEntity(model *models.SeatUsageModel) (*plan.SeatUsage, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructSeatUsage(
		vo.ID(model.ID),
		vo.ID(model.SubscriptionID),
		vo.ID(model.UserID),
		vo.ScopeFromAdmin(model.Admin),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct seat usage: %w", err)
	}
	return entity, nil
}

func (m *seatUsageMapper) ToModel(entity *plan.SeatUsage) *models.SeatUsageModel {
	if entity == nil {
		return nil
	}

	return &models.SeatUsageModel{
		ID:             entity.ID().Uint64(),
		SubscriptionID: entity.SubscriptionID().Uint64(),
		UserID:         entity.UserID().Uint64(),
		Admin:          entity.IsAdmin(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *seatUsageMapper) ToEntities(seatModels []*models.SeatUsageModel) ([]*plan.SeatUsage, error) {
	return mapper.MapSlicePtrWithID(seatModels, m.ToEntity, func(sm *models.SeatUsageModel) uint64 { return sm.ID })
}
