package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
	"github.com/GraziArcH/domain-sales/internal/shared/utils/jsonutil"
)

type CancellationMapper interface {
	ToEntity(model *models.CancellationModel) (*plan.Cancellation, error)
	ToModel(entity *plan.Cancellation) (*models.CancellationModel, error)
	ToEntities(models []*models.CancellationModel) ([]*plan.Cancellation, error)
}

type cancellationMapper struct{}

func NewCancellationMapper() CancellationMapper {
	return &cancellationMapper{}
}

func (m *cancellationMapper) ToEntity(model *models.CancellationModel) (*plan.Cancellation, error) {
	if model == nil {
		return nil, nil
	}

	details, err := jsonutil.JSONToMap(model.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to read cancellation details: %w", err)
	}
	status, err := vo.ParseCancellationStatus(model.Status)
	if err != nil {
		return nil, err
	}

	entity, err := plan.ReconstructCancellation(
		vo.ID(model.ID),
		vo.ID(model.SubscriptionID),
		model.Reason,
		details,
		status,
		vo.ID(model.RequestedByUserID),
		vo.OptionalID(model.ConfirmedByUserID),
		model.RequestedAt,
		model.CancelledAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct cancellation: %w", err)
	}
	return entity, nil
}

func (m *cancellationMapper) ToModel(entity *plan.Cancellation) (*models.CancellationModel, error) {
	if entity == nil {
		return nil, nil
	}

	details, err := jsonutil.MapToJSON(entity.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to write cancellation details: %w", err)
	}

	return &models.CancellationModel{
		ID:                entity.ID().Uint64(),
		SubscriptionID:    entity.SubscriptionID().Uint64(),
		Reason:            entity.Reason(),
		Details:           details,
		Status:            entity.Status().String(),
		RequestedByUserID: entity.RequestedBy().Uint64(),
		ConfirmedByUserID: vo.OptionalUint64(entity.ConfirmedBy()),
		RequestedAt:       entity.RequestedAt(),
		CancelledAt:       entity.CancelledAt(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *cancellationMapper) ToEntities(cancellationModels []*models.CancellationModel) ([]*plan.Cancellation, error) {
	return mapper.MapSlicePtrWithID(cancellationModels, m.ToEntity, func(cm *models.CancellationModel) uint64 { return cm.ID })
}
