package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
	"github.com/GraziArcH/domain-sales/internal/shared/utils/jsonutil"
)

type HistoryMapper interface {
	ToEntity(model *models.HistoryModel) (*plan.SubscriptionHistory, error)
	ToModel(entity *plan.SubscriptionHistory) (*models.HistoryModel, error)
	ToEntities(models []*models.HistoryModel) ([]*plan.SubscriptionHistory, error)
}

type historyMapper struct{}

func NewHistoryMapper() HistoryMapper {
	return &historyMapper{}
}

func (m *historyMapper) ToEntity(model *models.HistoryModel) (*plan.SubscriptionHistory, error) {
	if model == nil {
		return nil, nil
	}

	metadata, err := jsonutil.JSONToMap(model.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to read history metadata: %w", err)
	}
	changeType, err := vo.ParseChangeType(model.ChangeType)
	if err != nil {
		return nil, err
	}

	entity, err := plan.ReconstructSubscriptionHistory(
		vo.ID(model.ID),
		vo.ID(model.SubscriptionID),
		vo.ID(model.CompanyID),
		vo.OptionalID(model.PreviousPlanID),
		vo.OptionalID(model.NewPlanID),
		changeType,
		model.Reason,
		metadata,
		model.ChangeAt,
		vo.ID(model.ChangedByUserID),
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct history entry: %w", err)
	}
	return entity, nil
}

func (m *historyMapper) ToModel(entity *plan.SubscriptionHistory) (*models.HistoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	metadata, err := jsonutil.MapToJSON(entity.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to write history metadata: %w", err)
	}

	return &models.HistoryModel{
		ID:              entity.ID().Uint64(),
		SubscriptionID:  entity.SubscriptionID().Uint64(),
		CompanyID:       entity.CompanyID().Uint64(),
		PreviousPlanID:  vo.OptionalUint64(entity.PreviousPlanID()),
		NewPlanID:       vo.OptionalUint64(entity.NewPlanID()),
		ChangeType:      entity.ChangeType().String(),
		Reason:          entity.Reason(),
		Metadata:        metadata,
		ChangeAt:        entity.ChangedAt(),
		ChangedByUserID: entity.ChangedBy().Uint64(),
		CreatedAt:       entity.CreatedAt(),
	}, nil
}

func (m *historyMapper) ToEntities(historyModels []*models.HistoryModel) ([]*plan.SubscriptionHistory, error) {
	return mapper.MapSlicePtrWithID(historyModels, m.ToEntity, func(hm *models.HistoryModel) uint64 { return hm.ID })
}
