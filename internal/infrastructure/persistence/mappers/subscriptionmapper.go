package mappers

import (
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
)

// SubscriptionMapper handles the conversion between company subscriptions and
// company_plan rows. ToModel keeps the active_company_id marker in step with
// the status.
type SubscriptionMapper interface {
	ToEntity(model *models.CompanyPlanModel) (*plan.CompanySubscription, error)
	ToModel(entity *plan.CompanySubscription) *models.CompanyPlanModel
	ToEntities(models []*models.CompanyPlanModel) ([]*plan.CompanySubscription, error)
}

type subscriptionMapper struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.CompanyPlanModel) (*plan.CompanySubscription, error) {
	if model == nil {
		return nil, nil
	}
	status, err := vo.ParseSubscriptionStatus(model.Status)
	if err != nil {
		return nil, err
	}

	entity, err := plan.ReconstructCompanySubscription(
		vo.ID(model.ID),
		vo.ID(model.CompanyID),
		vo.ID(model.PlanID),
		model.Amount,
		model.StartDate,
		model.EndDate,
		status,
		model.AdditionalUserAmount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}
	return entity, nil
}

func (m *subscriptionMapper) ToModel(entity *plan.CompanySubscription) *models.CompanyPlanModel {
	if entity == nil {
		return nil
	}

	status := entity.Status().String()
	return &models.CompanyPlanModel{
		ID:                   entity.ID().Uint64(),
		CompanyID:            entity.CompanyID().Uint64(),
		PlanID:               entity.PlanID().Uint64(),
		Amount:               entity.Amount(),
		StartDate:            entity.StartDate(),
		EndDate:              entity.EndDate(),
		Status:               status,
		AdditionalUserAmount: entity.AdditionalUserAmount(),
		ActiveCompanyID:      models.ActiveMarker(entity.CompanyID().Uint64(), status),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *subscriptionMapper) ToEntities(subModels []*models.CompanyPlanModel) ([]*plan.CompanySubscription, error) {
	return mapper.MapSlicePtrWithID(subModels, m.ToEntity, func(sm *models.CompanyPlanModel) uint64 { return sm.ID })
}
