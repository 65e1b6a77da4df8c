package plan

import (
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// PlanReport links a report template to a plan type.
type PlanReport struct {
	id         vo.ID
	planTypeID vo.ID
	templateID vo.ID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPlanReport(planTypeID, templateID vo.ID) (*PlanReport, error) {
	if planTypeID.IsZero() {
		return nil, invalid("plan type ID is required")
	}
	if templateID.IsZero() {
		return nil, invalid("template ID is required")
	}
	now := time.Now().UTC()
	return &PlanReport{
		planTypeID: planTypeID,
		templateID: templateID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPlanReport(id, planTypeID, templateID vo.ID, createdAt, updatedAt time.Time) (*PlanReport, error) {
	if id.IsZero() {
		return nil, invalid("plan report ID cannot be zero")
	}
	return &PlanReport{
		id:         id,
		planTypeID: planTypeID,
		templateID: templateID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (r *PlanReport) ID() vo.ID {
	return r.id
}

func (r *PlanReport) PlanTypeID() vo.ID {
	return r.planTypeID
}

func (r *PlanReport) TemplateID() vo.ID {
	return r.templateID
}

func (r *PlanReport) CreatedAt() time.Time {
	return r.createdAt
}

func (r *PlanReport) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *PlanReport) SetID(id vo.ID) {
	r.id = id
}

func (r *PlanReport) ChangeTemplate(templateID vo.ID) error {
	if templateID.IsZero() {
		return invalid("template ID is required")
	}
	r.templateID = templateID
	r.updatedAt = time.Now().UTC()
	return nil
}
