package plan

import (
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

const minPlanNameLength = 3

// Plan is a catalog template a company can subscribe to.
// Amounts are in minor currency units.
type Plan struct {
	id            vo.ID
	name          string
	description   string
	defaultAmount int64
	duration      vo.Duration
	planTypeID    vo.ID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPlan(name, description string, defaultAmount int64, duration vo.Duration, planTypeID vo.ID) (*Plan, error) {
	name, err := validatePlanFields(name, defaultAmount, duration, planTypeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Plan{
		name:          name,
		description:   strings.TrimSpace(description),
		defaultAmount: defaultAmount,
		duration:      duration,
		planTypeID:    planTypeID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPlan(id vo.ID, name, description string, defaultAmount int64, duration vo.Duration,
	planTypeID vo.ID, createdAt, updatedAt time.Time) (*Plan, error) {
	if id.IsZero() {
		return nil, invalid("plan ID cannot be zero")
	}
	if !duration.IsValid() {
		return nil, invalid("invalid plan duration: %s", duration)
	}

	return &Plan{
		id:            id,
		name:          name,
		description:   description,
		defaultAmount: defaultAmount,
		duration:      duration,
		planTypeID:    planTypeID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func validatePlanFields(name string, defaultAmount int64, duration vo.Duration, planTypeID vo.ID) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minPlanNameLength {
		return "", invalid("plan name must have at least %d characters", minPlanNameLength)
	}
	if defaultAmount < 0 {
		return "", invalid("plan default amount cannot be negative")
	}
	if !duration.IsValid() {
		return "", invalid("invalid plan duration: %s", duration)
	}
	if planTypeID.IsZero() {
		return "", invalid("plan type ID is required")
	}
	return name, nil
}

func (p *Plan) ID() vo.ID {
	return p.id
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Description() string {
	return p.description
}

func (p *Plan) DefaultAmount() int64 {
	return p.defaultAmount
}

func (p *Plan) Duration() vo.Duration {
	return p.duration
}

func (p *Plan) PlanTypeID() vo.ID {
	return p.planTypeID
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Plan) SetID(id vo.ID) {
	p.id = id
}

// Update replaces the editable fields, re-running creation validation.
func (p *Plan) Update(name, description string, defaultAmount int64, duration vo.Duration, planTypeID vo.ID) error {
	name, err := validatePlanFields(name, defaultAmount, duration, planTypeID)
	if err != nil {
		return err
	}

	p.name = name
	p.description = strings.TrimSpace(description)
	p.defaultAmount = defaultAmount
	p.duration = duration
	p.planTypeID = planTypeID
	p.updatedAt = time.Now().UTC()
	return nil
}
