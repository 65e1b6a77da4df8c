package plan

import (
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

const minPlanTypeNameLength = 2

// PlanType groups plans sharing seat limits and report templates.
type PlanType struct {
	id          vo.ID
	typeName    string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPlanType(typeName, description string, isActive bool) (*PlanType, error) {
	typeName, err := validateTypeName(typeName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &PlanType{
		typeName:    typeName,
		description: strings.TrimSpace(description),
		isActive:    isActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPlanType(id vo.ID, typeName, description string, isActive bool, createdAt, updatedAt time.Time) (*PlanType, error) {
	if id.IsZero() {
		return nil, invalid("plan type ID cannot be zero")
	}
	return &PlanType{
		id:          id,
		typeName:    typeName,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateTypeName(typeName string) (string, error) {
	typeName = strings.TrimSpace(typeName)
	if utf8.RuneCountInString(typeName) < minPlanTypeNameLength {
		return "", invalid("plan type name must have at least %d characters", minPlanTypeNameLength)
	}
	return typeName, nil
}

func (t *PlanType) ID() vo.ID {
	return t.id
}

func (t *PlanType) TypeName() string {
	return t.typeName
}

func (t *PlanType) Description() string {
	return t.description
}

func (t *PlanType) IsActive() bool {
	return t.isActive
}

func (t *PlanType) CreatedAt() time.Time {
	return t.createdAt
}

func (t *PlanType) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *PlanType) SetID(id vo.ID) {
	t.id = id
}

func (t *PlanType) Update(typeName, description string, isActive bool) error {
	typeName, err := validateTypeName(typeName)
	if err != nil {
		return err
	}
	t.typeName = typeName
	t.description = strings.TrimSpace(description)
	t.isActive = isActive
	t.updatedAt = time.Now().UTC()
	return nil
}
