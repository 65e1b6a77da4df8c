package models

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

// PlanTypeModel is the persistence model for plan types
type PlanTypeModel struct {
	ID          uint64 `gorm:"column:plan_type_id;primaryKey;autoIncrement"`
	TypeName    string `gorm:"column:type_name;not null;size:100;uniqueIndex"`
	Description string `gorm:"column:description;type:text"`
	IsActive    bool   `gorm:"column:is_active;not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PlanTypeModel) TableName() string {
	return constants.TablePlanTypes
}
