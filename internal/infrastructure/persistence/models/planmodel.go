package models

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

// PlanModel represents the database persistence model for plans.
// Amounts are stored in minor units.
type PlanModel struct {
	ID            uint64 `gorm:"column:plan_id;primaryKey;autoIncrement"`
	Name          string `gorm:"column:plan_name;not null;size:100"`
	Description   string `gorm:"column:description;type:text"`
	DefaultAmount int64  `gorm:"column:default_amount;not null;index"`
	PlanTypeID    uint64 `gorm:"column:plan_type_id;not null;index"`
	Duration      string `gorm:"column:plan_duration;not null;size:20"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
