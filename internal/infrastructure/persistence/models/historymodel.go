package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

// HistoryModel is an append-only record of a subscription change.
type HistoryModel struct {
	ID              uint64         `gorm:"column:history_id;primaryKey;autoIncrement"`
	SubscriptionID  uint64         `gorm:"column:company_plan_id;not null;index:idx_company_plan_history_sub"`
	CompanyID       uint64         `gorm:"column:company_id;not null;index"`
	PreviousPlanID  *uint64        `gorm:"column:previous_plan_id"`
	NewPlanID       *uint64        `gorm:"column:new_plan_id"`
	ChangeType      string         `gorm:"column:change_type;not null;size:20"`
	Reason          string         `gorm:"column:reason;type:text"`
	Metadata        datatypes.JSON `gorm:"column:metadata"`
	ChangeAt        time.Time      `gorm:"column:change_at;not null;index:idx_company_plan_history_sub"`
	ChangedByUserID uint64         `gorm:"column:changed_by_user_id;not null"`
	CreatedAt       time.Time
}

func (HistoryModel) TableName() string {
	return constants.TableHistory
}
