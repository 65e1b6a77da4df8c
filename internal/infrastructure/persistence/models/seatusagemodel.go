package models

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

// SeatUsageModel is one user occupying a seat of a subscription.
type SeatUsageModel struct {
	ID             uint64 `gorm:"column:usage_id;primaryKey;autoIncrement"`
	SubscriptionID uint64 `gorm:"column:company_plan_id;not null;uniqueIndex:idx_company_plan_usage_user;index:idx_company_plan_usage_scope"`
	UserID         uint64 `gorm:"column:user_id;not null;uniqueIndex:idx_company_plan_usage_user"`
	Admin          bool   `gorm:"column:admin;not null;index:idx_company_plan_usage_scope"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (SeatUsageModel) TableName() string {
	return constants.TableSeatUsages
}
