package models

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

type PriceOverrideModel struct {
	ID             uint64 `gorm:"column:plan_user_override_id;primaryKey;autoIncrement"`
	SubscriptionID uint64 `gorm:"column:company_plan_id;not null;uniqueIndex:idx_plan_user_override_scope"`
	Admin          bool   `gorm:"column:admin;not null;uniqueIndex:idx_plan_user_override_scope"`
	ExtraUserPrice int64  `gorm:"column:extra_user_price;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PriceOverrideModel) TableName() string {
	return constants.TablePriceOverrides
}
