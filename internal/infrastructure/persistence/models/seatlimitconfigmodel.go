package models

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

// SeatLimitConfigModel holds the seat limit and extra seat price of one scope
// of a plan type. Admin=true is the admin scope.
type SeatLimitConfigModel struct {
	ID             uint64 `gorm:"column:plan_user_type_id;primaryKey;autoIncrement"`
	PlanTypeID     uint64 `gorm:"column:plan_type_id;not null;uniqueIndex:idx_plan_user_type_scope"`
	Admin          bool   `gorm:"column:admin;not null;uniqueIndex:idx_plan_user_type_scope"`
	NumberOfUsers  int    `gorm:"column:number_of_users;not null"`
	ExtraUserPrice int64  `gorm:"column:extra_user_price;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (SeatLimitConfigModel) TableName() string {
	return constants.TableSeatLimitConfigs
}
