package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

type CancellationModel struct {
	ID                uint64         `gorm:"column:plan_cancellation_id;primaryKey;autoIncrement"`
	SubscriptionID    uint64         `gorm:"column:company_plan_id;not null;index"`
	Reason            string         `gorm:"column:cancellation_reason;type:text;not null"`
	Details           datatypes.JSON `gorm:"column:details"`
	Status            string         `gorm:"column:status;not null;size:20;default:requested"`
	RequestedByUserID uint64         `gorm:"column:cancelled_by_user_id;not null"`
	ConfirmedByUserID *uint64        `gorm:"column:confirmed_by_user_id"`
	RequestedAt       time.Time      `gorm:"column:requested_at;not null"`
	CancelledAt       *time.Time     `gorm:"column:cancelled_at"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (CancellationModel) TableName() string {
	return constants.TableCancellations
}
