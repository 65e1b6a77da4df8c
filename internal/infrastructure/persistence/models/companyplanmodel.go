package models

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

// CompanyPlanModel is a company's subscription to a plan.
//
// ActiveCompanyID mirrors CompanyID while the status is active and is NULL
// otherwise; its unique index allows at most one active subscription per company.
type CompanyPlanModel struct {
	ID                   uint64    `gorm:"column:company_plan_id;primaryKey;autoIncrement"`
	CompanyID            uint64    `gorm:"column:company_id;not null;index"`
	PlanID               uint64    `gorm:"column:plan_id;not null;index"`
	Amount               int64     `gorm:"column:amount;not null"`
	StartDate            time.Time `gorm:"column:start_date;not null"`
	EndDate              time.Time `gorm:"column:end_date;not null;index"`
	Status               string    `gorm:"column:status;not null;size:20;index"`
	AdditionalUserAmount int64     `gorm:"column:additional_user_amount;not null;default:0"`
	ActiveCompanyID      *uint64   `gorm:"column:active_company_id;uniqueIndex"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (CompanyPlanModel) TableName() string {
	return constants.TableSubscriptions
}

// ActiveMarker returns the value of active_company_id for the given state.
func ActiveMarker(companyID uint64, status string) *uint64 {
	if status != "active" {
		return nil
	}
	return &companyID
}
