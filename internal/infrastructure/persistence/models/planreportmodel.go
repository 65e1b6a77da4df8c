package models

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

type PlanReportModel struct {
	ID         uint64 `gorm:"column:plan_report_id;primaryKey;autoIncrement"`
	PlanTypeID uint64 `gorm:"column:plan_type_id;not null;uniqueIndex:idx_plan_reports_template"`
	TemplateID uint64 `gorm:"column:template_id;not null;uniqueIndex:idx_plan_reports_template"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PlanReportModel) TableName() string {
	return constants.TablePlanReports
}
