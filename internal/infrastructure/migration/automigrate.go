package migration

import (
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the plan database models in dependency order.
// Schema changes ship as SQL scripts; AutoMigrate only serves sqlite
// development databases and tests.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanTypeModel{},
		&models.PlanModel{},
		&models.SeatLimitConfigModel{},
		&models.CompanyPlanModel{},
		&models.PriceOverrideModel{},
		&models.SeatUsageModel{},
		&models.CancellationModel{},
		&models.HistoryModel{},
		&models.PlanReportModel{},
	}
}

// IdentityModels lists the models of the peer user database.
func IdentityModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.EmailModel{},
	}
}
