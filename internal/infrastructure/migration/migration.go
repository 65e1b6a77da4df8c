package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

const (
	PlanDatabase     = "plan"
	IdentityDatabase = "identity"

	// SourceRoot is the repository path holding the scripts directory.
	SourceRoot = "internal/infrastructure/migration"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewPlanManager picks goose scripts for the plan database, or AutoMigrate
// when it runs on sqlite.
func NewPlanManager(db *gorm.DB) *Manager {
	dialect := db.Dialector.Name()
	if dialect == "sqlite" {
		return NewManagerWithStrategy(NewGormAutoMigrateStrategy(AutoMigrateModels()...))
	}
	return NewManagerWithStrategy(NewGooseStrategy(PlanDatabase, dialect))
}

// NewIdentityManager picks golang-migrate scripts for the identity database,
// or AutoMigrate when it runs on sqlite.
func NewIdentityManager(db *gorm.DB) *Manager {
	dialect := db.Dialector.Name()
	if dialect == "sqlite" {
		return NewManagerWithStrategy(NewGormAutoMigrateStrategy(IdentityModels()...))
	}
	return NewManagerWithStrategy(NewGolangMigrateStrategy(IdentityDatabase, dialect))
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// GetStrategyInfo returns information about the current strategy
func (m *Manager) GetStrategyInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":        m.strategy.GetName(),
		"description": getStrategyDescription(m.strategy.GetName()),
	}
}

// getStrategyDescription returns a description for the given strategy
func getStrategyDescription(strategyName string) string {
	switch strategyName {
	case "gorm_auto_migrate":
		return "GORM AutoMigrate - Automatic schema migration based on struct definitions"
	case "golang_migrate":
		return "golang-migrate - Version-controlled SQL migration scripts"
	case "goose":
		return "goose - Sequential SQL migration scripts with up and down sections"
	default:
		return "Unknown migration strategy"
	}
}
