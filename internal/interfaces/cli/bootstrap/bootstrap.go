// Package bootstrap loads configuration and opens the databases shared by
// the CLI commands.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/config"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/database"
	"github.com/GraziArcH/domain-sales/internal/shared/biztime"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// Load reads configuration, then sets up the process logger and the
// business timezone.
func Load(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = GinMode(env)
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Date boundaries of subscriptions are computed in this zone
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// OpenPlan registers the plan database connection.
func OpenPlan(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Init(database.Plan, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize plan database: %w", err)
	}
	return db, nil
}

// OpenIdentity registers the identity database connection.
func OpenIdentity(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Init(database.Identity, &cfg.IdentityDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity database: %w", err)
	}
	return db, nil
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
