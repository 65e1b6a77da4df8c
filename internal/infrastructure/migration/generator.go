package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// Generator creates golang-migrate up/down file pairs for the identity database.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a generator writing into the identity scripts of dialect below root.
func NewGenerator(root, dialect string) *Generator {
	return &Generator{
		scriptsPath: filepath.Join(root, scriptsDir(IdentityDatabase, dialect)),
		logger:      logger.WithComponent("migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration creates a new migration file pair (up and down)
func (g *Generator) CreateMigration(name string) (string, string, error) {
	g.logger.Infow("creating new migration", "name", name)

	now := g.now()
	timestamp := now.Format("20060102150405")
	upFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := os.WriteFile(upFilePath, []byte(upTemplate(name, now)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downFilePath, []byte(downTemplate(name, now)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return upFilePath, downFilePath, nil
}

func upTemplate(name string, now time.Time) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- Example:
-- ALTER TABLE email ADD COLUMN verified_at TIMESTAMP NULL;

`, name, now.Format(time.DateTime))
}

func downTemplate(name string, now time.Time) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s

-- Example:
-- ALTER TABLE email DROP COLUMN verified_at;

`, name, now.Format(time.DateTime))
}
