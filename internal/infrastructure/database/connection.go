package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GraziArcH/domain-sales/internal/shared/config"
	appLogger "github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// Connection names. The plan database is the default connection; the
// identity database holds the peer system's user and email tables.
const (
	Plan     = "plan"
	Identity = "identity"
)

var (
	conns   = make(map[string]*gorm.DB)
	connsMu sync.RWMutex
)

// Init opens the named connection and registers it for Get and CloseAll.
func Init(name string, cfg *config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	connsMu.Lock()
	if prev, ok := conns[name]; ok {
		closeDB(prev)
	}
	conns[name] = database
	connsMu.Unlock()

	appLogger.Info("database connection established",
		"connection", name,
		"driver", cfg.Driver,
		"database", cfg.Database)

	return database, nil
}

// Open builds a pooled connection for cfg and verifies it with a ping.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return openWith(dialector, cfg)
}

// Dialector selects the gorm driver for cfg.Driver.
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "mysql", "":
		return mysql.New(mysql.Config{
			DSN:                       cfg.GetDSN(),
			SkipInitializeWithVersion: true, // Skip schema validation query
		}), nil
	case "postgres":
		return postgres.New(postgres.Config{DSN: cfg.GetDSN()}), nil
	case "sqlite":
		return sqlite.Open(cfg.GetDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openWith(dialector gorm.Dialector, cfg *config.DatabaseConfig) (*gorm.DB, error) {
	database, err := gorm.Open(dialector, &gorm.Config{
		Logger:      NewGormLogger(),
		PrepareStmt: true, // Cache prepared statements
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return database, nil
}

// Get returns a registered connection, nil when it was never opened.
func Get(name string) *gorm.DB {
	connsMu.RLock()
	defer connsMu.RUnlock()
	return conns[name]
}

// CloseAll closes every registered connection.
func CloseAll() error {
	connsMu.Lock()
	defer connsMu.Unlock()

	var firstErr error
	for name, database := range conns {
		if err := closeDB(database); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close %s database: %w", name, err)
		}
		delete(conns, name)
		appLogger.Info("database connection closed", "connection", name)
	}
	return firstErr
}

func closeDB(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// NewGormLogger routes gorm's output through the application logger.
func NewGormLogger() logger.Interface {
	return logger.New(
		&filteredLogger{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// filteredLogger filters out schema validation queries
type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "information_schema.schemata") ||
		strings.Contains(lower, "select version()") {
		return
	}

	switch {
	case strings.Contains(lower, "error"):
		appLogger.Error("database error", "details", msg)
	case strings.Contains(lower, "slow sql"):
		appLogger.Warn("slow query", "details", msg)
	default:
		appLogger.Debug("database query", "details", msg)
	}
}
