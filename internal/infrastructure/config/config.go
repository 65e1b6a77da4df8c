package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/GraziArcH/domain-sales/internal/shared/config"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

type Config struct {
	Server           sharedConfig.ServerConfig       `mapstructure:"server"`
	Database         sharedConfig.DatabaseConfig     `mapstructure:"database"`
	IdentityDatabase sharedConfig.DatabaseConfig     `mapstructure:"identity_database"`
	Logger           sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Redis            sharedConfig.RedisConfig        `mapstructure:"redis"`
	Cache            sharedConfig.CacheConfig        `mapstructure:"cache"`
	Auth             sharedConfig.AuthConfig         `mapstructure:"auth"`
	Email            sharedConfig.EmailConfig        `mapstructure:"email"`
	Scheduler        sharedConfig.SchedulerConfig    `mapstructure:"scheduler"`
	Catalog          sharedConfig.CatalogConfig      `mapstructure:"catalog"`
	Cancellation     sharedConfig.CancellationConfig `mapstructure:"cancellation"`
	Metrics          sharedConfig.MetricsConfig      `mapstructure:"metrics"`
}

const envPrefix = "DOMAIN_SALES"

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// configPath may be empty, in which case configs/config.yaml is searched.
// A missing config file is not an error: defaults and environment apply.
func Load(env, configPath string) (*Config, error) {
	// .env is optional and never overrides variables already set
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timezone", "America/Sao_Paulo")

	// Database defaults
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "domain_sales")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Identity (user) database defaults
	v.SetDefault("identity_database.driver", "mysql")
	v.SetDefault("identity_database.host", "localhost")
	v.SetDefault("identity_database.port", 3306)
	v.SetDefault("identity_database.username", "root")
	v.SetDefault("identity_database.password", "password")
	v.SetDefault("identity_database.database", "identity")
	v.SetDefault("identity_database.max_idle_conns", 5)
	v.SetDefault("identity_database.max_open_conns", 20)
	v.SetDefault("identity_database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Redis and cache defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.key_prefix", "")

	// Auth defaults
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)
	v.SetDefault("auth.jwt.issuer", "domain-sales")
	v.SetDefault("auth.service_key_hash", "")
	v.SetDefault("auth.service_actor_id", 1)

	// Email defaults
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.from_address", "noreply@domain-sales.local")
	v.SetDefault("email.from_name", "Domain Sales")
	v.SetDefault("email.billing_address", "billing@domain-sales.local")

	// Scheduler defaults
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.expiry_spec", "15 3 * * *")

	// Catalog defaults
	v.SetDefault("catalog.currency", constants.DefaultCurrency)
	v.SetDefault("catalog.locale", "pt-BR")
	v.SetDefault("catalog.description_cache", 512)
	v.SetDefault("catalog.rate_limit", 120)
	v.SetDefault("catalog.rate_window_seconds", 60)

	// Cancellation defaults
	v.SetDefault("cancellation.stamp_on_request", false)
	v.SetDefault("cancellation.default_reason", "Cancelamento confirmado")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
