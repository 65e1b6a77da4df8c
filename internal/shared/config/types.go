package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig describes one relational database. Driver is mysql, postgres or sqlite;
// for sqlite Database is the file path (":memory:" allowed).
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type CacheConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	Issuer           string `mapstructure:"issuer"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
	// ServiceKeyHash is the bcrypt hash of the key the identity system presents in X-Service-Key.
	ServiceKeyHash string `mapstructure:"service_key_hash"`
	// ServiceActorID is the acting user recorded for calls authenticated by service key.
	ServiceActorID uint64 `mapstructure:"service_actor_id"`
}

type EmailConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	SMTPHost       string `mapstructure:"smtp_host"`
	SMTPPort       int    `mapstructure:"smtp_port"`
	SMTPUser       string `mapstructure:"smtp_user"`
	SMTPPassword   string `mapstructure:"smtp_password"`
	FromAddress    string `mapstructure:"from_address"`
	FromName       string `mapstructure:"from_name"`
	BillingAddress string `mapstructure:"billing_address"`
}

type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// ExpirySpec is a cron expression for the subscription expiry job.
	ExpirySpec string `mapstructure:"expiry_spec"`
}

type CatalogConfig struct {
	Currency         string `mapstructure:"currency"`
	Locale           string `mapstructure:"locale"`
	DescriptionCache int    `mapstructure:"description_cache"`
	RateLimit        int    `mapstructure:"rate_limit"`
	RateWindowSecond int    `mapstructure:"rate_window_seconds"`
}

func (c *CatalogConfig) RateWindow() time.Duration {
	if c.RateWindowSecond <= 0 {
		return time.Minute
	}
	return time.Duration(c.RateWindowSecond) * time.Second
}

// CancellationConfig controls the two-phase cancellation workflow.
type CancellationConfig struct {
	// StampOnRequest reproduces the legacy behaviour of filling cancelled_at when
	// the cancellation is requested instead of when it is confirmed.
	StampOnRequest bool   `mapstructure:"stamp_on_request"`
	DefaultReason  string `mapstructure:"default_reason"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
