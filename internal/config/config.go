// Package config loads and validates the portfolio API configuration from a
// YAML file with environment variable overrides.
package config

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	defaultServiceName     = "portfolio-api"
	defaultServicePort     = 8080
	defaultVersion         = "0.1.0"
	defaultLanguage        = "pt"
	defaultBodyLimit       = 1 << 20 // 1 MiB
	defaultReadTimeoutS    = 10
	defaultWriteTimeoutS   = 30
	defaultIdleTimeoutS    = 60
	defaultShutdownS       = 10
	defaultTokenTTLHours   = 24
	defaultLoggingLevel    = "info"
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBName          = "portfolio"
	defaultDBUser          = "postgres"
	defaultDBSSLMode       = "disable"
	defaultRateLimitMax    = 100
	defaultRateLimitWindow = 15 * time.Minute
)

// Config holds the application configuration.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Port            int           `env:"PORT"             yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"        yaml:"debug"`
	BaseURL         string        `env:"BASE_URL"         yaml:"base_url"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" yaml:"default_language"`
	BodyLimit       int64         `yaml:"body_limit"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST"     yaml:"host"`
	Port     int    `env:"POSTGRES_PORT"     yaml:"port"`
	User     string `env:"POSTGRES_USER"     yaml:"user"`
	Password string `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database string `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode  string `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// URL returns the PostgreSQL connection URL used by the migration tool.
func (d *DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

// AuthConfig holds admin session configuration.
type AuthConfig struct {
	SessionSecret     string        `env:"SESSION_SECRET"      yaml:"session_secret"`
	TokenTTL          time.Duration `yaml:"token_ttl"`
	AdminUsername     string        `env:"ADMIN_USERNAME"      yaml:"admin_username"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH" yaml:"admin_password_hash"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	MaxRequests int           `env:"RATE_LIMIT_MAX" yaml:"max_requests"`
	Window      time.Duration `yaml:"window"`
}

// CORSConfig holds the allowed cross-origin value.
type CORSConfig struct {
	AllowedOrigin string `env:"CORS_ORIGIN" yaml:"allowed_origin"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" yaml:"level"`
}

// Load loads configuration from the specified path, applies defaults,
// then re-applies environment overrides (env always wins).
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database)
	setAuthDefaults(&cfg.Auth)
	setRateLimitDefaults(&cfg.RateLimit)
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLoggingLevel
	}
}

// setServiceDefaults applies default values to ServiceConfig.
func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Port == 0 {
		svc.Port = defaultServicePort
	}
	if svc.DefaultLanguage == "" {
		svc.DefaultLanguage = defaultLanguage
	}
	if svc.BodyLimit == 0 {
		svc.BodyLimit = defaultBodyLimit
	}
	if svc.ReadTimeout == 0 {
		svc.ReadTimeout = defaultReadTimeoutS * time.Second
	}
	if svc.WriteTimeout == 0 {
		svc.WriteTimeout = defaultWriteTimeoutS * time.Second
	}
	if svc.IdleTimeout == 0 {
		svc.IdleTimeout = defaultIdleTimeoutS * time.Second
	}
	if svc.ShutdownTimeout == 0 {
		svc.ShutdownTimeout = defaultShutdownS * time.Second
	}
}

// setDatabaseDefaults applies default values to DatabaseConfig.
func setDatabaseDefaults(db *DatabaseConfig) {
	if db.Host == "" {
		db.Host = defaultDBHost
	}
	if db.Port == 0 {
		db.Port = defaultDBPort
	}
	if db.User == "" {
		db.User = defaultDBUser
	}
	if db.Database == "" {
		db.Database = defaultDBName
	}
	if db.SSLMode == "" {
		db.SSLMode = defaultDBSSLMode
	}
}

// setAuthDefaults applies default values to AuthConfig.
func setAuthDefaults(a *AuthConfig) {
	if a.TokenTTL == 0 {
		a.TokenTTL = defaultTokenTTLHours * time.Hour
	}
	if a.AdminUsername == "" {
		a.AdminUsername = "admin"
	}
}

// setRateLimitDefaults applies default values to RateLimitConfig.
func setRateLimitDefaults(rl *RateLimitConfig) {
	if rl.MaxRequests == 0 {
		rl.MaxRequests = defaultRateLimitMax
	}
	if rl.Window == 0 {
		rl.Window = defaultRateLimitWindow
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration. The process must refuse to start
// without a database, session secret, base URL and CORS origin.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return &ValidationError{Field: "service.port", Message: "must be between 1 and 65535"}
	}
	required := []struct {
		field string
		value string
	}{
		{"service.base_url", c.Service.BaseURL},
		{"database.host", c.Database.Host},
		{"database.user", c.Database.User},
		{"database.database", c.Database.Database},
		{"auth.session_secret", c.Auth.SessionSecret},
		{"auth.admin_password_hash", c.Auth.AdminPasswordHash},
		{"cors.allowed_origin", c.CORS.AllowedOrigin},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}
	return nil
}
