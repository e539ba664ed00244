package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the configuration values for the application.
type Config struct {
	ListenPort string `env:"LISTEN_PORT" envDefault:"8000"`
	Env        string `env:"APP_ENV" envDefault:"production"`
	Version    string `env:"APP_VERSION" envDefault:"dev"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`
	PostgresURI    string `env:"POSTGRES_URI"`

	Auth AuthConfig
	HTTP HTTPConfig
}

// AuthConfig configures token signing and the fixed user registry.
type AuthConfig struct {
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"your-secret-key-here"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"30m"`
	AdminUsername     string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword     string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
}

type HTTPConfig struct {
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	AllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// IsDevelopment reports whether the service runs with development logging.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadConfig loads configuration from environment variables or uses default values.
// A .env file in the working directory is read first when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.PostgresURI == "" {
			return errors.New("POSTGRES_URI is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Auth.AdminUsername == "" {
		return errors.New("ADMIN_USERNAME must not be empty")
	}
	return nil
}
