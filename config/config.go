package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds every setting read from the environment.
type Config struct {
	AppName string `envconfig:"APP_NAME" default:"Futura Blog"`
	AppEnv  string `envconfig:"APP_ENV" default:"production"`

	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"futura_blog"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBPath     string `envconfig:"DB_PATH" default:"futura.db"`
	DBLogLevel string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports settings that would make the database unreachable.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("config: postgres requires DB_HOST, DB_USER and DB_NAME")
		}
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("config: sqlite requires DB_PATH")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// IsDevelopment reports whether the app runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// DSN returns the postgres data source name.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
