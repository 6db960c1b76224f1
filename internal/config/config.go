package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Postgres PostgresConfig
	Server   ServerConfig
	Alerts   AlertsConfig
	Operator OperatorConfig
}

// PostgresConfig holds database connection settings.
type PostgresConfig struct {
	Address      string
	Port         string
	DB           string
	Username     string
	Password     string
	PoolMaxConns int
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AlertsConfig holds notification refresh settings.
type AlertsConfig struct {
	RefreshInterval time.Duration
}

// OperatorConfig holds write worker-pool settings.
type OperatorConfig struct {
	Workers int
}

// Load reads configuration from an optional config.yaml plus SWIFTFIN_*
// environment variables. Defaults target the docker compose setup.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("postgres.address", "localhost")
	v.SetDefault("postgres.port", "5433")
	v.SetDefault("postgres.db", "postgres")
	v.SetDefault("postgres.username", "postgres")
	v.SetDefault("postgres.password", "testpassword")
	v.SetDefault("postgres.poolmaxconns", 10)
	v.SetDefault("server.port", "9446")
	v.SetDefault("alerts.refreshinterval", 5*time.Minute)
	v.SetDefault("operator.workers", 4)

	v.SetEnvPrefix("SWIFTFIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Alerts.RefreshInterval <= 0 {
		return nil, fmt.Errorf("alerts refresh interval must be positive")
	}

	return &cfg, nil
}

// DSN returns the Postgres connection string.
func (c *PostgresConfig) DSN() string {
	return "postgres://" + c.Username + ":" + c.Password + "@" +
		c.Address + ":" + c.Port + "/" + c.DB + "?sslmode=disable"
}
