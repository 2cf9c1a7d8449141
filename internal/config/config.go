// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when one
// exists), loads them on top of the defaults into structured Go types, and
// validates them so the app fails fast on bad or missing config.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env before
	// anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix every application variable carries.
	EnvPrefix = "EVENTBOOKING_"

	// ServiceName tags logs, traces and metrics.
	ServiceName = "eventbooking"
)

var listKeys = []string{
	"server.cors_allowed_origins",
	"observability.health_checks.checks",
}

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config is the root configuration object for the application.
//
// Nested keys are separated by a double underscore in the environment:
//
//	EVENTBOOKING_SERVER__PORT=8080         -> server.port
//	EVENTBOOKING_STORE__DRIVER=postgres    -> store.driver
//	EVENTBOOKING_DATABASE__SSL_MODE=disable -> database.ssl_mode
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Store         StoreConfig          `koanf:"store" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Redis         RedisConfig          `koanf:"redis"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the sustained requests per second allowed per client IP,
	// with bursts up to RateBurst. Zero disables limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=0"`
}

// StoreConfig selects where entities live.
//
// Seed only applies to the memory driver and preloads a handful of users.
type StoreConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=memory postgres"`
	Seed   bool   `koanf:"seed"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// It is only required when Store.Driver is "postgres".
type DatabaseConfig struct {
	Host            string `koanf:"host"`
	Port            int    `koanf:"port"`
	User            string `koanf:"user"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name"`
	SSLMode         string `koanf:"ssl_mode"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details. An empty Address disables
// Redis and the background job server.
type RedisConfig struct {
	Address string `koanf:"address" validate:"omitempty,hostname_port"`
}

// IntegrationConfig stores credentials for third-party services.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// DefaultConfig returns the configuration used for every key the environment
// does not set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit:          20,
			RateBurst:          40,
		},
		Store: StoreConfig{Driver: StoreMemory},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 300,
		},
		Integration: IntegrationConfig{
			EmailFrom: "Event Booking <bookings@resend.dev>",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// Load reads EVENTBOOKING_* variables on top of DefaultConfig, validates the
// result and returns it.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Comma separated lists arrive as a single string.
	for _, key := range listKeys {
		if raw := k.String(key); raw != "" {
			if err := k.Set(key, splitList(raw)); err != nil {
				return nil, fmt.Errorf("could not parse %s: %w", key, err)
			}
		}
	}

	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags and the rules that span several sections.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Store.Driver == StorePostgres {
		if err := c.Database.validate(); err != nil {
			return err
		}
	}

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

// UsesPostgres reports whether entities are persisted in PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.Store.Driver == StorePostgres
}

func (d DatabaseConfig) validate() error {
	missing := make([]string, 0, 4)
	if d.Host == "" {
		missing = append(missing, "host")
	}
	if d.Port == 0 {
		missing = append(missing, "port")
	}
	if d.User == "" {
		missing = append(missing, "user")
	}
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("database %s required when store.driver is postgres", strings.Join(missing, ", "))
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
