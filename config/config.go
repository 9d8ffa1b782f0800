/*
Package config loads the portal configuration.

SOURCES (later wins):
  1. Defaults (Default)
  2. Optional YAML file (path from -config / PORTAL_CONFIG)
  3. Environment, prefix PORTAL_ (a .env file in the working directory is
     loaded first, if present)

  Example:
    PORTAL_SERVER_PORT=9090
    PORTAL_SOURCES_ADMIN=https://docs.google.com/.../pub?output=csv
    PORTAL_LOGGING_LEVEL=debug

VALIDATION:
  Every source must be an absolute URL; ports and rate limits must be
  positive. Load fails on the first invalid field.

DEFAULT SOURCES:
  The defaults point at the published HR workbook. Each sheet of the
  workbook is its own export, distinguished by gid.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/warp/employee-portal/employee"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "PORTAL"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Fetch     FetchConfig     `yaml:"fetch" envconfig:"FETCH"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	Sources   SourcesConfig   `yaml:"sources" envconfig:"SOURCES"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	StaticDir       string        `yaml:"static_dir" envconfig:"STATIC_DIR"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// FetchConfig contains source fetch configuration.
type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"min=0"`
}

// RateLimitConfig limits lookups, each of which fans out to six fetches.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gt=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"min=1"`
}

// SourcesConfig holds the export URL of each sheet.
type SourcesConfig struct {
	Admin         string `yaml:"admin" envconfig:"ADMIN" validate:"required,url"`
	CurrentSalary string `yaml:"current_salary" envconfig:"CURRENT_SALARY" validate:"required,url"`
	ArchiveSalary string `yaml:"archive_salary" envconfig:"ARCHIVE_SALARY" validate:"required,url"`
	Bonuses       string `yaml:"bonuses" envconfig:"BONUSES" validate:"required,url"`
	Dispatches    string `yaml:"dispatches" envconfig:"DISPATCHES" validate:"required,url"`
	ExtraHours    string `yaml:"extra_hours" envconfig:"EXTRA_HOURS" validate:"required,url"`
}

const (
	adminExport    = "https://docs.google.com/spreadsheets/d/e/2PACX-1vTji7xqDlsIEqmdqSFJnunFov95noGe4OcaSVoBkzTl1uPWTevB2lRU1oMmDCD4hvkjzOgf5d6Vve7x/pub?output=csv"
	workbookExport = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRTsXbqGO6bjMlqDv9mIj79NqaN48VrYAxJcfapTqnYbyTyBPXkhz22YsKKH2fDeQfDuHfkZl2BmCrG/pub?single=true&output=csv&gid="
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			AllowedOrigins:  []string{"http://localhost:5173", "http://localhost:8080"},
			StaticDir:       "./web/dist",
		},
		Logging:   LoggingConfig{Level: "info"},
		Fetch:     FetchConfig{Timeout: 30 * time.Second},
		RateLimit: RateLimitConfig{Enabled: true, RPS: 5, Burst: 10},
		Sources:   DefaultSources(),
	}
}

// DefaultSources returns the published HR workbook exports.
func DefaultSources() SourcesConfig {
	return SourcesConfig{
		Admin:         adminExport,
		CurrentSalary: workbookExport + "666661995",
		ArchiveSalary: workbookExport + "1417662678",
		Bonuses:       workbookExport + "1629531206",
		Dispatches:    workbookExport + "1862138881",
		ExtraHours:    workbookExport + "604832310",
	}
}

// Employee converts to the lookup service's source list.
func (s SourcesConfig) Employee() employee.Sources {
	return employee.Sources{
		Admin:         s.Admin,
		CurrentSalary: s.CurrentSalary,
		ArchiveSalary: s.ArchiveSalary,
		Bonuses:       s.Bonuses,
		Dispatches:    s.Dispatches,
		ExtraHours:    s.ExtraHours,
	}
}

// Load builds the configuration. path may be empty.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFile overlays a YAML file onto cfg. Keys absent from the file keep
// their current value.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
