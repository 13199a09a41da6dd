// Package config loads the bulk order service settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"bulk-order-service/internal/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvPort        = "BULKORDER_PORT"
	EnvLogLevel    = "BULKORDER_LOG_LEVEL"
	EnvMaxUploadMB = "BULKORDER_MAX_UPLOAD_MB"
)

// Config holds every setting of the service.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Log          LogConfig          `yaml:"log"`
	Customer     CustomerConfig     `yaml:"customer"`
	Transactions TransactionsConfig `yaml:"transactions"`
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	// Port the router listens on. Default: "8084"
	Port string `yaml:"port"`

	// MaxUploadMB caps the multipart memory of one request. Default: 32
	MaxUploadMB int64 `yaml:"max_upload_mb"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error". Default: "info"
	Level string `yaml:"level"`

	// Development switches to the human readable console encoder.
	Development bool `yaml:"development"`
}

// CustomerConfig holds the constants written on every Customer_Sample row.
// Pointers distinguish an explicit zero from an absent key.
type CustomerConfig struct {
	Website                string `yaml:"website"`
	Store                  string `yaml:"store"`
	CreatedIn              string `yaml:"created_in"`
	DisableAutoGroupChange *int   `yaml:"disable_auto_group_change"`
	Prefix                 string `yaml:"prefix"`
	WebsiteID              *int   `yaml:"website_id"`
	AddressFax             string `yaml:"address_fax"`
	DefaultBilling         *int   `yaml:"default_billing"`
	DefaultShipping        *int   `yaml:"default_shipping"`
}

// TransactionsConfig controls the derived transaction dates.
type TransactionsConfig struct {
	// CreatedAtOffsetDays is subtracted from the invoice date. Default: 2
	CreatedAtOffsetDays *int `yaml:"created_at_offset_days"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML file at path, applies defaults and then environment
// overrides. A missing file is not an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyDefaults(&cfg)
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8084"
	}
	if cfg.Server.MaxUploadMB == 0 {
		cfg.Server.MaxUploadMB = 32
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	d := domain.DefaultCustomerDefaults()
	c := &cfg.Customer
	if c.Website == "" {
		c.Website = d.Website
	}
	if c.Store == "" {
		c.Store = d.Store
	}
	if c.CreatedIn == "" {
		c.CreatedIn = d.CreatedIn
	}
	if c.DisableAutoGroupChange == nil {
		c.DisableAutoGroupChange = intPtr(d.DisableAutoGroupChange)
	}
	if c.Prefix == "" {
		c.Prefix = d.Prefix
	}
	if c.WebsiteID == nil {
		c.WebsiteID = intPtr(d.WebsiteID)
	}
	if c.AddressFax == "" {
		c.AddressFax = d.AddressFax
	}
	if c.DefaultBilling == nil {
		c.DefaultBilling = intPtr(d.DefaultBilling)
	}
	if c.DefaultShipping == nil {
		c.DefaultShipping = intPtr(d.DefaultShipping)
	}

	if cfg.Transactions.CreatedAtOffsetDays == nil {
		cfg.Transactions.CreatedAtOffsetDays = intPtr(domain.DefaultCreatedAtOffsetDays)
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvMaxUploadMB); v != "" {
		mb, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxUploadMB, v, err)
		}
		cfg.Server.MaxUploadMB = mb
	}
	return nil
}

func validate(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return fmt.Errorf("server.port must be numeric, got %q", cfg.Server.Port)
	}
	if cfg.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive, got %d", cfg.Server.MaxUploadMB)
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if *cfg.Transactions.CreatedAtOffsetDays < 0 {
		return fmt.Errorf("transactions.created_at_offset_days must not be negative")
	}
	return nil
}

// CustomerDefaults returns the constants written on every customer row.
func (cfg *Config) CustomerDefaults() domain.CustomerDefaults {
	c := cfg.Customer
	return domain.CustomerDefaults{
		Website:                c.Website,
		Store:                  c.Store,
		CreatedIn:              c.CreatedIn,
		DisableAutoGroupChange: *c.DisableAutoGroupChange,
		Prefix:                 c.Prefix,
		WebsiteID:              *c.WebsiteID,
		AddressFax:             c.AddressFax,
		DefaultBilling:         *c.DefaultBilling,
		DefaultShipping:        *c.DefaultShipping,
	}
}

// CreatedAtOffsetDays returns the configured created-date offset.
func (cfg *Config) CreatedAtOffsetDays() int {
	return *cfg.Transactions.CreatedAtOffsetDays
}

// MaxUploadBytes is the multipart memory limit in bytes.
func (cfg *Config) MaxUploadBytes() int64 {
	return cfg.Server.MaxUploadMB << 20
}

// NewLogger builds the zap logger: JSON production output by default, the
// development console encoder when log.development is set.
func (cfg *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if cfg.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func intPtr(v int) *int {
	return &v
}
