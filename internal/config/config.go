package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime and business configuration. Values come from the
// environment (optionally a config.yaml), with working defaults for local
// development.
type Config struct {
	AppEnv      string `mapstructure:"APP_ENV"`
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// Timezone is the single fixed business timezone. All wall-clock
	// values (operating windows, slot labels) are interpreted in it.
	Timezone string `mapstructure:"BUSINESS_TIMEZONE"`

	SlotIntervalMinutes int `mapstructure:"SLOT_INTERVAL_MINUTES"`
	BufferMinutes       int `mapstructure:"BUFFER_MINUTES"`

	// DefaultServiceDurationMinutes is applied when a service is created;
	// there is no edit path for duration afterwards.
	DefaultServiceDurationMinutes int `mapstructure:"DEFAULT_SERVICE_DURATION_MINUTES"`

	// FitWithinClose switches the slot boundary policy: true never offers
	// a slot whose service time would run past closing, false offers any
	// start strictly before closing.
	FitWithinClose bool `mapstructure:"FIT_WITHIN_CLOSE"`

	// StorageTimeout bounds every data-store call made by the booking
	// paths.
	StorageTimeout time.Duration `mapstructure:"STORAGE_TIMEOUT"`

	// CancelledRetentionDays controls how long cancelled appointments are
	// kept before the cleanup job purges them.
	CancelledRetentionDays int `mapstructure:"CANCELLED_RETENTION_DAYS"`
}

// Load reads configuration from env vars and an optional config file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DATABASE_URL", "barbershop.db")
	v.SetDefault("JWT_SECRET", "change-me-jwt-secret")
	v.SetDefault("BUSINESS_TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	v.SetDefault("BUFFER_MINUTES", 10)
	v.SetDefault("DEFAULT_SERVICE_DURATION_MINUTES", 45)
	v.SetDefault("FIT_WITHIN_CLOSE", false)
	v.SetDefault("STORAGE_TIMEOUT", "5s")
	v.SetDefault("CANCELLED_RETENTION_DAYS", 90)

	// a missing config file is fine, env vars cover everything
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.SlotIntervalMinutes <= 0 {
		return nil, fmt.Errorf("config: SLOT_INTERVAL_MINUTES must be positive")
	}
	if cfg.BufferMinutes < 0 {
		return nil, fmt.Errorf("config: BUFFER_MINUTES must not be negative")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("config: bad BUSINESS_TIMEZONE: %w", err)
	}
	return cfg, nil
}

// Location resolves the business timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// SlotInterval returns the step between candidate start times.
func (c *Config) SlotInterval() time.Duration {
	return time.Duration(c.SlotIntervalMinutes) * time.Minute
}

// Buffer returns the gap reserved after every appointment.
func (c *Config) Buffer() time.Duration {
	return time.Duration(c.BufferMinutes) * time.Minute
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
