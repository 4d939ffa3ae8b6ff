package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Session  SessionConfig  `mapstructure:"session"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host" validate:"required"`
	Port         int    `mapstructure:"port" validate:"required|int|min:1|max:65535"`
	ReadTimeout  int    `mapstructure:"read_timeout" validate:"required|int|min:1"`
	WriteTimeout int    `mapstructure:"write_timeout" validate:"required|int|min:1"`
	IdleTimeout  int    `mapstructure:"idle_timeout" validate:"required|int|min:1"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Pretty bool   `mapstructure:"pretty"`
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	SizeMB  int  `mapstructure:"size_mb" validate:"int|min:0"`
	TTL     int  `mapstructure:"ttl" validate:"required|int|min:1"`
}

// MetricsConfig holds prometheus exposition configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required|startsWith:/"`
}

// SessionConfig holds viewer session configuration
type SessionConfig struct {
	IdleTimeout   int    `mapstructure:"idle_timeout" validate:"required|int|min:1"`
	SweepSchedule string `mapstructure:"sweep_schedule" validate:"required"`
}

// ScheduleConfig holds program schedule configuration
type ScheduleConfig struct {
	Timezone         string `mapstructure:"timezone" validate:"required"`
	RolloverSchedule string `mapstructure:"rollover_schedule" validate:"required"`
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/mahaatv")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	return FromViper(v)
}

// FromViper decodes and validates configuration from a prepared viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SetDefaults registers a default for every key
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty", true)

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size_mb", 32)
	v.SetDefault("cache.ttl", 30)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Session defaults
	v.SetDefault("session.idle_timeout", 720)
	v.SetDefault("session.sweep_schedule", "*/15 * * * *")

	// Schedule defaults
	v.SetDefault("schedule.timezone", "Local")
	v.SetDefault("schedule.rollover_schedule", "0 0 * * *")
}

// Validate checks every section and the values the tags cannot express
func (c *Config) Validate() error {
	sections := []struct {
		name string
		data interface{}
	}{
		{"server", &c.Server},
		{"logger", &c.Logger},
		{"cache", &c.Cache},
		{"metrics", &c.Metrics},
		{"session", &c.Session},
		{"schedule", &c.Schedule},
	}
	for _, section := range sections {
		v := validate.Struct(section.data)
		if !v.Validate() {
			return fmt.Errorf("invalid %s config: %s", section.name, v.Errors.One())
		}
	}

	if c.Cache.Enabled && c.Cache.SizeMB < 1 {
		return fmt.Errorf("invalid cache config: size_mb must be positive when enabled")
	}
	if _, err := c.Schedule.Location(); err != nil {
		return fmt.Errorf("invalid schedule config: %w", err)
	}
	if _, err := cron.ParseStandard(c.Schedule.RolloverSchedule); err != nil {
		return fmt.Errorf("invalid schedule config: rollover_schedule: %w", err)
	}
	if _, err := cron.ParseStandard(c.Session.SweepSchedule); err != nil {
		return fmt.Errorf("invalid session config: sweep_schedule: %w", err)
	}
	return nil
}

// Location resolves the schedule timezone
func (c *ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// IdleDuration returns the session idle timeout
func (c *SessionConfig) IdleDuration() time.Duration {
	return time.Duration(c.IdleTimeout) * time.Minute
}

// Addr returns server address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
