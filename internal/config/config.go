package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the time conductor application
type Config struct {
	Database    DatabaseConfig
	Clock       ClockConfig
	Time        TimeConfig
	Validation  ValidationConfig
	Navigation  NavigationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TC_DB_DIR"`
	Filename       string        `env:"TC_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TC_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TC_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TC_DB_DIR_PERMISSIONS"`
}

// ClockConfig holds active clock configuration
type ClockConfig struct {
	Key          string        `env:"TC_CLOCK_KEY"`
	TickInterval time.Duration `env:"TC_CLOCK_TICK_INTERVAL"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `env:"TC_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	MaxWindowSpan time.Duration `env:"TC_VALIDATION_MAX_WINDOW_SPAN"`
}

// NavigationConfig holds shareable URL configuration
type NavigationConfig struct {
	BaseURL string `env:"TC_NAV_BASE_URL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TC_APP_TIMEOUT"`
	Verbose bool          `env:"TC_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tc")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tc.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Clock: ClockConfig{
			Key:          "local",
			TickInterval: time.Second,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04:05.000Z07:00",
		},
		Validation: ValidationConfig{
			// Ten years: wide enough for archived mission data, tight
			// enough to catch year-typo timestamps.
			MaxWindowSpan: 10 * 365 * 24 * time.Hour,
		},
		Navigation: NavigationConfig{
			BaseURL: "https://telemetry.local/view",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TC_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TC_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TC_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TC_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TC_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Clock configuration
	if key := os.Getenv("TC_CLOCK_KEY"); key != "" {
		c.Clock.Key = key
	}
	if interval := os.Getenv("TC_CLOCK_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Clock.TickInterval = d
		}
	}

	// Time configuration
	if format := os.Getenv("TC_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	// Validation configuration
	if span := os.Getenv("TC_VALIDATION_MAX_WINDOW_SPAN"); span != "" {
		if d, err := time.ParseDuration(span); err == nil {
			c.Validation.MaxWindowSpan = d
		}
	}

	// Navigation configuration
	if base := os.Getenv("TC_NAV_BASE_URL"); base != "" {
		c.Navigation.BaseURL = base
	}

	// Application configuration
	if timeout := os.Getenv("TC_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TC_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate clock configuration
	if c.Clock.Key == "" {
		return &ConfigError{Field: "clock.key", Message: "clock key cannot be empty"}
	}
	if c.Clock.TickInterval <= 0 {
		return &ConfigError{Field: "clock.tick_interval", Message: "tick interval must be positive"}
	}

	// Validate time configuration
	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.MaxWindowSpan <= 0 {
		return &ConfigError{Field: "validation.max_window_span", Message: "max window span must be positive"}
	}

	// Validate navigation configuration
	if c.Navigation.BaseURL == "" {
		return &ConfigError{Field: "navigation.base_url", Message: "base URL cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
