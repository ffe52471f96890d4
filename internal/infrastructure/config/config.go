package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the Awair monitor.
// It is constructed once at startup and is read-only for the lifetime
// of the process.
type Config struct {
	Awair    AwairConfig    `yaml:"awair"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AwairConfig contains the Awair developer API settings.
type AwairConfig struct {
	// APIKey is the bearer token for the Awair developer API.
	APIKey string `yaml:"api_key"`

	// DeviceType and DeviceID identify the monitored device
	// (e.g., "awair-element" / "12345").
	DeviceType string `yaml:"device_type"`
	DeviceID   string `yaml:"device_id"`

	// BaseURL overrides the Awair API host. Empty means the production
	// host; set it to point at a local stand-in during development.
	BaseURL string `yaml:"base_url"`

	// PeriodSeconds is the length of the fetch window in seconds.
	// Each run covers the most recent complete window of this length.
	PeriodSeconds int `yaml:"period_seconds"`
}

// InfluxDBConfig contains InfluxDB connection settings.
// Username and Password are optional; everything else is required.
type InfluxDBConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load builds the process configuration.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. Optional YAML file named by AWAIR_CONFIG (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables are the primary interface; the file layer exists
// for deployments that prefer checked-in configuration over long
// environment blocks. Recognised variables: AWAIR_API_KEY,
// AWAIR_DEVICE_TYPE, AWAIR_DEVICE_ID, AWAIR_BASE_URL,
// AWAIR_PERIOD_SECONDS, INFLUXDB_URL, INFLUXDB_USERNAME,
// INFLUXDB_PASSWORD, INFLUXDB_DATABASE, AWAIR_LOG_LEVEL,
// AWAIR_LOG_FORMAT.
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If the file cannot be read or parsed, or validation fails
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("AWAIR_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
// Required values have no defaults and must come from the file or
// the environment.
func defaultConfig() *Config {
	return &Config{
		Awair: AwairConfig{
			PeriodSeconds: 300,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Empty variables are ignored; a set variable that
// cannot be parsed is an error, never a silent fallback to the default.
func applyEnvOverrides(cfg *Config) error {
	// Awair API
	if v := os.Getenv("AWAIR_API_KEY"); v != "" {
		cfg.Awair.APIKey = v
	}
	if v := os.Getenv("AWAIR_DEVICE_TYPE"); v != "" {
		cfg.Awair.DeviceType = v
	}
	if v := os.Getenv("AWAIR_DEVICE_ID"); v != "" {
		cfg.Awair.DeviceID = v
	}
	if v := os.Getenv("AWAIR_BASE_URL"); v != "" {
		cfg.Awair.BaseURL = v
	}
	if v := os.Getenv("AWAIR_PERIOD_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AWAIR_PERIOD_SECONDS: invalid value %q: %w", v, err)
		}
		cfg.Awair.PeriodSeconds = n
	}

	// InfluxDB
	if v := os.Getenv("INFLUXDB_URL"); v != "" {
		cfg.InfluxDB.URL = v
	}
	if v := os.Getenv("INFLUXDB_USERNAME"); v != "" {
		cfg.InfluxDB.Username = v
	}
	if v := os.Getenv("INFLUXDB_PASSWORD"); v != "" {
		cfg.InfluxDB.Password = v
	}
	if v := os.Getenv("INFLUXDB_DATABASE"); v != "" {
		cfg.InfluxDB.Database = v
	}

	// Logging
	if v := os.Getenv("AWAIR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("AWAIR_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	return nil
}

// Validate checks the configuration for errors.
//
// Every missing required value is reported in a single error so an
// operator can fix the whole environment in one pass. Validation runs
// before any network activity.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Awair.APIKey == "" {
		errs = append(errs, "awair.api_key is required (set AWAIR_API_KEY)")
	}
	if c.Awair.DeviceType == "" {
		errs = append(errs, "awair.device_type is required (set AWAIR_DEVICE_TYPE)")
	}
	if c.Awair.DeviceID == "" {
		errs = append(errs, "awair.device_id is required (set AWAIR_DEVICE_ID)")
	}
	if c.Awair.PeriodSeconds <= 0 {
		errs = append(errs, "awair.period_seconds must be positive")
	}

	if c.InfluxDB.URL == "" {
		errs = append(errs, "influxdb.url is required (set INFLUXDB_URL)")
	}
	if c.InfluxDB.Database == "" {
		errs = append(errs, "influxdb.database is required (set INFLUXDB_DATABASE)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Period returns the fetch window length as a Duration.
func (c *AwairConfig) Period() time.Duration {
	return time.Duration(c.PeriodSeconds) * time.Second
}
