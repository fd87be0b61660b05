package internal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Category      CategoryConfig      `mapstructure:"category"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type CategoryConfig struct {
	// StrictIDs rejects caller supplied ids that are not version 4 UUIDs.
	StrictIDs     bool `mapstructure:"strict_ids"`
	MaxNameLength int  `mapstructure:"max_name_length"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

// DefaultLogFormat applies when neither the config file nor the environment
// names a format.
const DefaultLogFormat = "text"

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

func LoadConfigFromEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Category: CategoryConfig{
			StrictIDs:     getEnvAsBool("CATEGORY_STRICT_IDS", false),
			MaxNameLength: getEnvAsInt("CATEGORY_MAX_NAME_LENGTH", 0),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", DefaultLogFormat),
			},
		},
	}
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Category.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("category config: %v", err))
	}

	if err := c.Observability.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return NewValidationError("invalid configuration", ErrCodeInvalidConfig).
			WithCause(errors.New(strings.Join(errs, "; ")))
	}

	return nil
}

func (c *CategoryConfig) Validate() error {
	if c.MaxNameLength < 0 {
		return errors.New("max_name_length cannot be negative")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", c.Level)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}
