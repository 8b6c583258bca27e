package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. PAXTREND_SOURCE.
const EnvPrefix = "PAXTREND"

// Default values applied when fields are absent from the config file.
const (
	DefaultOutput    = "text"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the settings of the paxtrend command.
type Config struct {
	// Source is the path of the passenger CSV file.
	Source string `yaml:"source" validate:"required"`

	// FirstYear and LastYear bound the increment range. Their format is
	// checked by the calculator, not here.
	FirstYear string `yaml:"first_year" split_words:"true" validate:"required"`
	LastYear  string `yaml:"last_year" split_words:"true" validate:"required"`

	// Output selects the rendering: text | json | csv.
	Output string `yaml:"output" validate:"oneof=text json csv"`

	// Watch keeps the command running and recomputes on every source change.
	Watch bool `yaml:"watch"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and PAXTREND_* environment variables, in that order.
// The result is not validated; call Validate once flags are applied.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	return cfg, nil
}

// Defaults returns a Config pre-populated with default values.
func Defaults() *Config {
	return &Config{
		Output: DefaultOutput,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Validate checks required fields and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
