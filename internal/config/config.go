// Package config provides configuration management for gush. The interpreter
// has no configuration file: every setting comes from the environment, with
// defaults for anything unset.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultPrompt    = "$ "
	DefaultVerbosity = 0
)

// validate is the shared validator instance.
var validate = validator.New()

// Config represents the full gush configuration.
type Config struct {
	// Prompt is written before each interactive read. It may be empty.
	Prompt string `mapstructure:"prompt"`

	// Verbosity selects the log level: 0 errors only, 1 adds info, 2 and
	// above add debug.
	Verbosity int `mapstructure:"verbosity" validate:"gte=0,lte=3"`
}

// Validate checks the configuration for errors using struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Loader provides configuration loading from the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader. Values are read from
// GUSH_-prefixed environment variables only.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix("GUSH")
	v.AutomaticEnv()
	// An explicitly empty GUSH_PROMPT means "no prompt", not "use the default".
	v.AllowEmptyEnv(true)

	// Bind specific env vars to config keys.
	// We intentionally ignore errors here as BindEnv only fails if called with zero arguments.
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("prompt", "GUSH_PROMPT")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("verbosity", "GUSH_VERBOSITY")

	l := &Loader{v: v}
	l.setDefaults()

	return l
}

// setDefaults sets all default configuration values using Viper.
func (l *Loader) setDefaults() {
	l.v.SetDefault("prompt", DefaultPrompt)
	l.v.SetDefault("verbosity", DefaultVerbosity)
}

// Load resolves the configuration from the environment and defaults.
func (l *Loader) Load() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
