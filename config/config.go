// SPDX-License-Identifier: MIT

// Package config loads matrixcalc settings from MATRIXCALC_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/matrixcalc/engine"
	"github.com/katalvlaran/matrixcalc/logging"
	"github.com/katalvlaran/matrixcalc/matrix"
)

// Prefix is prepended to every variable name, e.g. MATRIXCALC_LOG_LEVEL.
const Prefix = "MATRIXCALC"

// Config holds all application configuration.
type Config struct {
	LogLevel      string  `envconfig:"LOG_LEVEL"` // empty keeps the profile's level
	LogDev        bool    `envconfig:"LOG_DEV" default:"false"`
	Trace         bool    `envconfig:"TRACE" default:"false"`
	RankThreshold float64 `envconfig:"RANK_THRESHOLD" default:"0"`
	Format        string  `envconfig:"FORMAT" default:"yaml"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}

	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Format: "yaml",
	}
}

// Validate rejects values the engine or the job codecs would refuse.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s_LOG_LEVEL %q: %w", Prefix, c.LogLevel, err)
	}
	if matrix.ValidateRankThreshold(c.RankThreshold) != nil {
		return fmt.Errorf("invalid %s_RANK_THRESHOLD %v: must be in [0,1)", Prefix, c.RankThreshold)
	}
	switch strings.ToLower(c.Format) {
	case "yaml", "yml", "toml":
	default:
		return fmt.Errorf("invalid %s_FORMAT %q: want yaml or toml", Prefix, c.Format)
	}

	return nil
}

// Logging returns the logger configuration selected by LogDev. LogLevel
// overrides the profile's level only when set.
func (c *Config) Logging() logging.Config {
	base := logging.DefaultConfig()
	if c.LogDev {
		base = logging.DevelopmentConfig()
	}
	if c.LogLevel != "" {
		base.Level = c.LogLevel
	}

	return base
}

// EngineOptions translates the numeric settings into engine options.
// The tracer is wired by the caller, which owns the logger.
func (c *Config) EngineOptions() []engine.Option {
	var opts []engine.Option
	if c.RankThreshold > 0 {
		opts = append(opts, engine.WithRankThreshold(c.RankThreshold))
	}

	return opts
}
