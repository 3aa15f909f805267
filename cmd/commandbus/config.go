package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Config is the application configuration, read from the environment
// using the COMMANDBUS_ prefix (e.g. COMMANDBUS_LOG_LEVEL).
type Config struct {
	Log struct {
		Level       string `default:"info" required:"true"`
		Development bool   `default:"false"`
	}

	Initial int64 `default:"0"`
}

// ParseConfig reads the Config from the environment.
func ParseConfig() (*Config, error) {
	var config Config

	if err := envconfig.Process("commandbus", &config); err != nil {
		return nil, fmt.Errorf("config: failed to parse from env, %w", err)
	}

	return &config, nil
}

// NewLogger builds the zap.Logger described by the Config.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("config: invalid log level, %w", err)
	}

	cfg := zap.NewProductionConfig()
	if c.Log.Development {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = level

	return cfg.Build()
}
