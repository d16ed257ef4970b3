// Package config holds the environment based configuration of the seqdemo application.
package config

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrInvalidMaxLimit errorkit.Error = "invalid maximum limit"

type Config struct {
	// LogLevel is the minimum level of the log entries written to the standard error.
	LogLevel logging.Level `env:"SEQDEMO_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;"`
	// MaxLimit is the upper bound of the --limit flag for commands that print infinite sequences.
	MaxLimit int `env:"SEQDEMO_MAX_LIMIT" default:"1000"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	if c.MaxLimit <= 0 {
		return Config{}, ErrInvalidMaxLimit.F("SEQDEMO_MAX_LIMIT must be positive, got %d", c.MaxLimit)
	}
	return c, nil
}

// ConfigureLogger applies the logging related settings to l.
// It is meant to be passed to logger.Configure.
func (c Config) ConfigureLogger(l *logging.Logger) {
	l.Level = c.LogLevel
}
