package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Option presets a value; environment variables still take precedence.
type Option func(c *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Generator.Workers = n
	}
}
