package config

import (
	"context"
	"io"
	"log/slog"
)

// Context keys for values threaded from the root command to subcommands.
type (
	configKey struct{}
	loggerKey struct{}
)

// IntoContext stores the loaded config on a command context.
func IntoContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the loaded config, or nil when the root command has
// not run.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(configKey{}).(*Config)
	return cfg
}

// LoggerIntoContext stores the CLI logger on a command context.
func LoggerIntoContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext returns the CLI logger, falling back to a discarding
// logger so callers never need a nil check.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
