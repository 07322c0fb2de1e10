// Package commands implements the runboard subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/runboard-dev/runboard/internal/cli/config"
	"github.com/runboard-dev/runboard/internal/state"
)

// CommandContext bundles what every subcommand needs: the loaded config,
// the CLI logger, and an opened, migrated metadata store.
type CommandContext struct {
	Config *config.Config
	Logger *slog.Logger
	Store  *state.SQLiteStore
}

// NewCommandContext resolves config from the command context and opens the
// metadata store. The returned cleanup closes the store.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		return nil, nil, fmt.Errorf("configuration not loaded")
	}
	logger := config.LoggerFromContext(cmd.Context())

	// Ensure the state directory exists
	stateDir := filepath.Dir(cfg.StatePath)
	if stateDir != "." && stateDir != "" {
		if err := os.MkdirAll(stateDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	store := state.NewSQLiteStore(logger)
	if err := store.Open(cfg.StatePath); err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}
	return &CommandContext{Config: cfg, Logger: logger, Store: store}, cleanup, nil
}
