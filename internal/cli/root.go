// Package cli provides the command-line interface for Runboard.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/runboard-dev/runboard/internal/cli/commands"
	"github.com/runboard-dev/runboard/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "runboard",
		Short: "Runboard - ML run comparison",
		Long: `Runboard shapes ML pipeline metadata (runs, executions, artifacts) into
comparison tables. Import a metadata dump, then compare runs side by side
on the command line or over the local JSON API.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			ctx := config.IntoContext(cmd.Context(), cfg)
			ctx = config.LoggerIntoContext(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					logger.Debug("using config file", "path", configFile)
				}
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: runboard.yaml)")
	flags.String("state", config.DefaultStateFile, "path to the metadata database")
	flags.StringP("output", "o", config.DefaultOutput, "output format: table, json, csv, markdown")
	flags.String("metrics-property", config.DefaultMetricsProperty, "custom property marking curve metric artifacts")
	flags.BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		commands.NewCompareCommand(),
		commands.NewRunsCommand(),
		commands.NewImportCommand(),
		commands.NewServeCommand(),
		commands.NewVersionCommand(Version, BuildDate, GitCommit),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
