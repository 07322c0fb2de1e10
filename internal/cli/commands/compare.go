package commands

import (
	"github.com/spf13/cobra"

	"github.com/runboard-dev/runboard/internal/compare"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare RUN_ID...",
		Short: "Compare scalar metrics across runs",
		Long: `Compare builds a metric comparison table for the given runs: one column
per artifact, one row per metric name, grouped under run headers. Metrics
present on more artifacts sort first.`,
		Example: `  # Compare two runs as a terminal table
  runboard compare run-1 run-2

  # Emit the raw view-model for a UI
  runboard compare run-1 run-2 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args)
		},
	}
	return cmd
}

func runCompare(cmd *cobra.Command, runIDs []string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	runs, err := cmdCtx.Store.ListRunArtifacts(runIDs)
	if err != nil {
		return err
	}

	props := compare.BuildCompareTable(runs)
	cmdCtx.Logger.Debug("assembled comparison table",
		"runs", len(runs),
		"columns", len(props.XLabels),
		"metrics", len(props.YLabels),
	)

	return renderCompareTable(cmd.OutOrStdout(), props, cmdCtx.Config.Output)
}
