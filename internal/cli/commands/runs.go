package commands

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/runboard-dev/runboard/pkg/core"
)

// NewRunsCommand creates the runs command.
func NewRunsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List imported runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRuns(cmd)
		},
	}
}

func runRuns(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	runs, err := cmdCtx.Store.ListRuns()
	if err != nil {
		return err
	}

	if cmdCtx.Config.Output == "json" {
		return renderJSON(cmd.OutOrStdout(), runs)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Status", "Started"})
	for _, run := range runs {
		t.AppendRow(table.Row{run.ID, run.Name, string(run.Status), formatStarted(run)})
	}

	switch cmdCtx.Config.Output {
	case "csv":
		t.RenderCSV()
	case "md", "markdown":
		t.RenderMarkdown()
	default:
		t.Render()
	}
	return nil
}

func formatStarted(run *core.Run) string {
	if run.StartedAt.IsZero() {
		return "-"
	}
	return run.StartedAt.UTC().Format(time.RFC3339)
}
