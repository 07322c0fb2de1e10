package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runboard-dev/runboard/internal/loader"
)

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a run metadata dump",
		Long: `Import reads a YAML metadata dump of runs, executions, and artifacts and
writes it into the metadata database. Entities without IDs get generated
ones.`,
		Example: `  runboard import runs.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0])
		},
	}
}

func runImport(cmd *cobra.Command, path string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dump: %w", err)
	}
	defer f.Close()

	dump, err := loader.Parse(f)
	if err != nil {
		return err
	}

	stats, err := loader.Import(cmdCtx.Store, dump)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d runs, %d executions, %d artifacts\n",
		stats.Runs, stats.Executions, stats.Artifacts)
	return nil
}
