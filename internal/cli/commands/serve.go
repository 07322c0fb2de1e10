package commands

import (
	"github.com/spf13/cobra"

	"github.com/runboard-dev/runboard/internal/ui"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison JSON API",
		Long: `Serve starts a local HTTP server exposing the comparison view-models as
JSON for a rendering frontend.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
	cmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	port := cmdCtx.Config.Port()
	if flagPort, _ := cmd.Flags().GetInt("port"); flagPort != 0 {
		port = flagPort
	}

	server := ui.NewServer(ui.Config{
		Store:           cmdCtx.Store,
		Port:            port,
		MetricsProperty: cmdCtx.Config.MetricsProperty,
		Logger:          cmdCtx.Logger,
	})
	return server.Serve(cmd.Context())
}
