package cli

import (
	"github.com/spf13/cobra"

	"github.com/milden6/dawg-anagram/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer anagram queries over HTTP",
		Long: `Serve GET /solve?letters=... with a JSON result and GET /healthz as a
liveness probe. The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			solver, err := c.newSolver()
			if err != nil {
				return err
			}

			cfg := c.Config.Server
			if addr != "" {
				cfg.Addr = addr
			}

			return server.New(solver, cfg, loggerFromContext(cmd.Context())).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
