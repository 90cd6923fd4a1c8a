package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/flapboard/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP API for the
// editor until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		redis   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the measure and encode API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if redis != "" {
				cfg.Cache.Redis = redis
			}

			runner, err := c.newRunner(cmd.Context(), cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Serving %d×%d board on %s", cfg.Columns, cfg.Rows, StyleHighlight.Render(addr))
			return server.New(runner, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redis, "redis", "", "redis URL for a shared encode cache (overrides config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}
