package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
)

// newServeCommand creates the serve command.
func newServeCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Addr string
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server over the configured store.

The server exposes task and category CRUD, stats, and the agenda
grouping under /api, plus raw record endpoints under /api/store for
remote taskdeck clients (store.type = "api").

Examples:
  # Serve on the configured address
  taskdeck serve

  # Serve on a specific address
  taskdeck serve --addr :9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := opts.Addr
			if addr == "" {
				addr = c.AppConfig.API.Addr
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving taskdeck API on %s\n", addr)
			return c.Server().Run(addr)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address (default from config)")

	return cmd
}
