package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the task store",
		Long: `Initialize the task store in the current directory.

For the JSON backing this creates the .taskdeck data directory and an
empty tasks.json. Running init on an already-initialized store is a
no-op.

Examples:
  taskdeck init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.StoreInitializer.IsInitialized() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Store already initialized")
				return nil
			}
			if err := c.StoreInitializer.Initialize(); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Initialized task store")
			return nil
		},
	}
}

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive TUI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
