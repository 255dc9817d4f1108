// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupCategory = "category"
	groupView     = "view"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Task management with categories, priorities, and due dates",
		Long: `taskdeck is a task manager for the terminal.

Tasks carry a priority, an optional category, and an optional due date.
The list view always shows incomplete work first, ordered by urgency.

Run without arguments to open the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupCategory, Title: "Categories:"},
		&cobra.Group{ID: groupView, Title: "Views & Server:"},
	)

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	undoneCmd := newUndoneCommand(c)
	undoneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	categoryCmd := newCategoryCommand(c)
	categoryCmd.GroupID = groupCategory

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupView

	agendaCmd := newAgendaCommand(c)
	agendaCmd.GroupID = groupView

	serveCmd := newServeCommand(c)
	serveCmd.GroupID = groupView

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupView

	root.AddCommand(
		initCmd,
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		doneCmd,
		undoneCmd,
		rmCmd,
		categoryCmd,
		statsCmd,
		agendaCmd,
		serveCmd,
		tuiCmd,
	)

	return root
}
