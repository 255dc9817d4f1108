package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate task counts",
		Long: `Show aggregate counts over the whole store: total, active,
completed, overdue, and the completion rate.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TaskStatsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Total:     %d\n", out.Stats.Total)
			_, _ = fmt.Fprintf(w, "Active:    %d\n", out.Stats.Active)
			_, _ = fmt.Fprintf(w, "Completed: %d\n", out.Stats.Completed)
			_, _ = fmt.Fprintf(w, "Overdue:   %d\n", out.Stats.Overdue)
			_, _ = fmt.Fprintf(w, "Progress:  %d%%\n", out.Stats.CompletionRate)
			return nil
		},
	}
}

// newAgendaCommand creates the agenda command.
func newAgendaCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "agenda",
		Short: "Show tasks grouped by due date",
		Long: `Show every task partitioned into due-date groups: overdue, today,
tomorrow, this week, later, and no date. Empty groups are omitted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TaskStatsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printAgendaGroup(w, domain.BucketOverdue.Display(), out.Groups.Overdue)
			printAgendaGroup(w, domain.BucketToday.Display(), out.Groups.Today)
			printAgendaGroup(w, domain.BucketTomorrow.Display(), out.Groups.Tomorrow)
			printAgendaGroup(w, domain.BucketThisWeek.Display(), out.Groups.ThisWeek)
			printAgendaGroup(w, domain.BucketFuture.Display(), out.Groups.Later)
			printAgendaGroup(w, domain.BucketNone.Display(), out.Groups.NoDate)
			return nil
		},
	}
}

// printAgendaGroup prints one non-empty due-date group.
func printAgendaGroup(w io.Writer, label string, tasks []*domain.Task) {
	if len(tasks) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "%s:\n", label)
	for _, task := range tasks {
		marker := " "
		if task.Completed {
			marker = "x"
		}
		dueStr := ""
		if task.DueDate != nil {
			dueStr = "  (" + task.DueDate.Format("2006-01-02") + ")"
		}
		_, _ = fmt.Fprintf(w, "  [%s] #%d %s%s\n", marker, task.ID, task.Title, dueStr)
	}
	_, _ = fmt.Fprintln(w)
}
