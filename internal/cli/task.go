package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Priority    string
		Category    string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new task.

Priority defaults to medium. The category is given by id; due dates
accept RFC3339 or YYYY-MM-DD.

Examples:
  # Create a simple task
  taskdeck add "Write report"

  # Create an urgent task due tomorrow
  taskdeck add "Fix login bug" --priority urgent --due 2026-08-29

  # Create a task in category #2 with a description
  taskdeck add "Plan offsite" --category 2 --body "Book the venue first"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.NewTaskInput{
				Title:       args[0],
				Description: opts.Description,
				Priority:    opts.Priority,
			}

			if opts.Category != "" {
				id, err := domain.ParseID(opts.Category)
				if err != nil {
					return fmt.Errorf("invalid category id %q", opts.Category)
				}
				input.CategoryID = &id
			}

			if opts.Due != "" {
				due := domain.ParseDueDate(opts.Due)
				if due == nil {
					return fmt.Errorf("invalid due date %q (want RFC3339 or YYYY-MM-DD)", opts.Due)
				}
				input.DueDate = due
			}

			out, err := c.NewTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority (low, medium, high, urgent)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category id")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "Due date (RFC3339 or YYYY-MM-DD)")

	return cmd
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search   string
		Category string
		Priority string
		Status   string
		All      bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the task list.

By default completed tasks are hidden; use --all to include them.
The list is sorted with incomplete tasks first, then by priority,
due date, and creation time.

Examples:
  # List open tasks
  taskdeck list

  # Include completed tasks
  taskdeck list --all

  # Filter by category and priority
  taskdeck list --category 1 --priority high

  # Search titles
  taskdeck list --search report

  # Tasks due today
  taskdeck list --status today`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := buildFilter(opts.Search, opts.Category, opts.Priority, opts.Status)
			if err != nil {
				return err
			}
			if !opts.All && filter.Status == "" {
				filter.Status = domain.StatusActive
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks, c.Clock)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d tasks shown (%d%% complete)\n",
				len(out.Tasks), out.Stats.Total, out.Stats.CompletionRate)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "Filter by title substring")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category id")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Filter by priority")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status (completed, active, today, upcoming)")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show all tasks including completed")

	return cmd
}

// buildFilter assembles a display filter from flag text. Identifier
// text is normalized exactly once, here.
func buildFilter(search, category, priority, status string) (domain.Filter, error) {
	var filter domain.Filter
	filter.Search = search

	if category != "" {
		id, err := domain.ParseID(category)
		if err != nil {
			return filter, fmt.Errorf("invalid category id %q", category)
		}
		filter.CategoryID = &id
	}
	if priority != "" {
		p := domain.ParsePriority(priority)
		if !p.IsValid() {
			return filter, fmt.Errorf("invalid priority %q", priority)
		}
		filter.Priority = p
	}
	if status != "" {
		s := domain.Status(status)
		if !s.IsValid() {
			return filter, fmt.Errorf("invalid status %q (want completed, active, today, or upcoming)", status)
		}
		filter.Status = s
	}
	return filter, nil
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []*domain.Task, clock domain.Clock) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\t \tPRI\tDUE\tTITLE")

	now := clock.Now()
	for _, task := range tasks {
		doneStr := " "
		if task.Completed {
			doneStr = "x"
		}

		dueStr := "-"
		if task.DueDate != nil {
			dueStr = task.DueDate.Format("2006-01-02")
			if !task.Completed {
				if bucket := domain.Classify(task.DueDate, now); bucket == domain.BucketOverdue {
					dueStr += " (overdue)"
				}
			}
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			task.ID,
			doneStr,
			task.Priority,
			dueStr,
			task.Title,
		)
	}
}

// newShowCommand creates the show command for displaying task details.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Long: `Display detailed information about a task.

Examples:
  # Show task by ID
  taskdeck show 1

  # Show task using # prefix
  taskdeck show "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := domain.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			printTaskDetails(cmd.OutOrStdout(), out)
			return nil
		},
	}
	return cmd
}

// printTaskDetails prints task details in a formatted output.
func printTaskDetails(w io.Writer, out *usecase.ShowTaskOutput) {
	task := out.Task

	_, _ = fmt.Fprintf(w, "# Task %d: %s\n\n", task.ID, task.Title)

	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", task.Description)
	}

	if task.Completed {
		completedStr := "yes"
		if task.CompletedAt != nil {
			completedStr = task.CompletedAt.Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(w, "Completed: %s\n", completedStr)
	} else {
		_, _ = fmt.Fprintln(w, "Completed: no")
	}

	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority.Display())

	if task.DueDate != nil {
		_, _ = fmt.Fprintf(w, "Due: %s (%s)\n", task.DueDate.Format("2006-01-02"), out.Bucket.Display())
	} else {
		_, _ = fmt.Fprintln(w, "Due: none")
	}

	if out.Category != nil {
		_, _ = fmt.Fprintf(w, "Category: %s (#%d)\n", out.Category.Name, out.Category.ID)
	} else {
		_, _ = fmt.Fprintln(w, "Category: none")
	}

	_, _ = fmt.Fprintf(w, "Created: %s\n", task.CreatedAt.Format(time.RFC3339))
}

// newEditCommand creates the edit command for editing task information.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Category    string
		Due         string
		NoCategory  bool
		NoDue       bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task information",
		Long: `Edit an existing task. Only the supplied flags change; at least one
is required.

Examples:
  # Change the title
  taskdeck edit 1 --title "New title"

  # Raise the priority and set a due date
  taskdeck edit 1 --priority urgent --due 2026-09-01

  # Move to category #3
  taskdeck edit 1 --category 3

  # Detach from its category
  taskdeck edit 1 --no-category

  # Clear the due date
  taskdeck edit 1 --no-due`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := domain.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			input := usecase.EditTaskInput{TaskID: taskID}

			if cmd.Flags().Changed("title") {
				input.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				input.Description = &opts.Description
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = &opts.Priority
			}

			switch {
			case opts.NoCategory:
				var none *int
				input.CategoryID = &none
			case cmd.Flags().Changed("category"):
				id, err := domain.ParseID(opts.Category)
				if err != nil {
					return fmt.Errorf("invalid category id %q", opts.Category)
				}
				ptr := &id
				input.CategoryID = &ptr
			}

			switch {
			case opts.NoDue:
				var none *time.Time
				input.DueDate = &none
			case cmd.Flags().Changed("due"):
				due := domain.ParseDueDate(opts.Due)
				if due == nil {
					return fmt.Errorf("invalid due date %q (want RFC3339 or YYYY-MM-DD)", opts.Due)
				}
				input.DueDate = &due
			}

			if _, err := c.EditTaskUseCase().Execute(cmd.Context(), input); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", taskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New task title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority (low, medium, high, urgent)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "New category id")
	cmd.Flags().BoolVar(&opts.NoCategory, "no-category", false, "Detach from category")
	cmd.MarkFlagsMutuallyExclusive("category", "no-category")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "New due date (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.NoDue, "no-due", false, "Clear the due date")
	cmd.MarkFlagsMutuallyExclusive("due", "no-due")

	return cmd
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed. Completing an already-completed task is a
no-op.

Examples:
  taskdeck done 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := domain.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			out, err := c.CompleteTaskUseCase().Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}
}

// newUndoneCommand creates the undone command for reopening tasks.
func newUndoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "undone <id>",
		Short: "Reopen a completed task",
		Long: `Mark a completed task as active again. The completion timestamp is
cleared.

Examples:
  taskdeck undone 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := domain.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			out, err := c.ReopenTaskUseCase().Execute(cmd.Context(), usecase.ReopenTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reopened task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task from the store.

Examples:
  # Delete task by ID
  taskdeck rm 1

  # Delete task using # prefix
  taskdeck rm "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := domain.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			if err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", taskID)
			return nil
		},
	}
}
