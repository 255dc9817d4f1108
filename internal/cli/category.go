package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newCategoryCommand creates the category command group.
func newCategoryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
		Long: `Manage task categories.

Categories group tasks for filtering. Deleting a category detaches its
tasks; it never deletes them.`,
	}

	cmd.AddCommand(
		newCategoryAddCommand(c),
		newCategoryListCommand(c),
		newCategoryEditCommand(c),
		newCategoryRmCommand(c),
	)

	return cmd
}

// newCategoryAddCommand creates the category add command.
func newCategoryAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Color string
	}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new category",
		Long: `Create a new category.

Examples:
  taskdeck category add Work
  taskdeck category add Home --color "#00B894"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NewCategoryUseCase().Execute(cmd.Context(), usecase.NewCategoryInput{
				Name:  args[0],
				Color: opts.Color,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created category #%d: %s\n", out.Category.ID, out.Category.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Color, "color", "", "Display color (hex)")

	return cmd
}

// newCategoryListCommand creates the category list command.
func newCategoryListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListCategoriesUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			printCategoryList(cmd.OutOrStdout(), out.Categories)
			return nil
		},
	}
}

// printCategoryList prints categories in TSV format.
func printCategoryList(w io.Writer, categories []usecase.CategoryWithCount) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tTASKS")

	for _, cc := range categories {
		colorStr := "-"
		if cc.Category.Color != "" {
			colorStr = cc.Category.Color
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n",
			cc.Category.ID,
			cc.Category.Name,
			colorStr,
			cc.Count,
		)
	}
}

// newCategoryEditCommand creates the category edit command.
func newCategoryEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name  string
		Color string
		Order int
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a category",
		Long: `Edit a category's name, color, or display order. Only the supplied
flags change.

Examples:
  taskdeck category edit 1 --name Office
  taskdeck category edit 1 --color "#6C5CE7" --order 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := domain.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID %q", args[0])
			}

			input := usecase.EditCategoryInput{CategoryID: categoryID}
			if cmd.Flags().Changed("name") {
				input.Name = &opts.Name
			}
			if cmd.Flags().Changed("color") {
				input.Color = &opts.Color
			}
			if cmd.Flags().Changed("order") {
				input.Order = &opts.Order
			}

			if _, err := c.EditCategoryUseCase().Execute(cmd.Context(), input); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated category #%d\n", categoryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New category name")
	cmd.Flags().StringVar(&opts.Color, "color", "", "New display color")
	cmd.Flags().IntVar(&opts.Order, "order", 0, "New display order")

	return cmd
}

// newCategoryRmCommand creates the category rm command.
func newCategoryRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Long: `Delete a category. Member tasks are detached, not deleted.

Examples:
  taskdeck category rm 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := domain.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID %q", args[0])
			}

			out, err := c.DeleteCategoryUseCase().Execute(cmd.Context(), usecase.DeleteCategoryInput{CategoryID: categoryID})
			if err != nil {
				return err
			}

			if out.DetachedTasks > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted category #%d (%d tasks detached)\n", categoryID, out.DetachedTasks)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted category #%d\n", categoryID)
			}
			return nil
		},
	}
}
