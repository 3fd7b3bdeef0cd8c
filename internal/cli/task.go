package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task in the current user's collection.

The task starts with status 'pending'. A task whose title and
description both match an existing task (case-insensitively, ignoring
surrounding whitespace) is rejected as a duplicate.

Examples:
  taskdeck new --title "Buy milk" --body "2% from the corner store"
  taskdeck --user alice new --title "Write report" --body "Q3 numbers"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.CreateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		Page   int
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the current user's tasks, most recently created first,
five per page.

Examples:
  taskdeck list
  taskdeck list --status in-progress
  taskdeck list --page 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Status: opts.Status,
				Page:   opts.Page,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			page := out.Page
			if page.Total == 0 {
				_, _ = fmt.Fprintln(w, "No tasks found")
				return nil
			}
			if page.Reset {
				_, _ = fmt.Fprintf(w, "Page %d is out of range, showing page 1\n\n", opts.Page)
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tCREATED\tTITLE")
			for _, t := range page.Tasks {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Status.Display(), t.CreatedAt, t.Title)
			}
			_ = tw.Flush()

			_, _ = fmt.Fprintf(w, "\nPage %d of %d (%d task(s))\n", page.Page, page.TotalPages, page.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", domain.StatusFilterAll, "Filter by status (pending, in-progress, completed, all)")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "Page to show")

	return cmd
}

// newShowCommand creates the show command for displaying task details.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{ID: args[0]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			t := out.Task
			_, _ = fmt.Fprintf(w, "ID:          %s\n", t.ID)
			_, _ = fmt.Fprintf(w, "Title:       %s\n", t.Title)
			_, _ = fmt.Fprintf(w, "Status:      %s\n", t.Status.Display())
			_, _ = fmt.Fprintf(w, "Created:     %s\n", t.CreatedAt)
			_, _ = fmt.Fprintf(w, "Description: %s\n", t.Description)
			return nil
		},
	}
}

// newEditCommand creates the edit command for updating tasks.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Status      string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task's title, description, or status. Only the fields
given as flags change; everything else keeps its value.

Examples:
  taskdeck edit a1b2 --title "New title"
  taskdeck edit a1b2 --body "Updated description" --status in-progress`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.EditTaskInput{ID: args[0]}
			if cmd.Flags().Changed("title") {
				in.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				in.Description = &opts.Description
			}
			if cmd.Flags().Changed("status") {
				status := domain.Status(opts.Status)
				in.Status = &status
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status (pending, in-progress, completed)")

	return cmd
}

// newStatusCommand creates the status command for status transitions.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a task's status",
		Long: `Move a task to another status. Any status can transition to any
other; there is no required order between them.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.SetStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetStatusInput{
				ID:     args[0],
				Status: domain.Status(args[1]),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", out.Task.ID, out.Task.Status.Display())
			return nil
		},
	}
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	var now bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task. The task disappears from listings immediately and
the delete commits shortly after; once issued it cannot be cancelled.
Use --now to commit before returning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{ID: args[0], Now: now})
			if err != nil {
				return err
			}
			// The command must not exit before the delete commits.
			<-out.Done

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&now, "now", false, "Commit the delete immediately, skipping the removal delay")

	return cmd
}
