package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jobtrack/internal/cli/formatter"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the tasks of a phase",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskReopenCmd(app),
		newTaskRemoveCmd(app),
		newTaskAssignCmd(app),
		newTaskUnassignCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var jobRef, phaseRef, title, start string
	var duration, businessDays int
	var assignees []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a phase",
		Long: "Add a task. --start defaults to the job's next business day. " +
			"--business-days sets the duration to cover that many working days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, jobRef)
			if err != nil {
				return err
			}
			phase, err := resolvePhase(ctx, app, job.ID, phaseRef)
			if err != nil {
				return err
			}

			startDate := timeline.NextBusinessDay(job.StartDate)
			if cmd.Flags().Changed("start") {
				if startDate, err = parseDateFlag("start", start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("business-days") {
				duration = businessDuration(startDate, businessDays)
			}

			t := &domain.Task{
				PhaseID:   phase.ID,
				Title:     strings.TrimSpace(title),
				StartDate: startDate,
				Duration:  duration,
			}
			for _, ref := range assignees {
				u, err := resolveUser(ctx, app, ref)
				if err != nil {
					return err
				}
				t.Assignees = append(t.Assignees, u.ID)
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s [%s] %s → %s\n",
				t.Title, shortID(t.ID), formatter.FormatDate(t.StartDate), formatter.FormatDate(t.EndDate()))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	cmd.Flags().StringVar(&phaseRef, "phase", "", "Phase number, title or ID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "duration", 1, "Duration in calendar days")
	cmd.Flags().IntVar(&businessDays, "business-days", 0, "Duration in working days")
	cmd.Flags().StringSliceVar(&assignees, "assign", nil, "User name or ID to assign (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("duration", "business-days")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("phase")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var jobRef, phaseRef, assignee string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks of a job, a phase or an assignee",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var tasks []*domain.Task

			switch {
			case assignee != "":
				u, err := resolveUser(ctx, app, assignee)
				if err != nil {
					return err
				}
				if tasks, err = app.Tasks.ListByAssignee(ctx, u.ID); err != nil {
					return err
				}
			case jobRef != "":
				job, err := resolveJob(ctx, app, jobRef)
				if err != nil {
					return err
				}
				if phaseRef != "" {
					phase, err := resolvePhase(ctx, app, job.ID, phaseRef)
					if err != nil {
						return err
					}
					tasks, err = app.Tasks.ListByPhase(ctx, phase.ID)
					if err != nil {
						return err
					}
				} else if tasks, err = app.Tasks.ListByJob(ctx, job.ID); err != nil {
					return err
				}
			default:
				return fmt.Errorf("--job or --assignee is required")
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, app.now(), app.windowDays()))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	cmd.Flags().StringVar(&phaseRef, "phase", "", "Phase number, title or ID (with --job)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "User name or ID")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, start string
	var duration, businessDays int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task's title, start or duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				t.Title = strings.TrimSpace(title)
			}
			if cmd.Flags().Changed("start") {
				if t.StartDate, err = parseDateFlag("start", start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("duration") {
				t.Duration = duration
			}
			if cmd.Flags().Changed("business-days") {
				t.Duration = businessDuration(t.StartDate, businessDays)
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s [%s] %s → %s\n",
				t.Title, shortID(t.ID), formatter.FormatDate(t.StartDate), formatter.FormatDate(t.EndDate()))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in calendar days")
	cmd.Flags().IntVar(&businessDays, "business-days", 0, "Duration in working days")
	cmd.MarkFlagsMutuallyExclusive("duration", "business-days")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.MarkComplete(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed task %s [%s]\n", t.Title, shortID(t.ID))
			return nil
		},
	}
}

func newTaskReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen ID",
		Short: "Mark a completed task incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Reopen(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened task %s [%s]\n", t.Title, shortID(t.ID))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s [%s]\n", t.Title, shortID(t.ID))
			return nil
		},
	}
}

func newTaskAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign ID USER",
		Short: "Assign a user to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Tasks.Assign(ctx, t.ID, u.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to task %s\n", u.Name, t.Title)
			return nil
		},
	}
}

func newTaskUnassignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign ID USER",
		Short: "Remove a user from a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Tasks.Unassign(ctx, t.ID, u.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unassigned %s from task %s\n", u.Name, t.Title)
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
