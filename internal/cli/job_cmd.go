package cli

import (
	"fmt"

	"github.com/alexanderramin/jobtrack/internal/cli/formatter"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/spf13/cobra"
)

func newJobCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage jobs and their timelines",
	}

	cmd.AddCommand(
		newJobAddCmd(app),
		newJobListCmd(app),
		newJobShowCmd(app),
		newJobUpdateCmd(app),
		newJobCloseCmd(app),
		newJobReopenCmd(app),
		newJobRemoveCmd(app),
		newJobSpanCmd(app),
		newJobShiftCmd(app),
		newJobExtendCmd(app),
		newJobUrgencyCmd(app),
	)

	return cmd
}

func newJobAddCmd(app *App) *cobra.Command {
	var title, start, location, description string
	var phases []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a job, optionally with its initial phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}
			j := &domain.Job{
				Title:       title,
				StartDate:   startDate,
				Location:    location,
				Description: description,
			}

			created, err := app.Jobs.CreateWithPhases(cmd.Context(), j, phases)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created job %s [%s] with %d phase(s)\n", j.Title, j.ShortID(), len(created))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Job title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&location, "location", "", "Site address")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringArrayVar(&phases, "phase", nil, "Initial phase title (repeatable, in order)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newJobListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := app.Jobs.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jobs found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJobList(jobs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include closed jobs")

	return cmd
}

func newJobShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a job with its phases, tasks and materials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, args[0])
			if err != nil {
				return err
			}
			phases, err := app.Phases.ListByJob(ctx, job.ID)
			if err != nil {
				return err
			}

			data := formatter.JobShowData{Job: job}
			for _, p := range phases {
				tasks, err := app.Tasks.ListByPhase(ctx, p.ID)
				if err != nil {
					return err
				}
				materials, err := app.Materials.ListByPhase(ctx, p.ID)
				if err != nil {
					return err
				}
				notes, err := app.Notes.ListByPhase(ctx, p.ID)
				if err != nil {
					return err
				}
				data.Phases = append(data.Phases, formatter.PhaseDetail{
					Phase:     p,
					Span:      timeline.PhaseSpan(job.StartDate, derefTasks(tasks), derefMaterials(materials)),
					Tasks:     tasks,
					Materials: materials,
					NoteCount: len(notes),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJobShow(data))
			return nil
		},
	}
}

func newJobUpdateCmd(app *App) *cobra.Command {
	var title, location, description string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a job's title, location or description",
		Long:  "Update a job's descriptive fields. Use `job shift` to move its start date.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				job.Title = title
			}
			if cmd.Flags().Changed("location") {
				job.Location = location
			}
			if cmd.Flags().Changed("description") {
				job.Description = description
			}

			if err := app.Jobs.Update(ctx, job); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated job %s [%s]\n", job.Title, job.ShortID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Job title")
	cmd.Flags().StringVar(&location, "location", "", "Site address")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")

	return cmd
}

func newJobCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close ID",
		Short: "Close a job; its schedule can no longer be shifted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Jobs.Close(ctx, job.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Closed job %s [%s]\n", job.Title, job.ShortID())
			return nil
		},
	}
}

func newJobReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen ID",
		Short: "Reopen a closed job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Jobs.Reopen(ctx, job.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened job %s [%s]\n", job.Title, job.ShortID())
			return nil
		},
	}
}

func newJobRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a job and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Delete %s and all its phases, tasks, materials and notes?", job.Title))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.Jobs.Delete(ctx, job.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed job %s [%s]\n", job.Title, job.ShortID())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func derefTasks(in []*domain.Task) []domain.Task {
	out := make([]domain.Task, len(in))
	for i, t := range in {
		out[i] = *t
	}
	return out
}

func derefMaterials(in []*domain.Material) []domain.Material {
	out := make([]domain.Material, len(in))
	for i, m := range in {
		out[i] = *m
	}
	return out
}
