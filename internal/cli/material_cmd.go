package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jobtrack/internal/cli/formatter"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/spf13/cobra"
)

func newMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "material",
		Aliases: []string{"mat"},
		Short:   "Manage the materials of a phase",
	}

	cmd.AddCommand(
		newMaterialAddCmd(app),
		newMaterialListCmd(app),
		newMaterialUpdateCmd(app),
		newMaterialDoneCmd(app),
		newMaterialReopenCmd(app),
		newMaterialRemoveCmd(app),
		newMaterialAssignCmd(app),
		newMaterialUnassignCmd(app),
	)

	return cmd
}

func newMaterialAddCmd(app *App) *cobra.Command {
	var jobRef, phaseRef, title, due string
	var businessDays int
	var assignees []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a material order to a phase",
		Long: "Add a material. --due defaults to the job's next business day; " +
			"--business-days sets it that many working days after the job start.",
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

			dueDate := timeline.NextBusinessDay(job.StartDate)
			switch {
			case cmd.Flags().Changed("due"):
				if dueDate, err = parseDateFlag("due", due); err != nil {
					return err
				}
			case cmd.Flags().Changed("business-days"):
				dueDate = timeline.AddBusinessDays(job.StartDate, businessDays)
			}

			m := &domain.Material{
				PhaseID: phase.ID,
				Title:   strings.TrimSpace(title),
				DueDate: dueDate,
			}
			for _, ref := range assignees {
				u, err := resolveUser(ctx, app, ref)
				if err != nil {
					return err
				}
				m.Assignees = append(m.Assignees, u.ID)
			}

			if err := app.Materials.Create(ctx, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added material %s [%s] due %s\n",
				m.Title, shortID(m.ID), formatter.FormatDate(m.DueDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	cmd.Flags().StringVar(&phaseRef, "phase", "", "Phase number, title or ID")
	cmd.Flags().StringVar(&title, "title", "", "Material description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&businessDays, "business-days", 0, "Due this many working days after the job start")
	cmd.Flags().StringSliceVar(&assignees, "assign", nil, "User name or ID to assign (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("due", "business-days")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("phase")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newMaterialListCmd(app *App) *cobra.Command {
	var jobRef, phaseRef, assignee string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List materials of a job, a phase or an assignee",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var materials []*domain.Material

			switch {
			case assignee != "":
				u, err := resolveUser(ctx, app, assignee)
				if err != nil {
					return err
				}
				if materials, err = app.Materials.ListByAssignee(ctx, u.ID); err != nil {
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
					materials, err = app.Materials.ListByPhase(ctx, phase.ID)
					if err != nil {
						return err
					}
				} else if materials, err = app.Materials.ListByJob(ctx, job.ID); err != nil {
					return err
				}
			default:
				return fmt.Errorf("--job or --assignee is required")
			}

			if len(materials) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No materials found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMaterialList(materials, app.now(), app.windowDays()))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	cmd.Flags().StringVar(&phaseRef, "phase", "", "Phase number, title or ID (with --job)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "User name or ID")

	return cmd
}

func newMaterialUpdateCmd(app *App) *cobra.Command {
	var title, due string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a material's description or due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMaterial(ctx, app, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				m.Title = strings.TrimSpace(title)
			}
			if cmd.Flags().Changed("due") {
				if m.DueDate, err = parseDateFlag("due", due); err != nil {
					return err
				}
			}
			if err := app.Materials.Update(ctx, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated material %s [%s] due %s\n",
				m.Title, shortID(m.ID), formatter.FormatDate(m.DueDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Material description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newMaterialDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a material received",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMaterial(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Materials.MarkComplete(ctx, m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed material %s [%s]\n", m.Title, shortID(m.ID))
			return nil
		},
	}
}

func newMaterialReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen ID",
		Short: "Mark a completed material incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMaterial(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Materials.Reopen(ctx, m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened material %s [%s]\n", m.Title, shortID(m.ID))
			return nil
		},
	}
}

func newMaterialRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMaterial(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Materials.Delete(ctx, m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed material %s [%s]\n", m.Title, shortID(m.ID))
			return nil
		},
	}
}

func newMaterialAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign ID USER",
		Short: "Assign a user to a material",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMaterial(ctx, app, args[0])
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Materials.Assign(ctx, m.ID, u.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to material %s\n", u.Name, m.Title)
			return nil
		},
	}
}

func newMaterialUnassignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign ID USER",
		Short: "Remove a user from a material",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMaterial(ctx, app, args[0])
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Materials.Unassign(ctx, m.ID, u.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unassigned %s from material %s\n", u.Name, m.Title)
			return nil
		},
	}
}
