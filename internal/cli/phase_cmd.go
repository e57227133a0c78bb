package cli

import (
	"fmt"

	"github.com/alexanderramin/jobtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage the phases of a job",
	}

	cmd.AddCommand(
		newPhaseAddCmd(app),
		newPhaseListCmd(app),
		newPhaseRenameCmd(app),
	)

	return cmd
}

func newPhaseAddCmd(app *App) *cobra.Command {
	var jobRef, title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a phase to a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, jobRef)
			if err != nil {
				return err
			}
			p, err := app.Phases.Add(ctx, job.ID, title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added phase %d. %s to %s\n", p.OrderIndex+1, p.Title, job.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	cmd.Flags().StringVar(&title, "title", "", "Phase title")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newPhaseListCmd(app *App) *cobra.Command {
	var jobRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a job's phases in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, jobRef)
			if err != nil {
				return err
			}
			phases, err := app.Phases.ListByJob(ctx, job.ID)
			if err != nil {
				return err
			}
			if len(phases) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No phases found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPhaseList(phases))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

func newPhaseRenameCmd(app *App) *cobra.Command {
	var jobRef, title string

	cmd := &cobra.Command{
		Use:   "rename PHASE",
		Short: "Rename a phase (by number, title or ID)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, jobRef)
			if err != nil {
				return err
			}
			p, err := resolvePhase(ctx, app, job.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Phases.Rename(ctx, p.ID, title); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed phase %s to %s\n", p.Title, title)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
