package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/jobtrack/internal/app"
	"github.com/alexanderramin/jobtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newJobSpanCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "span ID",
		Short: "Show the job's overall range and current week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, a, args[0])
			if err != nil {
				return err
			}
			now := a.now()
			resp, err := a.Schedule.Span(ctx, app.SpanRequest{JobID: job.ID, Now: &now})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSpan(resp))
			return nil
		},
	}
}

func newJobShiftCmd(a *App) *cobra.Command {
	var start string
	var dryRun, yes bool

	cmd := &cobra.Command{
		Use:   "shift ID",
		Short: "Move the job start date, shifting every phase, task and material with it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, a, args[0])
			if err != nil {
				return err
			}
			newStart, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}
			now := a.now()
			req := app.ShiftRequest{JobID: job.ID, NewStart: newStart, Now: &now}

			return runCascade(cmd, a, "shift", dryRun, yes,
				func(ctx context.Context) (*app.CascadeResponse, error) { return a.Schedule.PreviewShift(ctx, req) },
				func(ctx context.Context) (*app.CascadeResponse, error) { return a.Schedule.ShiftStart(ctx, req) })
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes without writing them")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Apply without asking")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newJobExtendCmd(a *App) *cobra.Command {
	var days int
	var dryRun, yes bool

	cmd := &cobra.Command{
		Use:   "extend ID",
		Short: "Lengthen (or shorten) every task and push material due dates",
		Long: "Add --days to every task's duration and every material's due date. " +
			"Negative values shorten the job; task durations never drop below zero.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, a, args[0])
			if err != nil {
				return err
			}
			now := a.now()
			req := app.ExtendRequest{JobID: job.ID, Days: days, Now: &now}

			return runCascade(cmd, a, "extend", dryRun, yes,
				func(ctx context.Context) (*app.CascadeResponse, error) { return a.Schedule.PreviewExtend(ctx, req) },
				func(ctx context.Context) (*app.CascadeResponse, error) { return a.Schedule.Extend(ctx, req) })
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days to add (negative to shorten)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes without writing them")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Apply without asking")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

type cascadeCall func(ctx context.Context) (*app.CascadeResponse, error)

// runCascade previews the change, asks for confirmation unless --yes, then
// applies it. --dry-run stops after the preview.
func runCascade(cmd *cobra.Command, a *App, verb string, dryRun, yes bool, preview, apply cascadeCall) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if dryRun || !yes {
		resp, err := preview(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatCascade(resp, verb))
		if dryRun || len(resp.Updates) == 0 {
			return nil
		}
		ok, err := confirm(a, yes, fmt.Sprintf("Apply %d update(s) to %s?", len(resp.Updates), resp.JobTitle))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	resp, err := apply(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatCascade(resp, verb))
	return nil
}

func newJobUrgencyCmd(a *App) *cobra.Command {
	var list bool
	var window int

	cmd := &cobra.Command{
		Use:   "urgency ID",
		Short: "Count incomplete tasks and materials by how soon they are due",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, a, args[0])
			if err != nil {
				return err
			}
			now := a.now()
			resp, err := a.Schedule.Urgency(ctx, app.UrgencyRequest{
				JobID:        job.ID,
				Now:          &now,
				WindowDays:   window,
				IncludeItems: list,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUrgency(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List each item with its bucket")
	cmd.Flags().IntVar(&window, "window", 0, "Due-soon window in days (default from config)")

	return cmd
}
