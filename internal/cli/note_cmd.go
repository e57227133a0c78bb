package cli

import (
	"fmt"

	"github.com/alexanderramin/jobtrack/internal/cli/formatter"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Add and read phase notes",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var jobRef, phaseRef, author string

	cmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Add a note to a phase",
		Args:  cobra.ExactArgs(1),
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

			n := &domain.Note{PhaseID: phase.ID, Content: args[0]}
			if author != "" {
				u, err := resolveUser(ctx, app, author)
				if err != nil {
					return err
				}
				n.AuthorID = u.ID
			}
			if err := app.Notes.Add(ctx, n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note to %s\n", phase.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	cmd.Flags().StringVar(&phaseRef, "phase", "", "Phase number, title or ID")
	cmd.Flags().StringVar(&author, "author", "", "User name or ID")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("phase")

	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	var jobRef, phaseRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes of a job or one of its phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			job, err := resolveJob(ctx, app, jobRef)
			if err != nil {
				return err
			}

			var notes []*domain.Note
			if phaseRef != "" {
				phase, err := resolvePhase(ctx, app, job.ID, phaseRef)
				if err != nil {
					return err
				}
				notes, err = app.Notes.ListByPhase(ctx, phase.ID)
				if err != nil {
					return err
				}
			} else if notes, err = app.Notes.ListByJob(ctx, job.ID); err != nil {
				return err
			}

			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes found.")
				return nil
			}

			users, err := app.Users.List(ctx)
			if err != nil {
				return err
			}
			authors := make(map[string]string, len(users))
			for _, u := range users {
				authors[u.ID] = u.Name
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNoteList(notes, authors))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobRef, "job", "", "Job ID or prefix")
	cmd.Flags().StringVar(&phaseRef, "phase", "", "Phase number, title or ID")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}
