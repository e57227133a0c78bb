package cli

import (
	"time"

	"github.com/alexanderramin/jobtrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Jobs      service.JobService
	Phases    service.PhaseService
	Tasks     service.TaskService
	Materials service.MaterialService
	Notes     service.NoteService
	Users     service.UserService
	Schedule  service.ScheduleService

	// WindowDays is the configured due-soon window used to color dates.
	WindowDays int

	// IsInteractive reports whether prompts can be shown. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Defaults to a huh form.
	Confirm func(title string) (bool, error)
	// Now overrides the clock for span and urgency views.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) windowDays() int {
	if a.WindowDays < 1 {
		return 7
	}
	return a.WindowDays
}

// NewRootCmd creates the top-level "jobtrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "jobtrack",
		Short:         "Construction job, phase and materials tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Read by main before the command tree exists; registered here so cobra
	// accepts it and lists it in help.
	root.PersistentFlags().String("config", "", "Config file (default ~/.jobtrack/config.yaml)")

	root.AddCommand(
		newJobCmd(app),
		newPhaseCmd(app),
		newTaskCmd(app),
		newMaterialCmd(app),
		newNoteCmd(app),
		newUserCmd(app),
	)

	return root
}
