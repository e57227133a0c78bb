package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/jobtrack/internal/cli"
	"github.com/alexanderramin/jobtrack/internal/cli/formatter"
	"github.com/alexanderramin/jobtrack/internal/config"
	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/alexanderramin/jobtrack/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(configPath(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	formatter.SetColorMode(cfg.Display.Color)

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	jobRepo := repository.NewSQLiteJobRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	materialRepo := repository.NewSQLiteMaterialRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Log.UseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Jobs:       service.NewJobService(jobRepo, uow),
		Phases:     service.NewPhaseService(phaseRepo, uow),
		Tasks:      service.NewTaskService(taskRepo, uow),
		Materials:  service.NewMaterialService(materialRepo, uow),
		Notes:      service.NewNoteService(noteRepo),
		Users:      service.NewUserService(userRepo),
		Schedule:   service.NewScheduleService(jobRepo, scheduleRepo, uow, cfg.Urgency.WindowDays, observer),
		WindowDays: cfg.Urgency.WindowDays,
	}

	// Prompts only when stdin is a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// configPath pulls --config out of args before the command tree is built,
// since the services it configures are needed to build that tree.
func configPath(args []string) string {
	fs := pflag.NewFlagSet("jobtrack", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}
