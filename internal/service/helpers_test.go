package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/alexanderramin/jobtrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type repos struct {
	db        *sql.DB
	jobs      *repository.SQLiteJobRepo
	phases    *repository.SQLitePhaseRepo
	tasks     *repository.SQLiteTaskRepo
	materials *repository.SQLiteMaterialRepo
	notes     *repository.SQLiteNoteRepo
	users     *repository.SQLiteUserRepo
	schedules *repository.SQLiteScheduleRepo
}

func newRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		db:        database,
		jobs:      repository.NewSQLiteJobRepo(database),
		phases:    repository.NewSQLitePhaseRepo(database),
		tasks:     repository.NewSQLiteTaskRepo(database),
		materials: repository.NewSQLiteMaterialRepo(database),
		notes:     repository.NewSQLiteNoteRepo(database),
		users:     repository.NewSQLiteUserRepo(database),
		schedules: repository.NewSQLiteScheduleRepo(database),
	}
}

// seedFramingJob stores a job starting 2024-01-01 with one phase holding a
// five-day task and a material due 2024-01-03.
func seedFramingJob(t *testing.T, r repos) (*domain.Job, *domain.Phase, *domain.Task, *domain.Material) {
	t.Helper()
	ctx := context.Background()
	job := testutil.NewTestJob("Framing job", testutil.WithJobStart(date(2024, 1, 1)))
	require.NoError(t, r.jobs.Create(ctx, job))
	phase := testutil.NewTestPhase(job.ID, "Framing", testutil.WithPhaseStart(date(2024, 1, 1)))
	require.NoError(t, r.phases.Create(ctx, phase))
	task := testutil.NewTestTask(phase.ID, "Walls", testutil.WithTaskStart(date(2024, 1, 1)), testutil.WithDuration(5))
	require.NoError(t, r.tasks.Create(ctx, task))
	mat := testutil.NewTestMaterial(phase.ID, "Studs", testutil.WithDueDate(date(2024, 1, 3)))
	require.NoError(t, r.materials.Create(ctx, mat))
	return job, phase, task, mat
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
