package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/jobtrack/internal/app"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/alexanderramin/jobtrack/internal/testutil"
	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleService(r repos, observers ...UseCaseObserver) ScheduleService {
	return NewScheduleService(r.jobs, r.schedules, testutil.NewTestUoW(r.db), 7, observers...)
}

func TestShiftStart_PersistsCascade(t *testing.T) {
	r := newRepos(t)
	job, phase, task, mat := seedFramingJob(t, r)
	ctx := context.Background()
	svc := newScheduleService(r)

	resp, err := svc.ShiftStart(ctx, app.ShiftRequest{JobID: job.ID, NewStart: date(2024, 1, 8)})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Equal(t, 7, resp.OffsetDays)
	assert.Len(t, resp.Updates, 4) // job, phase, task, material

	storedTask, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 8), storedTask.StartDate)
	assert.Equal(t, date(2024, 1, 13), storedTask.EndDate())

	storedMat, err := r.materials.GetByID(ctx, mat.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 10), storedMat.DueDate)

	storedPhase, err := r.phases.GetByID(ctx, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 8), storedPhase.StartDate)

	storedJob, err := r.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 8), storedJob.StartDate)
}

func TestShiftStart_ZeroOffsetWritesNothing(t *testing.T) {
	r := newRepos(t)
	job, _, _, _ := seedFramingJob(t, r)
	svc := newScheduleService(r)

	resp, err := svc.ShiftStart(context.Background(), app.ShiftRequest{JobID: job.ID, NewStart: date(2024, 1, 1)})
	require.NoError(t, err)
	assert.Empty(t, resp.Updates)
	assert.False(t, resp.Applied)
	assert.Equal(t, 0, resp.OffsetDays)
}

func TestShiftStart_DryRunLeavesStoreUntouched(t *testing.T) {
	r := newRepos(t)
	job, _, task, _ := seedFramingJob(t, r)
	ctx := context.Background()
	svc := newScheduleService(r)

	resp, err := svc.PreviewShift(ctx, app.ShiftRequest{JobID: job.ID, NewStart: date(2023, 12, 25)})
	require.NoError(t, err)
	assert.False(t, resp.Applied)
	assert.Equal(t, -7, resp.OffsetDays)
	assert.NotEmpty(t, resp.Updates)
	assert.Equal(t, date(2023, 12, 25), resp.SpanAfter.Start)

	stored, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), stored.StartDate)
}

func TestShiftStart_RejectsClosedJob(t *testing.T) {
	r := newRepos(t)
	job, _, _, _ := seedFramingJob(t, r)
	ctx := context.Background()
	require.NoError(t, NewJobService(r.jobs, testutil.NewTestUoW(r.db)).Close(ctx, job.ID))

	_, err := newScheduleService(r).ShiftStart(ctx, app.ShiftRequest{JobID: job.ID, NewStart: date(2024, 2, 1)})
	var se *app.ScheduleError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, app.ScheduleErrJobClosed, se.Code)
}

func TestShiftStart_InvalidRequest(t *testing.T) {
	r := newRepos(t)
	svc := newScheduleService(r)

	_, err := svc.ShiftStart(context.Background(), app.ShiftRequest{JobID: "x"})
	var se *app.ScheduleError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, app.ScheduleErrInvalidRequest, se.Code)

	_, err = svc.ShiftStart(context.Background(), app.ShiftRequest{NewStart: date(2024, 1, 1)})
	require.True(t, errors.As(err, &se))
}

func TestShiftStart_MissingJob(t *testing.T) {
	r := newRepos(t)
	_, err := newScheduleService(r).ShiftStart(context.Background(),
		app.ShiftRequest{JobID: "missing", NewStart: date(2024, 1, 1)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestShiftStart_RollbackOnWriteFailure(t *testing.T) {
	r := newRepos(t)
	job, phase, task, _ := seedFramingJob(t, r)
	ctx := context.Background()

	// Exec #1 = job start, #2 = phase start; fail mid-batch.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     r.db,
		FailOn: 2,
		Err:    fmt.Errorf("injected phase write failure"),
	}
	rec := &recordingObserver{}
	svc := NewScheduleService(r.jobs, r.schedules, failUoW, 7, rec)

	_, err := svc.ShiftStart(ctx, app.ShiftRequest{JobID: job.ID, NewStart: date(2024, 1, 8)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected phase write failure")

	storedJob, err := r.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), storedJob.StartDate, "job start should be unchanged after rollback")
	storedPhase, err := r.phases.GetByID(ctx, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), storedPhase.StartDate)
	storedTask, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), storedTask.StartDate)

	ev := rec.last()
	assert.Equal(t, "shift-start", ev.Name)
	assert.False(t, ev.Success)
	assert.Error(t, ev.Err)
}

func TestShiftStart_ObserverFields(t *testing.T) {
	r := newRepos(t)
	job, _, _, _ := seedFramingJob(t, r)
	rec := &recordingObserver{}

	_, err := newScheduleService(r, rec).ShiftStart(context.Background(),
		app.ShiftRequest{JobID: job.ID, NewStart: date(2024, 1, 8)})
	require.NoError(t, err)

	ev := rec.last()
	assert.Equal(t, "shift-start", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, job.ID, ev.Fields["job_id"])
	assert.Equal(t, 4, ev.Fields["updates"])
	assert.Equal(t, false, ev.Fields["dry_run"])
}

func TestExtend_ShrinksAndClamps(t *testing.T) {
	r := newRepos(t)
	job, phase, task, mat := seedFramingJob(t, r)
	ctx := context.Background()
	short := testutil.NewTestTask(phase.ID, "Snap lines", testutil.WithTaskStart(date(2024, 1, 2)), testutil.WithDuration(1))
	require.NoError(t, r.tasks.Create(ctx, short))

	resp, err := newScheduleService(r).Extend(ctx, app.ExtendRequest{JobID: job.ID, Days: -3})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Equal(t, -3, resp.OffsetDays)
	assert.Equal(t, []string{short.ID}, resp.ClampedTaskIDs)

	storedTask, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, storedTask.Duration)
	assert.Equal(t, date(2024, 1, 3), storedTask.EndDate())

	storedShort, err := r.tasks.GetByID(ctx, short.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, storedShort.Duration)

	// Material moved three days earlier, which also pulls the phase start back.
	storedMat, err := r.materials.GetByID(ctx, mat.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2023, 12, 31), storedMat.DueDate)
	storedPhase, err := r.phases.GetByID(ctx, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2023, 12, 31), storedPhase.StartDate)
}

func TestExtend_DryRun(t *testing.T) {
	r := newRepos(t)
	job, _, task, _ := seedFramingJob(t, r)
	ctx := context.Background()

	resp, err := newScheduleService(r).PreviewExtend(ctx, app.ExtendRequest{JobID: job.ID, Days: 4})
	require.NoError(t, err)
	assert.False(t, resp.Applied)
	assert.Equal(t, date(2024, 1, 10), resp.SpanAfter.End)

	stored, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Duration)
}

func TestShiftThenExtendCommutes(t *testing.T) {
	ctx := context.Background()

	a := newRepos(t)
	jobA, _, _, _ := seedFramingJob(t, a)
	svcA := newScheduleService(a)
	_, err := svcA.ShiftStart(ctx, app.ShiftRequest{JobID: jobA.ID, NewStart: date(2024, 2, 5)})
	require.NoError(t, err)
	_, err = svcA.Extend(ctx, app.ExtendRequest{JobID: jobA.ID, Days: 2})
	require.NoError(t, err)

	b := newRepos(t)
	jobB, _, _, _ := seedFramingJob(t, b)
	svcB := newScheduleService(b)
	_, err = svcB.Extend(ctx, app.ExtendRequest{JobID: jobB.ID, Days: 2})
	require.NoError(t, err)
	_, err = svcB.ShiftStart(ctx, app.ShiftRequest{JobID: jobB.ID, NewStart: date(2024, 2, 5)})
	require.NoError(t, err)

	sa, err := a.schedules.LoadJobSchedule(ctx, jobA.ID)
	require.NoError(t, err)
	sb, err := b.schedules.LoadJobSchedule(ctx, jobB.ID)
	require.NoError(t, err)

	assert.Equal(t, sa.JobStart, sb.JobStart)
	assert.Equal(t, sa.Phases[0].Phase.StartDate, sb.Phases[0].Phase.StartDate)
	assert.Equal(t, sa.Phases[0].Tasks[0].StartDate, sb.Phases[0].Tasks[0].StartDate)
	assert.Equal(t, sa.Phases[0].Tasks[0].Duration, sb.Phases[0].Tasks[0].Duration)
	assert.Equal(t, sa.Phases[0].Materials[0].DueDate, sb.Phases[0].Materials[0].DueDate)
}

func TestSpan_WeeksAndOverrun(t *testing.T) {
	r := newRepos(t)
	job, _, _, _ := seedFramingJob(t, r)
	ctx := context.Background()
	svc := newScheduleService(r)

	now := date(2024, 1, 4)
	resp, err := svc.Span(ctx, app.SpanRequest{JobID: job.ID, Now: &now})
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), resp.Span.Start)
	assert.Equal(t, date(2024, 1, 6), resp.Span.End)
	assert.Equal(t, 2, resp.Span.TotalWeeks)
	assert.Equal(t, 2, resp.Span.CurrentWeek)
	assert.False(t, resp.Span.Overrun())
	require.Len(t, resp.Phases, 1)
	assert.False(t, resp.Phases[0].Empty)

	late := date(2024, 3, 1)
	resp, err = svc.Span(ctx, app.SpanRequest{JobID: job.ID, Now: &late})
	require.NoError(t, err)
	assert.Greater(t, resp.Span.CurrentWeek, resp.Span.TotalWeeks)
	assert.True(t, resp.Span.Overrun())
}

func TestSpan_EmptyPhaseFallsBackToJobStart(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	jobs := NewJobService(r.jobs, testutil.NewTestUoW(r.db))
	job := &domain.Job{Title: "Shed", StartDate: date(2024, 3, 1)}
	_, err := jobs.CreateWithPhases(ctx, job, []string{"Site prep"})
	require.NoError(t, err)

	resp, err := newScheduleService(r).Span(ctx, app.SpanRequest{JobID: job.ID})
	require.NoError(t, err)
	require.Len(t, resp.Phases, 1)
	assert.True(t, resp.Phases[0].Empty)
	assert.Equal(t, date(2024, 3, 1), resp.Phases[0].Start)
	assert.Equal(t, date(2024, 3, 1), resp.Phases[0].End)
	assert.Equal(t, 1, resp.Span.TotalWeeks)
}

func TestUrgency_Buckets(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	job, phase, _, mat := seedFramingJob(t, r)

	// today = 2024-01-04: material due 01-03 is overdue, task ending 01-06 is soon.
	far := testutil.NewTestMaterial(phase.ID, "Trim", testutil.WithDueDate(date(2024, 2, 1)))
	require.NoError(t, r.materials.Create(ctx, far))
	done := testutil.NewTestMaterial(phase.ID, "Nails", testutil.WithDueDate(date(2024, 1, 2)),
		testutil.WithMaterialStatus(domain.ItemComplete))
	require.NoError(t, r.materials.Create(ctx, done))

	now := date(2024, 1, 4)
	resp, err := newScheduleService(r).Urgency(ctx, app.UrgencyRequest{JobID: job.ID, Now: &now, IncludeItems: true})
	require.NoError(t, err)
	assert.Equal(t, timeline.Buckets{Overdue: 1, NextSevenDays: 1, SevenDaysPlus: 1}, resp.Buckets)
	assert.Equal(t, 7, resp.WindowDays)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, mat.ID, resp.Items[0].ID)
	assert.Equal(t, timeline.BucketOverdue, resp.Items[0].Bucket)
}

func TestUrgency_WindowOverride(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	job, phase, _, _ := seedFramingJob(t, r)
	require.NoError(t, r.materials.Create(ctx,
		testutil.NewTestMaterial(phase.ID, "Trim", testutil.WithDueDate(date(2024, 1, 20)))))

	now := date(2024, 1, 4)
	resp, err := newScheduleService(r).Urgency(ctx, app.UrgencyRequest{JobID: job.ID, Now: &now, WindowDays: 30})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.WindowDays)
	assert.Equal(t, 0, resp.Buckets.SevenDaysPlus)
	assert.Equal(t, 2, resp.Buckets.NextSevenDays)
	assert.Nil(t, resp.Items)
}

func TestUrgency_NothingOpen(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	job := testutil.NewTestJob("Empty")
	require.NoError(t, r.jobs.Create(ctx, job))

	resp, err := newScheduleService(r).Urgency(ctx, app.UrgencyRequest{JobID: job.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Buckets.Total())
	_, _, _, ok := resp.Buckets.Fractions()
	assert.False(t, ok)
}

func TestNewScheduleService_DefaultWindow(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	job := testutil.NewTestJob("Empty")
	require.NoError(t, r.jobs.Create(ctx, job))

	svc := NewScheduleService(r.jobs, r.schedules, testutil.NewTestUoW(r.db), 0)
	resp, err := svc.Urgency(ctx, app.UrgencyRequest{JobID: job.ID})
	require.NoError(t, err)
	assert.Equal(t, timeline.DefaultWindowDays, resp.WindowDays)
}
