package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/app"
	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/alexanderramin/jobtrack/internal/timeline"
)

type scheduleService struct {
	jobs       repository.JobRepo
	schedules  repository.ScheduleRepo
	uow        db.UnitOfWork
	windowDays int
	observer   UseCaseObserver
}

// NewScheduleService wires the timeline engine to storage. windowDays is the
// default near-term urgency window; values below 1 fall back to seven days.
func NewScheduleService(
	jobs repository.JobRepo,
	schedules repository.ScheduleRepo,
	uow db.UnitOfWork,
	windowDays int,
	observers ...UseCaseObserver,
) ScheduleService {
	if windowDays < 1 {
		windowDays = timeline.DefaultWindowDays
	}
	return &scheduleService{
		jobs:       jobs,
		schedules:  schedules,
		uow:        uow,
		windowDays: windowDays,
		observer:   useCaseObserverOrNoop(observers),
	}
}

var _ ScheduleService = (*scheduleService)(nil)

func (s *scheduleService) Span(ctx context.Context, req app.SpanRequest) (*app.SpanResponse, error) {
	if strings.TrimSpace(req.JobID) == "" {
		return nil, &app.ScheduleError{Code: app.ScheduleErrInvalidRequest, Message: "job ID is required"}
	}
	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	sched, err := s.schedules.LoadJobSchedule(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}

	today := timeline.Day(resolveNow(req.Now))
	resp := &app.SpanResponse{
		JobID:    job.ID,
		JobTitle: job.Title,
		Today:    today,
		Span:     sched.Span(today),
		Phases:   make([]app.PhaseSpanView, 0, len(sched.Phases)),
	}
	for _, p := range sched.Phases {
		sp := p.Span(sched.JobStart)
		resp.Phases = append(resp.Phases, app.PhaseSpanView{
			PhaseID: p.Phase.ID,
			Title:   p.Phase.Title,
			Start:   sp.Start,
			End:     sp.End,
			Empty:   len(p.Tasks) == 0 && len(p.Materials) == 0,
		})
	}
	return resp, nil
}

func (s *scheduleService) ShiftStart(ctx context.Context, req app.ShiftRequest) (*app.CascadeResponse, error) {
	return s.shift(ctx, req, req.DryRun)
}

func (s *scheduleService) PreviewShift(ctx context.Context, req app.ShiftRequest) (*app.CascadeResponse, error) {
	return s.shift(ctx, req, true)
}

func (s *scheduleService) shift(ctx context.Context, req app.ShiftRequest, dryRun bool) (*app.CascadeResponse, error) {
	if strings.TrimSpace(req.JobID) == "" {
		return nil, &app.ScheduleError{Code: app.ScheduleErrInvalidRequest, Message: "job ID is required"}
	}
	if req.NewStart.IsZero() {
		return nil, &app.ScheduleError{Code: app.ScheduleErrInvalidRequest, Message: "new start date is required"}
	}

	fields := map[string]any{"job_id": req.JobID, "new_start": timeline.Day(req.NewStart).Format(timeline.DateLayout)}
	resp, err := s.cascade(ctx, "shift-start", req.JobID, resolveNow(req.Now), dryRun, fields,
		func(before timeline.Schedule) (timeline.Schedule, []string) {
			return timeline.ShiftStartDate(before.JobStart, req.NewStart, before), nil
		})
	if err != nil {
		return nil, err
	}
	resp.OffsetDays = timeline.DaysBetween(resp.SpanBefore.Start, resp.SpanAfter.Start)
	return resp, nil
}

func (s *scheduleService) Extend(ctx context.Context, req app.ExtendRequest) (*app.CascadeResponse, error) {
	return s.extend(ctx, req, req.DryRun)
}

func (s *scheduleService) PreviewExtend(ctx context.Context, req app.ExtendRequest) (*app.CascadeResponse, error) {
	return s.extend(ctx, req, true)
}

func (s *scheduleService) extend(ctx context.Context, req app.ExtendRequest, dryRun bool) (*app.CascadeResponse, error) {
	if strings.TrimSpace(req.JobID) == "" {
		return nil, &app.ScheduleError{Code: app.ScheduleErrInvalidRequest, Message: "job ID is required"}
	}

	fields := map[string]any{"job_id": req.JobID, "extension_days": req.Days}
	resp, err := s.cascade(ctx, "extend", req.JobID, resolveNow(req.Now), dryRun, fields,
		func(before timeline.Schedule) (timeline.Schedule, []string) {
			return timeline.Extend(req.Days, before)
		})
	if err != nil {
		return nil, err
	}
	resp.OffsetDays = req.Days
	return resp, nil
}

type cascadeFunc func(before timeline.Schedule) (after timeline.Schedule, clamped []string)

// cascade loads a job's schedule, applies fn and diffs the result. Unless
// dryRun is set, the load, compute and write all happen in one transaction so
// a failed write leaves no partial shift behind.
func (s *scheduleService) cascade(
	ctx context.Context,
	name, jobID string,
	now time.Time,
	dryRun bool,
	fields map[string]any,
	fn cascadeFunc,
) (resp *app.CascadeResponse, err error) {
	startedAt := time.Now().UTC()
	fields["dry_run"] = dryRun
	defer func() {
		if resp != nil {
			fields["updates"] = len(resp.Updates)
			fields["clamped"] = len(resp.ClampedTaskIDs)
		}
		observe(ctx, s.observer, name, startedAt, err, fields)
	}()

	today := timeline.Day(now)
	run := func(ctx context.Context, jobs repository.JobRepo, schedules repository.ScheduleRepo, apply bool) (*app.CascadeResponse, error) {
		job, err := jobs.GetByID(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job.IsClosed() {
			return nil, &app.ScheduleError{
				Code:    app.ScheduleErrJobClosed,
				Message: fmt.Sprintf("job %s is closed; reopen it before changing its schedule", job.ShortID()),
			}
		}
		before, err := schedules.LoadJobSchedule(ctx, jobID)
		if err != nil {
			return nil, fmt.Errorf("loading schedule: %w", err)
		}
		after, clamped := fn(before)

		out := &app.CascadeResponse{
			JobID:          job.ID,
			JobTitle:       job.Title,
			Updates:        timeline.Diff(before, after),
			ClampedTaskIDs: clamped,
			SpanBefore:     before.Span(today),
			SpanAfter:      after.Span(today),
		}
		if !apply || len(out.Updates) == 0 {
			return out, nil
		}
		if err := schedules.ApplyDateUpdates(ctx, jobID, out.Updates); err != nil {
			return nil, fmt.Errorf("applying %s: %w", name, err)
		}
		out.Applied = true
		return out, nil
	}

	if dryRun {
		return run(ctx, s.jobs, s.schedules, false)
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		resp, txErr = run(ctx, repository.NewSQLiteJobRepo(tx), repository.NewSQLiteScheduleRepo(tx), true)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *scheduleService) Urgency(ctx context.Context, req app.UrgencyRequest) (resp *app.UrgencyResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"job_id": req.JobID}
	defer func() {
		if resp != nil {
			fields["total"] = resp.Buckets.Total()
		}
		observe(ctx, s.observer, "urgency", startedAt, err, fields)
	}()

	if strings.TrimSpace(req.JobID) == "" {
		return nil, &app.ScheduleError{Code: app.ScheduleErrInvalidRequest, Message: "job ID is required"}
	}
	if req.WindowDays < 0 {
		return nil, &app.ScheduleError{Code: app.ScheduleErrInvalidRequest, Message: "window days must be >= 0"}
	}
	window := s.windowDays
	if req.WindowDays > 0 {
		window = req.WindowDays
	}

	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	tasks, materials, err := s.schedules.ListIncompleteItems(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("loading incomplete items: %w", err)
	}

	today := timeline.Day(resolveNow(req.Now))
	resp = &app.UrgencyResponse{
		JobID:      job.ID,
		JobTitle:   job.Title,
		Today:      today,
		WindowDays: window,
		Buckets:    timeline.UrgencyWithin(tasks, materials, today, window),
	}
	if req.IncludeItems {
		resp.Items = timeline.ClassifyItems(tasks, materials, today, window)
	}
	return resp, nil
}
