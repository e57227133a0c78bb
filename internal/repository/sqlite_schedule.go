package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/timeline"
)

// SQLiteScheduleRepo implements ScheduleRepo on top of the entity repos
// sharing the same connection or transaction.
type SQLiteScheduleRepo struct {
	db        db.DBTX
	jobs      *SQLiteJobRepo
	phases    *SQLitePhaseRepo
	tasks     *SQLiteTaskRepo
	materials *SQLiteMaterialRepo
}

func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{
		db:        conn,
		jobs:      NewSQLiteJobRepo(conn),
		phases:    NewSQLitePhaseRepo(conn),
		tasks:     NewSQLiteTaskRepo(conn),
		materials: NewSQLiteMaterialRepo(conn),
	}
}

func (r *SQLiteScheduleRepo) LoadJobSchedule(ctx context.Context, jobID string) (timeline.Schedule, error) {
	job, err := r.jobs.GetByID(ctx, jobID)
	if err != nil {
		return timeline.Schedule{}, err
	}
	phases, err := r.phases.ListByJob(ctx, jobID)
	if err != nil {
		return timeline.Schedule{}, err
	}
	tasks, err := r.tasks.ListByJob(ctx, jobID)
	if err != nil {
		return timeline.Schedule{}, err
	}
	materials, err := r.materials.ListByJob(ctx, jobID)
	if err != nil {
		return timeline.Schedule{}, err
	}

	s := timeline.Schedule{JobID: job.ID, JobStart: job.StartDate}
	index := make(map[string]int, len(phases))
	for i, p := range phases {
		index[p.ID] = i
		s.Phases = append(s.Phases, timeline.PhaseSchedule{Phase: *p})
	}
	for _, t := range tasks {
		i := index[t.PhaseID]
		s.Phases[i].Tasks = append(s.Phases[i].Tasks, *t)
	}
	for _, m := range materials {
		i := index[m.PhaseID]
		s.Phases[i].Materials = append(s.Phases[i].Materials, *m)
	}
	return s, nil
}

// ApplyDateUpdates writes each update, scoped to jobID. An update naming an
// entity outside the job fails with ErrNotFound.
func (r *SQLiteScheduleRepo) ApplyDateUpdates(ctx context.Context, jobID string, updates []timeline.DateUpdate) error {
	now := nowUTC()
	for _, u := range updates {
		if err := r.applyOne(ctx, jobID, u, now); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) applyOne(ctx context.Context, jobID string, u timeline.DateUpdate, now string) error {
	newDate := u.NewDate.Format(dateLayout)
	var query string
	var args []any

	switch u.Kind {
	case timeline.UpdateJob:
		if u.ID != jobID {
			return fmt.Errorf("job update for %s in batch for %s", u.ID, jobID)
		}
		query = `UPDATE jobs SET start_date = ?, updated_at = ? WHERE id = ?`
		args = []any{newDate, now, jobID}
	case timeline.UpdatePhase:
		query = `UPDATE phases SET start_date = ?, updated_at = ? WHERE id = ? AND job_id = ?`
		args = []any{newDate, now, u.ID, jobID}
	case timeline.UpdateTask:
		query = `UPDATE tasks SET start_date = ?, duration = ?, updated_at = ?
			WHERE id = ? AND phase_id IN (SELECT id FROM phases WHERE job_id = ?)`
		args = []any{newDate, u.NewDuration, now, u.ID, jobID}
	case timeline.UpdateMaterial:
		query = `UPDATE materials SET due_date = ?, updated_at = ?
			WHERE id = ? AND phase_id IN (SELECT id FROM phases WHERE job_id = ?)`
		args = []any{newDate, now, u.ID, jobID}
	default:
		return fmt.Errorf("unknown update kind %q", u.Kind)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("applying %s update %s: %w", u.Kind, u.ID, err)
	}
	return expectOneRow(res, string(u.Kind)+" "+u.ID)
}

// ListIncompleteItems returns the job's tasks and materials still open, the
// input to urgency bucketing.
func (r *SQLiteScheduleRepo) ListIncompleteItems(ctx context.Context, jobID string) ([]domain.Task, []domain.Material, error) {
	if _, err := r.jobs.GetByID(ctx, jobID); err != nil {
		return nil, nil, err
	}
	tasks, err := r.tasks.listIncompleteByJob(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	materials, err := r.materials.listIncompleteByJob(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	outTasks := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		outTasks[i] = *t
	}
	outMaterials := make([]domain.Material, len(materials))
	for i, m := range materials {
		outMaterials[i] = *m
	}
	return outTasks, outMaterials, nil
}
