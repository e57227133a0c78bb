package service

import (
	"context"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/alexanderramin/jobtrack/internal/timeline"
)

// refreshPhaseStart recomputes a phase's cached start date from its children
// after a task or material write. It must run in the same transaction as the
// write so readers never see a phase starting after one of its children.
func refreshPhaseStart(ctx context.Context, tx db.DBTX, phaseID string, now time.Time) error {
	phases := repository.NewSQLitePhaseRepo(tx)
	phase, err := phases.GetByID(ctx, phaseID)
	if err != nil {
		return err
	}
	job, err := repository.NewSQLiteJobRepo(tx).GetByID(ctx, phase.JobID)
	if err != nil {
		return err
	}
	tasks, err := repository.NewSQLiteTaskRepo(tx).ListByPhase(ctx, phaseID)
	if err != nil {
		return err
	}
	materials, err := repository.NewSQLiteMaterialRepo(tx).ListByPhase(ctx, phaseID)
	if err != nil {
		return err
	}

	span := timeline.PhaseSpan(job.StartDate, derefTasks(tasks), derefMaterials(materials))
	if span.Start.Equal(timeline.Day(phase.StartDate)) {
		return nil
	}
	phase.StartDate = span.Start
	phase.UpdatedAt = now
	return phases.Update(ctx, phase)
}

func derefTasks(in []*domain.Task) []domain.Task {
	out := make([]domain.Task, len(in))
	for i, t := range in {
		out[i] = *t
	}
	return out
}

func derefMaterials(in []*domain.Material) []domain.Material {
	out := make([]domain.Material, len(in))
	for i, m := range in {
		out[i] = *m
	}
	return out
}

// resolveNow returns *override or the current UTC time.
func resolveNow(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return time.Now().UTC()
}
