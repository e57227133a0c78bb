package service

import (
	"context"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
	uow   db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.ItemIncomplete
	}
	if !t.StartDate.IsZero() {
		t.StartDate = timeline.Day(t.StartDate)
	}
	if err := t.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteTaskRepo(tx).Create(ctx, t); err != nil {
			return err
		}
		return refreshPhaseStart(ctx, tx, t.PhaseID, now)
	})
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByPhase(ctx context.Context, phaseID string) ([]*domain.Task, error) {
	return s.tasks.ListByPhase(ctx, phaseID)
}

func (s *taskService) ListByJob(ctx context.Context, jobID string) ([]*domain.Task, error) {
	return s.tasks.ListByJob(ctx, jobID)
}

func (s *taskService) ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListByAssignee(ctx, userID)
}

// Update writes title, dates and status, then re-derives the phase start.
func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.StartDate = timeline.Day(t.StartDate)
	if err := t.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	t.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		current, err := txTasks.GetByID(ctx, t.ID)
		if err != nil {
			return err
		}
		t.PhaseID = current.PhaseID
		if err := txTasks.Update(ctx, t); err != nil {
			return err
		}
		return refreshPhaseStart(ctx, tx, t.PhaseID, now)
	})
}

func (s *taskService) MarkComplete(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.MarkComplete(time.Now().UTC())
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Reopen(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := t.Reopen(time.Now().UTC()); err != nil {
		return err
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		t, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txTasks.Delete(ctx, id); err != nil {
			return err
		}
		return refreshPhaseStart(ctx, tx, t.PhaseID, time.Now().UTC())
	})
}

func (s *taskService) Assign(ctx context.Context, taskID, userID string) error {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.Assign(ctx, taskID, userID)
}

func (s *taskService) Unassign(ctx context.Context, taskID, userID string) error {
	return s.tasks.Unassign(ctx, taskID, userID)
}
