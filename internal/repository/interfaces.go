package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/timeline"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type JobRepo interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListByIDPrefix(ctx context.Context, prefix string) ([]*domain.Job, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Job, error)
	Update(ctx context.Context, j *domain.Job) error
	Delete(ctx context.Context, id string) error
}

type PhaseRepo interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Phase, error)
	NextOrderIndex(ctx context.Context, jobID string) (int, error)
	Update(ctx context.Context, p *domain.Phase) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.Task, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, taskID, userID string) error
	Unassign(ctx context.Context, taskID, userID string) error
}

type MaterialRepo interface {
	Create(ctx context.Context, m *domain.Material) error
	GetByID(ctx context.Context, id string) (*domain.Material, error)
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.Material, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Material, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Material, error)
	Update(ctx context.Context, m *domain.Material) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, materialID, userID string) error
	Unassign(ctx context.Context, materialID, userID string) error
}

// NoteRepo is append-only.
type NoteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.Note, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Note, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleRepo reads and writes a job's dated entities as one unit.
type ScheduleRepo interface {
	// LoadJobSchedule returns a consistent snapshot of the job, its phases in
	// order, and every task and material under them.
	LoadJobSchedule(ctx context.Context, jobID string) (timeline.Schedule, error)
	// ApplyDateUpdates writes a cascade batch. Callers run it inside a
	// UnitOfWork so the batch lands whole or not at all.
	ApplyDateUpdates(ctx context.Context, jobID string, updates []timeline.DateUpdate) error
	ListIncompleteItems(ctx context.Context, jobID string) ([]domain.Task, []domain.Material, error)
}
