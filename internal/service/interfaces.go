package service

import (
	"context"

	"github.com/alexanderramin/jobtrack/internal/app"
	"github.com/alexanderramin/jobtrack/internal/domain"
)

type JobService interface {
	Create(ctx context.Context, j *domain.Job) error
	// CreateWithPhases creates the job and its initial phases in one
	// transaction, in the given order.
	CreateWithPhases(ctx context.Context, j *domain.Job, phaseTitles []string) ([]*domain.Phase, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	// Resolve accepts a full ID or a unique ID prefix.
	Resolve(ctx context.Context, idOrPrefix string) (*domain.Job, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Job, error)
	// Update writes descriptive fields. The start date only moves through
	// ScheduleService.ShiftStart.
	Update(ctx context.Context, j *domain.Job) error
	Close(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type PhaseService interface {
	Add(ctx context.Context, jobID, title string) (*domain.Phase, error)
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Phase, error)
	Rename(ctx context.Context, id, title string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.Task, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkComplete(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, taskID, userID string) error
	Unassign(ctx context.Context, taskID, userID string) error
}

type MaterialService interface {
	Create(ctx context.Context, m *domain.Material) error
	GetByID(ctx context.Context, id string) (*domain.Material, error)
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.Material, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Material, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Material, error)
	Update(ctx context.Context, m *domain.Material) error
	MarkComplete(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, materialID, userID string) error
	Unassign(ctx context.Context, materialID, userID string) error
}

type NoteService interface {
	Add(ctx context.Context, n *domain.Note) error
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.Note, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Note, error)
}

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleService runs the timeline engine against stored jobs.
type ScheduleService interface {
	app.SpanUseCase
	app.ShiftStartUseCase
	app.ExtendUseCase
	app.UrgencyUseCase
	// PreviewShift and PreviewExtend compute the cascade without writing it.
	PreviewShift(ctx context.Context, req app.ShiftRequest) (*app.CascadeResponse, error)
	PreviewExtend(ctx context.Context, req app.ExtendRequest) (*app.CascadeResponse, error)
}
