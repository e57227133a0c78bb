package testutil

import (
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/google/uuid"
)

// DefaultStart is the start date fixtures use unless overridden.
var DefaultStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Job options
type JobOption func(*domain.Job)

func WithJobStart(d time.Time) JobOption {
	return func(j *domain.Job) {
		j.StartDate = d
	}
}

func WithJobStatus(s domain.JobStatus) JobOption {
	return func(j *domain.Job) {
		j.Status = s
	}
}

func WithLocation(loc string) JobOption {
	return func(j *domain.Job) {
		j.Location = loc
	}
}

func NewTestJob(title string, opts ...JobOption) *domain.Job {
	now := time.Now().UTC()
	j := &domain.Job{
		ID:        uuid.New().String(),
		Title:     title,
		StartDate: DefaultStart,
		Status:    domain.JobActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseStart(d time.Time) PhaseOption {
	return func(p *domain.Phase) {
		p.StartDate = d
	}
}

func WithOrderIndex(i int) PhaseOption {
	return func(p *domain.Phase) {
		p.OrderIndex = i
	}
}

func NewTestPhase(jobID, title string, opts ...PhaseOption) *domain.Phase {
	now := time.Now().UTC()
	p := &domain.Phase{
		ID:        uuid.New().String(),
		JobID:     jobID,
		Title:     title,
		StartDate: DefaultStart,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStart(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = d
	}
}

func WithDuration(days int) TaskOption {
	return func(t *domain.Task) {
		t.Duration = days
	}
}

func WithTaskStatus(s domain.ItemStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskAssignees(userIDs ...string) TaskOption {
	return func(t *domain.Task) {
		t.Assignees = userIDs
	}
}

func NewTestTask(phaseID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		PhaseID:   phaseID,
		Title:     title,
		StartDate: DefaultStart,
		Duration:  1,
		Status:    domain.ItemIncomplete,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Material options
type MaterialOption func(*domain.Material)

func WithDueDate(d time.Time) MaterialOption {
	return func(m *domain.Material) {
		m.DueDate = d
	}
}

func WithMaterialStatus(s domain.ItemStatus) MaterialOption {
	return func(m *domain.Material) {
		m.Status = s
	}
}

func WithMaterialAssignees(userIDs ...string) MaterialOption {
	return func(m *domain.Material) {
		m.Assignees = userIDs
	}
}

func NewTestMaterial(phaseID, title string, opts ...MaterialOption) *domain.Material {
	now := time.Now().UTC()
	m := &domain.Material{
		ID:        uuid.New().String(),
		PhaseID:   phaseID,
		Title:     title,
		DueDate:   DefaultStart,
		Status:    domain.ItemIncomplete,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// User options
type UserOption func(*domain.User)

func WithUserType(ut domain.UserType) UserOption {
	return func(u *domain.User) {
		u.Type = ut
	}
}

func WithEmail(email string) UserOption {
	return func(u *domain.User) {
		u.Email = email
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:        uuid.New().String(),
		Type:      domain.UserMember,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func NewTestNote(phaseID, authorID, content string) *domain.Note {
	return &domain.Note{
		ID:        uuid.New().String(),
		PhaseID:   phaseID,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
}
