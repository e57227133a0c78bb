package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/google/uuid"
)

type jobService struct {
	jobs repository.JobRepo
	uow  db.UnitOfWork
}

func NewJobService(jobs repository.JobRepo, uow db.UnitOfWork) JobService {
	return &jobService{jobs: jobs, uow: uow}
}

func (s *jobService) Create(ctx context.Context, j *domain.Job) error {
	prepareJob(j)
	if err := j.Validate(); err != nil {
		return err
	}
	return s.jobs.Create(ctx, j)
}

func (s *jobService) CreateWithPhases(ctx context.Context, j *domain.Job, phaseTitles []string) ([]*domain.Phase, error) {
	prepareJob(j)
	if err := j.Validate(); err != nil {
		return nil, err
	}
	for i, title := range phaseTitles {
		if strings.TrimSpace(title) == "" {
			return nil, fmt.Errorf("phase %d: title is required", i+1)
		}
	}

	phases := make([]*domain.Phase, len(phaseTitles))
	for i, title := range phaseTitles {
		phases[i] = &domain.Phase{
			ID:         uuid.New().String(),
			JobID:      j.ID,
			Title:      strings.TrimSpace(title),
			StartDate:  j.StartDate,
			OrderIndex: i,
			CreatedAt:  j.CreatedAt,
			UpdatedAt:  j.CreatedAt,
		}
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteJobRepo(tx).Create(ctx, j); err != nil {
			return err
		}
		txPhases := repository.NewSQLitePhaseRepo(tx)
		for _, p := range phases {
			if err := txPhases.Create(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return phases, nil
}

func prepareJob(j *domain.Job) {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	if j.Status == "" {
		j.Status = domain.JobActive
	}
	j.Title = strings.TrimSpace(j.Title)
	if !j.StartDate.IsZero() {
		j.StartDate = timeline.Day(j.StartDate)
	}
}

func (s *jobService) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *jobService) Resolve(ctx context.Context, input string) (*domain.Job, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("job ID is required")
	}
	matches, err := s.jobs.ListByIDPrefix(ctx, input)
	if err != nil {
		return nil, err
	}
	for _, j := range matches {
		if strings.EqualFold(j.ID, input) {
			return j, nil
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("job %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("job ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func (s *jobService) List(ctx context.Context, includeClosed bool) ([]*domain.Job, error) {
	return s.jobs.List(ctx, includeClosed)
}

func (s *jobService) Update(ctx context.Context, j *domain.Job) error {
	current, err := s.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return err
	}
	if !j.StartDate.IsZero() && !timeline.Day(j.StartDate).Equal(current.StartDate) {
		return fmt.Errorf("start date changes must go through a schedule shift")
	}
	current.Title = strings.TrimSpace(j.Title)
	current.Location = j.Location
	current.Description = j.Description
	if err := current.Validate(); err != nil {
		return err
	}
	current.UpdatedAt = time.Now().UTC()
	if err := s.jobs.Update(ctx, current); err != nil {
		return err
	}
	*j = *current
	return nil
}

func (s *jobService) Close(ctx context.Context, id string) error {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	j.Close(time.Now().UTC())
	return s.jobs.Update(ctx, j)
}

func (s *jobService) Reopen(ctx context.Context, id string) error {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := j.Reopen(time.Now().UTC()); err != nil {
		return err
	}
	return s.jobs.Update(ctx, j)
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}
