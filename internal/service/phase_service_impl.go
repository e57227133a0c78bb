package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/google/uuid"
)

type phaseService struct {
	phases repository.PhaseRepo
	uow    db.UnitOfWork
}

func NewPhaseService(phases repository.PhaseRepo, uow db.UnitOfWork) PhaseService {
	return &phaseService{phases: phases, uow: uow}
}

// Add appends an empty phase to the job. Its start date is the job start
// until it gets children.
func (s *phaseService) Add(ctx context.Context, jobID, title string) (*domain.Phase, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("phase title is required")
	}

	var phase *domain.Phase
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		job, err := repository.NewSQLiteJobRepo(tx).GetByID(ctx, jobID)
		if err != nil {
			return err
		}
		txPhases := repository.NewSQLitePhaseRepo(tx)
		next, err := txPhases.NextOrderIndex(ctx, jobID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		phase = &domain.Phase{
			ID:         uuid.New().String(),
			JobID:      job.ID,
			Title:      title,
			StartDate:  job.StartDate,
			OrderIndex: next,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return txPhases.Create(ctx, phase)
	})
	if err != nil {
		return nil, err
	}
	return phase, nil
}

func (s *phaseService) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	return s.phases.GetByID(ctx, id)
}

func (s *phaseService) ListByJob(ctx context.Context, jobID string) ([]*domain.Phase, error) {
	return s.phases.ListByJob(ctx, jobID)
}

func (s *phaseService) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("phase title is required")
	}
	p, err := s.phases.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Title = title
	p.UpdatedAt = time.Now().UTC()
	return s.phases.Update(ctx, p)
}
