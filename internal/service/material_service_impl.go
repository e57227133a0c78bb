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

type materialService struct {
	materials repository.MaterialRepo
	uow       db.UnitOfWork
}

func NewMaterialService(materials repository.MaterialRepo, uow db.UnitOfWork) MaterialService {
	return &materialService{materials: materials, uow: uow}
}

func (s *materialService) Create(ctx context.Context, m *domain.Material) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Status == "" {
		m.Status = domain.ItemIncomplete
	}
	if !m.DueDate.IsZero() {
		m.DueDate = timeline.Day(m.DueDate)
	}
	if err := m.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteMaterialRepo(tx).Create(ctx, m); err != nil {
			return err
		}
		return refreshPhaseStart(ctx, tx, m.PhaseID, now)
	})
}

func (s *materialService) GetByID(ctx context.Context, id string) (*domain.Material, error) {
	return s.materials.GetByID(ctx, id)
}

func (s *materialService) ListByPhase(ctx context.Context, phaseID string) ([]*domain.Material, error) {
	return s.materials.ListByPhase(ctx, phaseID)
}

func (s *materialService) ListByJob(ctx context.Context, jobID string) ([]*domain.Material, error) {
	return s.materials.ListByJob(ctx, jobID)
}

func (s *materialService) ListByAssignee(ctx context.Context, userID string) ([]*domain.Material, error) {
	return s.materials.ListByAssignee(ctx, userID)
}

func (s *materialService) Update(ctx context.Context, m *domain.Material) error {
	m.DueDate = timeline.Day(m.DueDate)
	if err := m.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	m.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMaterials := repository.NewSQLiteMaterialRepo(tx)
		current, err := txMaterials.GetByID(ctx, m.ID)
		if err != nil {
			return err
		}
		m.PhaseID = current.PhaseID
		if err := txMaterials.Update(ctx, m); err != nil {
			return err
		}
		return refreshPhaseStart(ctx, tx, m.PhaseID, now)
	})
}

func (s *materialService) MarkComplete(ctx context.Context, id string) error {
	m, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return err
	}
	m.MarkComplete(time.Now().UTC())
	return s.materials.Update(ctx, m)
}

func (s *materialService) Reopen(ctx context.Context, id string) error {
	m, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := m.Reopen(time.Now().UTC()); err != nil {
		return err
	}
	return s.materials.Update(ctx, m)
}

func (s *materialService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMaterials := repository.NewSQLiteMaterialRepo(tx)
		m, err := txMaterials.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txMaterials.Delete(ctx, id); err != nil {
			return err
		}
		return refreshPhaseStart(ctx, tx, m.PhaseID, time.Now().UTC())
	})
}

func (s *materialService) Assign(ctx context.Context, materialID, userID string) error {
	if _, err := s.materials.GetByID(ctx, materialID); err != nil {
		return err
	}
	return s.materials.Assign(ctx, materialID, userID)
}

func (s *materialService) Unassign(ctx context.Context, materialID, userID string) error {
	return s.materials.Unassign(ctx, materialID, userID)
}
