package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/google/uuid"
)

type noteService struct {
	notes repository.NoteRepo
}

func NewNoteService(notes repository.NoteRepo) NoteService {
	return &noteService{notes: notes}
}

func (s *noteService) Add(ctx context.Context, n *domain.Note) error {
	n.Content = strings.TrimSpace(n.Content)
	if n.Content == "" {
		return fmt.Errorf("note content is required")
	}
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()
	return s.notes.Create(ctx, n)
}

func (s *noteService) ListByPhase(ctx context.Context, phaseID string) ([]*domain.Note, error) {
	return s.notes.ListByPhase(ctx, phaseID)
}

func (s *noteService) ListByJob(ctx context.Context, jobID string) ([]*domain.Note, error) {
	return s.notes.ListByJob(ctx, jobID)
}
