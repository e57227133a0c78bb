package domain

import (
	"fmt"
	"time"
)

type Material struct {
	ID        string
	PhaseID   string
	Title     string
	DueDate   time.Time
	Status    ItemStatus
	Assignees []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *Material) IsComplete() bool {
	return m.Status == ItemComplete
}

func (m *Material) MarkComplete(now time.Time) {
	if m.Status == ItemComplete {
		return
	}
	m.Status = ItemComplete
	m.UpdatedAt = now
}

func (m *Material) Reopen(now time.Time) error {
	if m.Status != ItemComplete {
		return fmt.Errorf("cannot reopen material in status %s", m.Status)
	}
	m.Status = ItemIncomplete
	m.UpdatedAt = now
	return nil
}

func (m *Material) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("material title is required")
	}
	if m.DueDate.IsZero() {
		return fmt.Errorf("material due date is required")
	}
	return nil
}
