package domain

import (
	"fmt"
	"time"
)

type Task struct {
	ID        string
	PhaseID   string
	Title     string
	StartDate time.Time
	// Duration is a whole number of calendar days, never negative.
	Duration  int
	Status    ItemStatus
	Assignees []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndDate returns StartDate plus Duration calendar days.
func (t *Task) EndDate() time.Time {
	return t.StartDate.AddDate(0, 0, t.Duration)
}

// IsComplete reports whether the task has been marked Complete.
func (t *Task) IsComplete() bool {
	return t.Status == ItemComplete
}

// MarkComplete transitions the task to Complete. Idempotent.
func (t *Task) MarkComplete(now time.Time) {
	if t.Status == ItemComplete {
		return
	}
	t.Status = ItemComplete
	t.UpdatedAt = now
}

// Reopen transitions a completed task back to Incomplete.
func (t *Task) Reopen(now time.Time) error {
	if t.Status != ItemComplete {
		return fmt.Errorf("cannot reopen task in status %s", t.Status)
	}
	t.Status = ItemIncomplete
	t.UpdatedAt = now
	return nil
}

// Validate checks the fields a caller must supply before persisting.
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.Duration < 0 {
		return fmt.Errorf("task duration must be >= 0, got %d", t.Duration)
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("task start date is required")
	}
	return nil
}
