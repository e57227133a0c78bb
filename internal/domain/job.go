package domain

import (
	"fmt"
	"strings"
	"time"
)

type Job struct {
	ID          string
	Title       string
	StartDate   time.Time
	Location    string
	Description string
	Status      JobStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsClosed reports whether the job no longer accepts schedule edits.
func (j *Job) IsClosed() bool {
	return j.Status == JobClosed
}

// Close marks the job closed. Closing an already-closed job is a no-op.
func (j *Job) Close(now time.Time) {
	if j.Status == JobClosed {
		return
	}
	j.Status = JobClosed
	j.UpdatedAt = now
}

// Reopen returns a closed job to active.
func (j *Job) Reopen(now time.Time) error {
	if j.Status != JobClosed {
		return fmt.Errorf("cannot reopen job in status %s", j.Status)
	}
	j.Status = JobActive
	j.UpdatedAt = now
	return nil
}

func (j *Job) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return fmt.Errorf("job title is required")
	}
	if j.StartDate.IsZero() {
		return fmt.Errorf("job start date is required")
	}
	return nil
}

// ShortID returns the first 8 characters of the ID for display.
func (j *Job) ShortID() string {
	if len(j.ID) >= 8 {
		return j.ID[:8]
	}
	return j.ID
}
