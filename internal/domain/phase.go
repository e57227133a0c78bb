package domain

import "time"

// Phase groups the tasks, materials and notes of one stage of a job.
// StartDate is derived from the phase's children and is only written by
// schedule recalculation; it is never edited directly.
type Phase struct {
	ID         string
	JobID      string
	Title      string
	StartDate  time.Time
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
