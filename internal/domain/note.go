package domain

import "time"

// Note is an append-only comment on a phase.
type Note struct {
	ID        string
	PhaseID   string
	Content   string
	AuthorID  string
	CreatedAt time.Time
}
