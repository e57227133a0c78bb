package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.Note) error {
	query := `INSERT INTO notes (id, phase_id, content, author_id, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.PhaseID,
		n.Content,
		nullableString(n.AuthorID),
		n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) ListByPhase(ctx context.Context, phaseID string) ([]*domain.Note, error) {
	query := `SELECT id, phase_id, content, author_id, created_at FROM notes
		WHERE phase_id = ? ORDER BY created_at, id`
	return r.query(ctx, query, phaseID)
}

func (r *SQLiteNoteRepo) ListByJob(ctx context.Context, jobID string) ([]*domain.Note, error) {
	query := `SELECT n.id, n.phase_id, n.content, n.author_id, n.created_at
		FROM notes n JOIN phases p ON p.id = n.phase_id
		WHERE p.job_id = ? ORDER BY n.created_at, n.id`
	return r.query(ctx, query, jobID)
}

func (r *SQLiteNoteRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		var authorID sql.NullString
		var createdAtStr string
		if err := rows.Scan(&n.ID, &n.PhaseID, &n.Content, &authorID, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		n.AuthorID = parseNullableString(authorID)
		if n.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
			return nil, err
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}
