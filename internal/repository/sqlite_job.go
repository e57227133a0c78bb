package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
)

const jobColumns = `id, title, start_date, location, description, status, created_at, updated_at`

// SQLiteJobRepo implements JobRepo using a SQLite database.
type SQLiteJobRepo struct {
	db db.DBTX
}

func NewSQLiteJobRepo(conn db.DBTX) *SQLiteJobRepo {
	return &SQLiteJobRepo{db: conn}
}

func (r *SQLiteJobRepo) Create(ctx context.Context, j *domain.Job) error {
	query := `INSERT INTO jobs (` + jobColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID,
		j.Title,
		j.StartDate.Format(dateLayout),
		j.Location,
		j.Description,
		string(j.Status),
		j.CreatedAt.Format(time.RFC3339),
		j.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}
	return nil
}

func (r *SQLiteJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	j, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return j, nil
}

// ListByIDPrefix returns jobs whose ID starts with prefix, case-insensitively.
func (r *SQLiteJobRepo) ListByIDPrefix(ctx context.Context, prefix string) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE LOWER(id) LIKE LOWER(?) || '%' ESCAPE '\' ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, likeEscaper.Replace(prefix))
	if err != nil {
		return nil, fmt.Errorf("listing jobs by prefix: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *SQLiteJobRepo) List(ctx context.Context, includeClosed bool) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = 'active' ORDER BY start_date, created_at`
	if includeClosed {
		query = `SELECT ` + jobColumns + ` FROM jobs ORDER BY start_date, created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *SQLiteJobRepo) Update(ctx context.Context, j *domain.Job) error {
	query := `UPDATE jobs SET title = ?, start_date = ?, location = ?, description = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		j.Title,
		j.StartDate.Format(dateLayout),
		j.Location,
		j.Description,
		string(j.Status),
		j.UpdatedAt.Format(time.RFC3339),
		j.ID,
	)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}
	return expectOneRow(res, "job "+j.ID)
}

// Delete removes the job; phases and everything under them cascade.
func (r *SQLiteJobRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	return expectOneRow(res, "job "+id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var j domain.Job
	var startDateStr, statusStr, createdAtStr, updatedAtStr string

	err := row.Scan(&j.ID, &j.Title, &startDateStr, &j.Location, &j.Description,
		&statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning job: %w", err)
	}

	j.Status = domain.JobStatus(statusStr)
	if j.StartDate, err = parseDate("start_date", startDateStr); err != nil {
		return nil, err
	}
	if j.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if j.UpdatedAt, err = parseTimestamp("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &j, nil
}

func scanJobs(rows *sql.Rows) ([]*domain.Job, error) {
	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}
	return jobs, nil
}
