package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
)

// taskColumns is prefixed with "t." so every query can join phases.
const taskColumns = `t.id, t.phase_id, t.title, t.start_date, t.duration, t.status, t.created_at, t.updated_at`

const taskFromJoined = ` FROM tasks t JOIN phases p ON p.id = t.phase_id `

const taskOrder = ` ORDER BY p.order_index, t.start_date, t.created_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, phase_id, title, start_date, duration, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.PhaseID,
		t.Title,
		t.StartDate.Format(dateLayout),
		t.Duration,
		string(t.Status),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	for _, userID := range t.Assignees {
		if err := r.Assign(ctx, t.ID, userID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	tasks, err := r.list(ctx, `WHERE t.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return tasks[0], nil
}

func (r *SQLiteTaskRepo) ListByPhase(ctx context.Context, phaseID string) ([]*domain.Task, error) {
	return r.list(ctx, `WHERE t.phase_id = ?`, phaseID)
}

func (r *SQLiteTaskRepo) ListByJob(ctx context.Context, jobID string) ([]*domain.Task, error) {
	return r.list(ctx, `WHERE p.job_id = ?`, jobID)
}

func (r *SQLiteTaskRepo) ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error) {
	return r.list(ctx, `WHERE t.id IN (SELECT task_id FROM task_assignees WHERE user_id = ?)`, userID)
}

func (r *SQLiteTaskRepo) listIncompleteByJob(ctx context.Context, jobID string) ([]*domain.Task, error) {
	return r.list(ctx, `WHERE p.job_id = ? AND t.status = ?`, jobID, string(domain.ItemIncomplete))
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, start_date = ?, duration = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.StartDate.Format(dateLayout),
		t.Duration,
		string(t.Status),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return expectOneRow(res, "task "+t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return expectOneRow(res, "task "+id)
}

// Assign is idempotent.
func (r *SQLiteTaskRepo) Assign(ctx context.Context, taskID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO task_assignees (task_id, user_id) VALUES (?, ?)`, taskID, userID)
	if err != nil {
		return fmt.Errorf("assigning task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Unassign(ctx context.Context, taskID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM task_assignees WHERE task_id = ? AND user_id = ?`, taskID, userID)
	if err != nil {
		return fmt.Errorf("unassigning task: %w", err)
	}
	return expectOneRow(res, "task assignment")
}

func (r *SQLiteTaskRepo) list(ctx context.Context, where string, args ...any) ([]*domain.Task, error) {
	tasks, err := r.scanTasks(ctx, `SELECT `+taskColumns+taskFromJoined+where+taskOrder, args...)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return tasks, nil
	}

	ids := make([]any, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	assignees, err := loadAssignees(ctx, r.db,
		`SELECT task_id, user_id FROM task_assignees WHERE task_id IN (`+placeholders(len(ids))+`) ORDER BY user_id`,
		ids...)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		t.Assignees = assignees[t.ID]
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) scanTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var startDateStr, statusStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&t.ID, &t.PhaseID, &t.Title, &startDateStr, &t.Duration,
			&statusStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.Status = domain.ItemStatus(statusStr)
		if t.StartDate, err = parseDate("start_date", startDateStr); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
			return nil, err
		}
		if t.UpdatedAt, err = parseTimestamp("updated_at", updatedAtStr); err != nil {
			return nil, err
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
