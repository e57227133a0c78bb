package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
	"github.com/alexanderramin/jobtrack/internal/domain"
)

const materialColumns = `m.id, m.phase_id, m.title, m.due_date, m.status, m.created_at, m.updated_at`

const materialFromJoined = ` FROM materials m JOIN phases p ON p.id = m.phase_id `

const materialOrder = ` ORDER BY p.order_index, m.due_date, m.created_at`

// SQLiteMaterialRepo implements MaterialRepo using a SQLite database.
type SQLiteMaterialRepo struct {
	db db.DBTX
}

func NewSQLiteMaterialRepo(conn db.DBTX) *SQLiteMaterialRepo {
	return &SQLiteMaterialRepo{db: conn}
}

func (r *SQLiteMaterialRepo) Create(ctx context.Context, m *domain.Material) error {
	query := `INSERT INTO materials (id, phase_id, title, due_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.PhaseID,
		m.Title,
		m.DueDate.Format(dateLayout),
		string(m.Status),
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting material: %w", err)
	}
	for _, userID := range m.Assignees {
		if err := r.Assign(ctx, m.ID, userID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteMaterialRepo) GetByID(ctx context.Context, id string) (*domain.Material, error) {
	materials, err := r.list(ctx, `WHERE m.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return nil, fmt.Errorf("material %s: %w", id, ErrNotFound)
	}
	return materials[0], nil
}

func (r *SQLiteMaterialRepo) ListByPhase(ctx context.Context, phaseID string) ([]*domain.Material, error) {
	return r.list(ctx, `WHERE m.phase_id = ?`, phaseID)
}

func (r *SQLiteMaterialRepo) ListByJob(ctx context.Context, jobID string) ([]*domain.Material, error) {
	return r.list(ctx, `WHERE p.job_id = ?`, jobID)
}

func (r *SQLiteMaterialRepo) ListByAssignee(ctx context.Context, userID string) ([]*domain.Material, error) {
	return r.list(ctx, `WHERE m.id IN (SELECT material_id FROM material_assignees WHERE user_id = ?)`, userID)
}

func (r *SQLiteMaterialRepo) listIncompleteByJob(ctx context.Context, jobID string) ([]*domain.Material, error) {
	return r.list(ctx, `WHERE p.job_id = ? AND m.status = ?`, jobID, string(domain.ItemIncomplete))
}

func (r *SQLiteMaterialRepo) Update(ctx context.Context, m *domain.Material) error {
	query := `UPDATE materials SET title = ?, due_date = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		m.Title,
		m.DueDate.Format(dateLayout),
		string(m.Status),
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating material: %w", err)
	}
	return expectOneRow(res, "material "+m.ID)
}

func (r *SQLiteMaterialRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting material: %w", err)
	}
	return expectOneRow(res, "material "+id)
}

// Assign is idempotent.
func (r *SQLiteMaterialRepo) Assign(ctx context.Context, materialID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO material_assignees (material_id, user_id) VALUES (?, ?)`, materialID, userID)
	if err != nil {
		return fmt.Errorf("assigning material: %w", err)
	}
	return nil
}

func (r *SQLiteMaterialRepo) Unassign(ctx context.Context, materialID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM material_assignees WHERE material_id = ? AND user_id = ?`, materialID, userID)
	if err != nil {
		return fmt.Errorf("unassigning material: %w", err)
	}
	return expectOneRow(res, "material assignment")
}

func (r *SQLiteMaterialRepo) list(ctx context.Context, where string, args ...any) ([]*domain.Material, error) {
	materials, err := r.scanMaterials(ctx, `SELECT `+materialColumns+materialFromJoined+where+materialOrder, args...)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return materials, nil
	}

	ids := make([]any, len(materials))
	for i, m := range materials {
		ids[i] = m.ID
	}
	assignees, err := loadAssignees(ctx, r.db,
		`SELECT material_id, user_id FROM material_assignees WHERE material_id IN (`+placeholders(len(ids))+`) ORDER BY user_id`,
		ids...)
	if err != nil {
		return nil, err
	}
	for _, m := range materials {
		m.Assignees = assignees[m.ID]
	}
	return materials, nil
}

func (r *SQLiteMaterialRepo) scanMaterials(ctx context.Context, query string, args ...any) ([]*domain.Material, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()

	var materials []*domain.Material
	for rows.Next() {
		var m domain.Material
		var dueDateStr, statusStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&m.ID, &m.PhaseID, &m.Title, &dueDateStr,
			&statusStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning material row: %w", err)
		}
		m.Status = domain.ItemStatus(statusStr)
		if m.DueDate, err = parseDate("due_date", dueDateStr); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
			return nil, err
		}
		if m.UpdatedAt, err = parseTimestamp("updated_at", updatedAtStr); err != nil {
			return nil, err
		}
		materials = append(materials, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating materials: %w", err)
	}
	return materials, nil
}
