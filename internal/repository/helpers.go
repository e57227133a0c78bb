package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/jobtrack/internal/db"
)

const dateLayout = "2006-01-02"

// parseNullableString returns "" for SQL NULL.
func parseNullableString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// nullableString converts an empty string to SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// parseTimestamp parses an RFC3339 column. Empty values (rows written before
// the column existed) yield the zero time.
func parseTimestamp(col, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", col, err)
	}
	return t, nil
}

func parseDate(col, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", col, err)
	}
	return t, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// loadAssignees runs a query yielding (owner_id, user_id) pairs and groups the
// user IDs by owner. Rows are fully drained before returning so callers can
// issue further queries on a single-connection database.
func loadAssignees(ctx context.Context, conn db.DBTX, query string, args ...any) (map[string][]string, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading assignees: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var ownerID, userID string
		if err := rows.Scan(&ownerID, &userID); err != nil {
			return nil, fmt.Errorf("scanning assignee row: %w", err)
		}
		out[ownerID] = append(out[ownerID], userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignees: %w", err)
	}
	return out, nil
}

// expectOneRow turns a zero-row UPDATE or DELETE into ErrNotFound.
func expectOneRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
