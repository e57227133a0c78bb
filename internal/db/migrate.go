package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		type       TEXT NOT NULL
		           CHECK(type IN ('Owner','Admin','User','Client')),
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		location    TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','closed')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id          TEXT PRIMARY KEY,
		job_id      TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_phases_job ON phases(job_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		phase_id   TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		start_date TEXT NOT NULL,
		duration   INTEGER NOT NULL DEFAULT 0 CHECK(duration >= 0),
		status     TEXT NOT NULL DEFAULT 'Incomplete'
		           CHECK(status IN ('Incomplete','Complete')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_phase ON tasks(phase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS materials (
		id         TEXT PRIMARY KEY,
		phase_id   TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		due_date   TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'Incomplete'
		           CHECK(status IN ('Incomplete','Complete')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_materials_phase ON materials(phase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_materials_status ON materials(status)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		phase_id   TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		content    TEXT NOT NULL,
		author_id  TEXT REFERENCES users(id) ON DELETE SET NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_phase ON notes(phase_id)`,

	`CREATE TABLE IF NOT EXISTS task_assignees (
		task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		PRIMARY KEY (task_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS material_assignees (
		material_id TEXT NOT NULL REFERENCES materials(id) ON DELETE CASCADE,
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		PRIMARY KEY (material_id, user_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_assignees_user ON task_assignees(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_material_assignees_user ON material_assignees(user_id)`,

	// users.created_at was added after the initial schema.
	`ALTER TABLE users ADD COLUMN created_at TEXT NOT NULL DEFAULT ''`,
}
