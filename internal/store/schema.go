package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Timestamps are stored as Unix milliseconds (UTC).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		role            TEXT NOT NULL,
		experience      TEXT NOT NULL,
		topics_to_focus TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		created_at      INTEGER NOT NULL,
		updated_at      INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions (user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS questions (
		id          TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL REFERENCES sessions (id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		question    TEXT NOT NULL,
		answer      TEXT NOT NULL,
		note        TEXT NOT NULL DEFAULT '',
		is_pinned   INTEGER NOT NULL DEFAULT 0,
		created_at  INTEGER NOT NULL,
		updated_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_session ON questions (session_id, position)`,

	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
