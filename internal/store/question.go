package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type questionRepo struct {
	db *sql.DB
}

func (r *questionRepo) Add(ctx context.Context, sessionID string, questions []NewQuestion) ([]Question, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var next int
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(
		(SELECT MAX(position) + 1 FROM questions WHERE session_id = s.id), 0)
		FROM sessions s WHERE s.id = ?`, sessionID).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	out, err := insertQuestions(ctx, tx, sessionID, next, questions, now)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, "UPDATE sessions SET updated_at = ? WHERE id = ?",
		toMillis(now), sessionID); err != nil {
		return nil, fmt.Errorf("touch session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func (r *questionRepo) UpdateNote(ctx context.Context, id, note string) (*Question, error) {
	return r.update(ctx, id, "note = ?", note)
}

func (r *questionRepo) TogglePin(ctx context.Context, id string) (*Question, error) {
	return r.update(ctx, id, "is_pinned = 1 - is_pinned")
}

func (r *questionRepo) update(ctx context.Context, id, set string, args ...any) (*Question, error) {
	args = append(args, toMillis(time.Now()), id)
	res, err := r.db.ExecContext(ctx,
		"UPDATE questions SET "+set+", updated_at = ? WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}

	q, err := scanQuestion(r.db.QueryRowContext(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("reload question: %w", err)
	}
	return &q, nil
}

func (r *questionRepo) ListBySession(ctx context.Context, sessionID string) ([]Question, error) {
	return listQuestions(ctx, r.db, sessionID)
}

func insertQuestions(ctx context.Context, db dbtx, sessionID string, start int, questions []NewQuestion, now time.Time) ([]Question, error) {
	out := make([]Question, 0, len(questions))
	for i, nq := range questions {
		q := Question{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Position:  start + i,
			Question:  nq.Question,
			Answer:    nq.Answer,
			Note:      nq.Note,
			IsPinned:  nq.IsPinned,
			CreatedAt: now,
			UpdatedAt: now,
		}
		_, err := db.ExecContext(ctx, `INSERT INTO questions
			(id, session_id, position, question, answer, note, is_pinned, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			q.ID, q.SessionID, q.Position, q.Question, q.Answer, q.Note, q.IsPinned,
			toMillis(now), toMillis(now),
		)
		if err != nil {
			return nil, fmt.Errorf("insert question %d: %w", i, err)
		}
		out = append(out, q)
	}
	return out, nil
}

func listQuestions(ctx context.Context, db dbtx, sessionID string) ([]Question, error) {
	rows, err := db.QueryContext(ctx, "SELECT "+questionColumns+
		" FROM questions WHERE session_id = ? ORDER BY is_pinned DESC, position ASC", sessionID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	out := []Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

const questionColumns = `id, session_id, position, question, answer, note, is_pinned, created_at, updated_at`

func scanQuestion(row interface{ Scan(...any) error }) (Question, error) {
	var (
		q                Question
		created, updated int64
	)
	err := row.Scan(&q.ID, &q.SessionID, &q.Position, &q.Question, &q.Answer,
		&q.Note, &q.IsPinned, &created, &updated)
	q.CreatedAt = fromMillis(created)
	q.UpdatedAt = fromMillis(updated)
	return q, err
}
