package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Create(ctx context.Context, ns NewSession, questions []NewQuestion) (*Session, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Millisecond)
	s := &Session{
		ID:            uuid.NewString(),
		UserID:        ns.UserID,
		Role:          ns.Role,
		Experience:    ns.Experience,
		TopicsToFocus: ns.TopicsToFocus,
		Description:   ns.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO sessions
		(id, user_id, role, experience, topics_to_focus, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Role, s.Experience, s.TopicsToFocus, s.Description,
		toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	s.Questions, err = insertQuestions(ctx, tx, s.ID, 0, questions, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s, nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID string) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+sessionColumns+
		" FROM sessions WHERE user_id = ? ORDER BY created_at DESC, rowid DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var out []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range out {
		if out[i].Questions, err = listQuestions(ctx, r.db, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if s.Questions, err = listQuestions(ctx, r.db, s.ID); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var owner string
	err = tx.QueryRowContext(ctx, "SELECT user_id FROM sessions WHERE id = ?", id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get session owner: %w", err)
	}
	if owner != userID {
		return ErrForbidden
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return tx.Commit()
}

const sessionColumns = `id, user_id, role, experience, topics_to_focus, description, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (Session, error) {
	var (
		s                Session
		created, updated int64
	)
	err := row.Scan(&s.ID, &s.UserID, &s.Role, &s.Experience, &s.TopicsToFocus,
		&s.Description, &created, &updated)
	s.CreatedAt = fromMillis(created)
	s.UpdatedAt = fromMillis(updated)
	s.Questions = []Question{}
	return s, err
}
