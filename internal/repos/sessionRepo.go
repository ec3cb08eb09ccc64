package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/models"
)

type SessionRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewSessionRepo(logger *log.Logger, db *sql.DB) *SessionRepo {
	return &SessionRepo{logger: logger, db: db}
}

func (r *SessionRepo) CreateSession(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (token, email, created_at, expires_at) VALUES ($1, $2, $3, $4)",
		session.Token, session.Email, session.CreatedAt.UTC(), session.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("Error creating session for user (%s): %w", session.Email, err)
	}
	return nil
}

func (r *SessionRepo) GetSession(ctx context.Context, token string) (models.Session, error) {
	var session models.Session
	row := r.db.QueryRowContext(ctx,
		"SELECT token, email, created_at, expires_at FROM sessions WHERE token = $1", token,
	)
	err := row.Scan(&session.Token, &session.Email, &session.CreatedAt, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return session, fmt.Errorf("session: %w", ErrNotFound)
	}
	if err != nil {
		return session, fmt.Errorf("Error reading session: %w", err)
	}
	return session, nil
}

func (r *SessionRepo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token)
	if err != nil {
		return fmt.Errorf("Error deleting session: %w", err)
	}
	return nil
}

func (r *SessionRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= $1", now.UTC())
	if err != nil {
		return fmt.Errorf("Error deleting expired sessions: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		r.logger.Debugf("deleted %d expired sessions", n)
	}
	return nil
}
