package repos

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/wheelibin/glow/internal/models"
)

type UserRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewUserRepo(logger *log.Logger, db *sql.DB) *UserRepo {
	return &UserRepo{logger: logger, db: db}
}

func (r *UserRepo) AddUser(ctx context.Context, user models.UserRecord) error {
	settings, err := json.Marshal(user.Settings)
	if err != nil {
		return fmt.Errorf("Error encoding settings for user (%s): %w", user.Email, err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, settings, created_at, updated_at)
     VALUES ($1, $2, $3, $4, $5);`,
		user.Email,
		user.PasswordHash,
		string(settings),
		now,
		now,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("user (%s): %w", user.Email, ErrDuplicate)
		}
		return fmt.Errorf("Error adding user (%s): %w", user.Email, err)
	}
	return nil
}

func (r *UserRepo) GetUser(ctx context.Context, email string) (models.UserRecord, error) {
	var (
		user     models.UserRecord
		settings string
	)
	row := r.db.QueryRowContext(ctx,
		"SELECT email, password_hash, settings, created_at, updated_at FROM users WHERE email = $1",
		email,
	)
	err := row.Scan(&user.Email, &user.PasswordHash, &settings, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user, fmt.Errorf("user (%s): %w", email, ErrNotFound)
	}
	if err != nil {
		return user, fmt.Errorf("Error reading user (%s): %w", email, err)
	}

	if err := json.Unmarshal([]byte(settings), &user.Settings); err != nil {
		return user, fmt.Errorf("Error decoding settings for user (%s): %w", email, err)
	}
	return user, nil
}

// PutUser writes the full record, inserting it if it does not exist.
// Concurrent writers for the same email: last one wins.
func (r *UserRepo) PutUser(ctx context.Context, user models.UserRecord) error {
	settings, err := json.Marshal(user.Settings)
	if err != nil {
		return fmt.Errorf("Error encoding settings for user (%s): %w", user.Email, err)
	}

	now := time.Now().UTC()
	created := user.CreatedAt
	if created.IsZero() {
		created = now
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, settings, created_at, updated_at)
     VALUES ($1, $2, $3, $4, $5)
     ON CONFLICT(email) DO UPDATE SET
       password_hash = excluded.password_hash,
       settings = excluded.settings,
       updated_at = excluded.updated_at;`,
		user.Email,
		user.PasswordHash,
		string(settings),
		created,
		now,
	)
	if err != nil {
		return fmt.Errorf("Error saving user (%s): %w", user.Email, err)
	}
	r.logger.Debug("saved user", "email", user.Email)
	return nil
}

func (r *UserRepo) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT email FROM users ORDER BY email")
	if err != nil {
		return nil, fmt.Errorf("Error listing users: %w", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("Error listing users: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
