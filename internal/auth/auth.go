package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/repos"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", constants.MinPasswordLength)
)

type userStore interface {
	AddUser(ctx context.Context, user models.UserRecord) error
	GetUser(ctx context.Context, email string) (models.UserRecord, error)
}

type sessionStore interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, token string) (models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type AuthService struct {
	logger     *log.Logger
	users      userStore
	sessions   sessionStore
	sessionTTL time.Duration
	params     Argon2idParams
	now        func() time.Time
}

func NewAuthService(logger *log.Logger, users userStore, sessions sessionStore, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = constants.DefaultSessionTTL
	}
	return &AuthService{
		logger:     logger,
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		params:     DefaultArgon2idParams,
		now:        time.Now,
	}
}

// WithClock replaces the wall clock, used by tests.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// WithParams replaces the hashing cost parameters.
func (s *AuthService) WithParams(params Argon2idParams) *AuthService {
	s.params = params
	return s
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, email string, password string) error {
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if len(password) < constants.MinPasswordLength {
		return ErrWeakPassword
	}

	hash, err := HashPassword(password, s.params)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = s.users.AddUser(ctx, models.UserRecord{
		Email:        email,
		PasswordHash: hash,
		Settings:     models.LightSettings{Color: constants.DefaultColour},
	})
	if errors.Is(err, repos.ErrDuplicate) {
		return ErrEmailTaken
	}
	if err != nil {
		return err
	}

	s.logger.Info("registered user", "email", email)
	return nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (models.Session, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetUser(ctx, email)
	if errors.Is(err, repos.ErrNotFound) {
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Session{}, err
	}

	if err := CheckPassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			s.logger.Error("stored password hash unreadable", "email", email, "err", err)
		}
		return models.Session{}, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.sessions.DeleteExpiredSessions(ctx, now); err != nil {
		s.logger.Error(err)
	}

	session := models.Session{
		Token:     uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return models.Session{}, err
	}

	s.logger.Info("user logged in", "email", email)
	return session, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	session, err := s.sessions.GetSession(ctx, token)
	if errors.Is(err, repos.ErrNotFound) {
		return models.Identity{}, ErrUnauthenticated
	}
	if err != nil {
		return models.Identity{}, err
	}

	if !s.now().Before(session.ExpiresAt) {
		return models.Identity{}, ErrUnauthenticated
	}

	return models.Identity{Email: session.Email}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, strings.TrimSpace(token))
}
