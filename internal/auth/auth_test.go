package auth_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/glow/internal/auth"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/repos"
	"github.com/wheelibin/glow/mocks"
)

var cheapParams = auth.Argon2idParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

var fixedNow = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*auth.AuthService, *mocks.MockAuthUserStore, *mocks.MockAuthSessionStore) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	users := mocks.NewMockAuthUserStore(t)
	sessions := mocks.NewMockAuthSessionStore(t)
	srv := auth.NewAuthService(logger, users, sessions, time.Hour).
		WithParams(cheapParams).
		WithClock(func() time.Time { return fixedNow })
	return srv, users, sessions
}

func Test_HashPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse", cheapParams)
	require.NoError(t, err)

	assert.Contains(t, hash, "$argon2id$v=19$m=1024,t=1,p=1$")
	assert.NoError(t, auth.CheckPassword(hash, "correct horse"))
	assert.ErrorIs(t, auth.CheckPassword(hash, "wrong horse"), auth.ErrInvalidCredentials)
	assert.ErrorIs(t, auth.CheckPassword("plaintext", "plaintext"), auth.ErrInvalidPasswordHash)

	other, err := auth.HashPassword("correct horse", cheapParams)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salt should differ")
}

func Test_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should store normalised email with hashed password", func(t *testing.T) {
		srv, users, _ := newService(t)
		users.On("AddUser", ctx, mock.MatchedBy(func(u models.UserRecord) bool {
			return u.Email == "jon@example.com" &&
				u.Settings.Color == "#FFFFFF" &&
				auth.CheckPassword(u.PasswordHash, "password123") == nil
		})).Return(nil)

		assert.NoError(t, srv.Register(ctx, "  Jon@Example.com ", "password123"))
	})

	t.Run("should reject a taken email", func(t *testing.T) {
		srv, users, _ := newService(t)
		users.On("AddUser", ctx, mock.Anything).Return(repos.ErrDuplicate)

		assert.ErrorIs(t, srv.Register(ctx, "jon@example.com", "password123"), auth.ErrEmailTaken)
	})

	t.Run("should reject bad input without touching the store", func(t *testing.T) {
		srv, _, _ := newService(t)
		assert.ErrorIs(t, srv.Register(ctx, "not an email", "password123"), auth.ErrInvalidEmail)
		assert.ErrorIs(t, srv.Register(ctx, "jon@example.com", "short"), auth.ErrWeakPassword)
	})
}

func Test_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("password123", cheapParams)
	require.NoError(t, err)
	stored := models.UserRecord{Email: "jon@example.com", PasswordHash: hash}

	t.Run("should issue a session", func(t *testing.T) {
		srv, users, sessions := newService(t)
		users.On("GetUser", ctx, "jon@example.com").Return(stored, nil)
		sessions.On("DeleteExpiredSessions", ctx, fixedNow).Return(nil)
		sessions.On("CreateSession", ctx, mock.MatchedBy(func(s models.Session) bool {
			return s.Email == "jon@example.com" && len(s.Token) == 36 && s.ExpiresAt.Equal(fixedNow.Add(time.Hour))
		})).Return(nil)

		session, err := srv.Login(ctx, "JON@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "jon@example.com", session.Email)
		assert.Equal(t, fixedNow.Add(time.Hour), session.ExpiresAt)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		srv, users, _ := newService(t)
		users.On("GetUser", ctx, "jon@example.com").Return(stored, nil)

		_, err := srv.Login(ctx, "jon@example.com", "password124")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("should not reveal unknown users", func(t *testing.T) {
		srv, users, _ := newService(t)
		users.On("GetUser", ctx, "who@example.com").Return(models.UserRecord{}, repos.ErrNotFound)

		_, err := srv.Login(ctx, "who@example.com", "password123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("should pass store failures through", func(t *testing.T) {
		srv, users, _ := newService(t)
		boom := errors.New("disk on fire")
		users.On("GetUser", ctx, "jon@example.com").Return(models.UserRecord{}, boom)

		_, err := srv.Login(ctx, "jon@example.com", "password123")
		assert.ErrorIs(t, err, boom)
	})
}

func Test_Authenticate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		token    string
		session  models.Session
		storeErr error
		expected models.Identity
		err      error
	}{
		{
			name:     "valid session",
			token:    "tok",
			session:  models.Session{Token: "tok", Email: "jon@example.com", ExpiresAt: fixedNow.Add(time.Minute)},
			expected: models.Identity{Email: "jon@example.com"},
		},
		{
			name:    "expired session",
			token:   "tok",
			session: models.Session{Token: "tok", Email: "jon@example.com", ExpiresAt: fixedNow},
			err:     auth.ErrUnauthenticated,
		},
		{
			name:     "unknown token",
			token:    "tok",
			storeErr: repos.ErrNotFound,
			err:      auth.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, sessions := newService(t)
			sessions.On("GetSession", ctx, tt.token).Return(tt.session, tt.storeErr)

			identity, err := srv.Authenticate(ctx, tt.token)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}

	t.Run("empty token", func(t *testing.T) {
		srv, _, _ := newService(t)
		_, err := srv.Authenticate(ctx, " ")
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func Test_Logout(t *testing.T) {
	ctx := context.Background()
	srv, _, sessions := newService(t)
	sessions.On("DeleteSession", ctx, "tok").Return(nil)

	assert.NoError(t, srv.Logout(ctx, "tok"))
}
