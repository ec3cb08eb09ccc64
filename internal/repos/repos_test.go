package repos_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/repos"
)

func newRepos(t *testing.T) (*repos.UserRepo, *repos.SessionRepo) {
	t.Helper()
	db, err := repos.Open(filepath.Join(t.TempDir(), "glow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return repos.NewUserRepo(logger, db), repos.NewSessionRepo(logger, db)
}

func Test_UserRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("should return not found for unknown user", func(t *testing.T) {
		users, _ := newRepos(t)
		_, err := users.GetUser(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repos.ErrNotFound)
	})

	t.Run("should round trip settings", func(t *testing.T) {
		users, _ := newRepos(t)
		rec := models.UserRecord{
			Email:        "jon@example.com",
			PasswordHash: "hash",
			Settings: models.LightSettings{
				On:                true,
				Color:             "#FF9900",
				Brightness:        lo.ToPtr(128),
				LightTimerEnabled: true,
				Timers: []models.TimerWindow{
					{FadeInStart: "06:00", PeakStart: "07:00", PeakEnd: "19:00", FadeOutEnd: "20:00", Color: "#FF9900"},
				},
			},
		}
		require.NoError(t, users.AddUser(ctx, rec))

		got, err := users.GetUser(ctx, rec.Email)
		require.NoError(t, err)
		assert.Equal(t, rec.Settings, got.Settings)
		assert.Equal(t, "hash", got.PasswordHash)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("should reject duplicate email", func(t *testing.T) {
		users, _ := newRepos(t)
		rec := models.UserRecord{Email: "jon@example.com", PasswordHash: "hash"}
		require.NoError(t, users.AddUser(ctx, rec))
		assert.ErrorIs(t, users.AddUser(ctx, rec), repos.ErrDuplicate)
	})

	t.Run("put should insert then overwrite", func(t *testing.T) {
		users, _ := newRepos(t)
		rec := models.UserRecord{Email: "jon@example.com", PasswordHash: "hash"}
		require.NoError(t, users.PutUser(ctx, rec))

		rec.Settings.AutoDaylight = true
		require.NoError(t, users.PutUser(ctx, rec))

		got, err := users.GetUser(ctx, rec.Email)
		require.NoError(t, err)
		assert.True(t, got.Settings.AutoDaylight)

		emails, err := users.ListEmails(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"jon@example.com"}, emails)
	})
}

func Test_SessionRepo(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	users, sessions := newRepos(t)
	require.NoError(t, users.AddUser(ctx, models.UserRecord{Email: "jon@example.com", PasswordHash: "hash"}))

	live := models.Session{Token: "live", Email: "jon@example.com", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	stale := models.Session{Token: "stale", Email: "jon@example.com", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, sessions.CreateSession(ctx, live))
	require.NoError(t, sessions.CreateSession(ctx, stale))

	got, err := sessions.GetSession(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "jon@example.com", got.Email)
	assert.True(t, got.ExpiresAt.Equal(live.ExpiresAt))

	require.NoError(t, sessions.DeleteExpiredSessions(ctx, now))
	_, err = sessions.GetSession(ctx, "stale")
	assert.ErrorIs(t, err, repos.ErrNotFound)

	require.NoError(t, sessions.DeleteSession(ctx, "live"))
	_, err = sessions.GetSession(ctx, "live")
	assert.ErrorIs(t, err, repos.ErrNotFound)
}
