package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/schedule"
)

var ErrInvalidSettings = errors.New("invalid settings")

type userStore interface {
	GetUser(ctx context.Context, email string) (models.UserRecord, error)
	PutUser(ctx context.Context, user models.UserRecord) error
}

// a partial update, nil fields are left as stored
type Patch struct {
	On                *bool                 `json:"on"`
	Color             *string               `json:"color"`
	Brightness        *int                  `json:"brightness"`
	AutoDaylight      *bool                 `json:"autoDaylight"`
	LightTimerEnabled *bool                 `json:"lightTimerEnabled"`
	Timers            *[]models.TimerWindow `json:"timers"`
}

type UpdateResult struct {
	Settings models.LightSettings
	// the light timer was switched off because auto daylight was switched on
	TimerDisabled bool
}

type SettingsService struct {
	logger *log.Logger
	users  userStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSettingsService(logger *log.Logger, users userStore) *SettingsService {
	return &SettingsService{logger: logger, users: users, locks: map[string]*sync.Mutex{}}
}

func (s *SettingsService) Get(ctx context.Context, email string) (models.LightSettings, error) {
	user, err := s.users.GetUser(ctx, email)
	if err != nil {
		return models.LightSettings{}, err
	}
	return withDefaults(user.Settings), nil
}

func (s *SettingsService) Update(ctx context.Context, email string, patch Patch) (UpdateResult, error) {
	if err := Validate(patch); err != nil {
		return UpdateResult{}, err
	}

	lock := s.lockFor(email)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.users.GetUser(ctx, email)
	if err != nil {
		return UpdateResult{}, err
	}

	result := apply(withDefaults(user.Settings), patch)
	if result.TimerDisabled {
		s.logger.Info("auto daylight enabled, disabling light timer", "email", email)
	}

	user.Settings = result.Settings
	if err := s.users.PutUser(ctx, user); err != nil {
		return UpdateResult{}, err
	}
	return result, nil
}

func (s *SettingsService) lockFor(email string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[email]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[email] = lock
	}
	return lock
}

func apply(current models.LightSettings, patch Patch) UpdateResult {
	next := current
	if patch.On != nil {
		next.On = *patch.On
	}
	if patch.Color != nil {
		next.Color = *patch.Color
	}
	if patch.Brightness != nil {
		next.Brightness = lo.ToPtr(*patch.Brightness)
	}
	if patch.AutoDaylight != nil {
		next.AutoDaylight = *patch.AutoDaylight
	}
	if patch.LightTimerEnabled != nil {
		next.LightTimerEnabled = *patch.LightTimerEnabled
	}
	if patch.Timers != nil {
		next.Timers = append([]models.TimerWindow{}, *patch.Timers...)
	}

	// two engines must not drive the light at once
	timerDisabled := false
	if lo.FromPtr(patch.AutoDaylight) && next.LightTimerEnabled {
		next.LightTimerEnabled = false
		timerDisabled = true
	}

	return UpdateResult{Settings: next, TimerDisabled: timerDisabled}
}

func withDefaults(s models.LightSettings) models.LightSettings {
	if s.Color == "" {
		s.Color = constants.DefaultColour
	}
	if s.Timers == nil {
		s.Timers = []models.TimerWindow{}
	}
	return s
}

// Validate rejects colours, times and brightness values the engines cannot use.
func Validate(patch Patch) error {
	if patch.Color != nil {
		if _, err := colour.ParseHex(*patch.Color); err != nil {
			return fmt.Errorf("%w: color: %v", ErrInvalidSettings, err)
		}
	}
	if patch.Brightness != nil {
		if b := *patch.Brightness; b < 0 || b > constants.MaxBrightness {
			return fmt.Errorf("%w: brightness %d out of range 0-%d", ErrInvalidSettings, b, constants.MaxBrightness)
		}
	}
	if patch.Timers != nil {
		for i, w := range *patch.Timers {
			if _, err := schedule.NewInterval(w); err != nil {
				return fmt.Errorf("%w: timers[%d]: %v", ErrInvalidSettings, i, err)
			}
		}
	}
	return nil
}
