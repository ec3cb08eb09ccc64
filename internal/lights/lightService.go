package lights

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/daylight"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/schedule"
)

type settingsGetter interface {
	Get(ctx context.Context, email string) (models.LightSettings, error)
}

type LightService struct {
	logger          *log.Logger
	settings        settingsGetter
	scheduleService *schedule.ScheduleService
	location        *time.Location
	now             func() time.Time
}

func NewLightService(logger *log.Logger, settings settingsGetter, scheduleService *schedule.ScheduleService, location *time.Location) *LightService {
	if location == nil {
		location = time.Local
	}
	return &LightService{
		logger:          logger,
		settings:        settings,
		scheduleService: scheduleService,
		location:        location,
		now:             time.Now,
	}
}

// WithClock replaces the wall clock, used by tests.
func (l *LightService) WithClock(now func() time.Time) *LightService {
	l.now = now
	return l
}

func (l *LightService) minuteOfDay() int {
	return schedule.MinuteOfDay(l.now().In(l.location))
}

func (l *LightService) AutoLightColour(ctx context.Context, email string) (colour.RGB, error) {
	s, err := l.settings.Get(ctx, email)
	if err != nil {
		return colour.RGB{}, err
	}
	return daylight.ComputeDaylightColour(l.minuteOfDay(), s.EffectiveBrightness()), nil
}

// TimerColour returns nil when the timers are off or no window is active.
func (l *LightService) TimerColour(ctx context.Context, email string) (*colour.RGB, error) {
	s, err := l.settings.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	return l.scheduleService.ComputeTimerColour(l.minuteOfDay(), s.TimerConfig(), s.EffectiveBrightness()), nil
}

// CurrentColour resolves what the light shows: off, then auto daylight, then an
// active timer window, then the manually chosen colour.
func (l *LightService) CurrentColour(ctx context.Context, email string) (Reading, error) {
	s, err := l.settings.Get(ctx, email)
	if err != nil {
		return Reading{}, err
	}

	minute := l.minuteOfDay()
	brightness := s.EffectiveBrightness()

	if !s.On {
		return Reading{RGB: colour.Black, Source: constants.SourceOff}, nil
	}

	if s.AutoDaylight {
		return Reading{RGB: daylight.ComputeDaylightColour(minute, brightness), Source: constants.SourceDaylight}, nil
	}

	if c := l.scheduleService.ComputeTimerColour(minute, s.TimerConfig(), brightness); c != nil {
		return Reading{RGB: *c, Source: constants.SourceTimer}, nil
	}

	manual, err := colour.ParseHex(s.Color)
	if err != nil {
		l.logger.Warn("stored colour unreadable, using default", "email", email, "color", s.Color)
		manual, _ = colour.ParseHex(constants.DefaultColour)
	}
	return Reading{RGB: colour.Scale(manual, 1, brightness), Source: constants.SourceManual}, nil
}
