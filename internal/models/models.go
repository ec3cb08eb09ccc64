package models

import "time"

// a user record as held in the user store, keyed by email
type UserRecord struct {
	Email        string
	PasswordHash string
	Settings     LightSettings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LightSettings struct {
	On           bool   `json:"on"`
	Color        string `json:"color"`
	Brightness   *int   `json:"brightness,omitempty"`
	AutoDaylight bool   `json:"autoDaylight"`

	LightTimerEnabled bool          `json:"lightTimerEnabled"`
	Timers            []TimerWindow `json:"timers"`
}

// one fade-in -> peak -> fade-out window, boundaries are "HH:MM" and cyclic
type TimerWindow struct {
	FadeInStart string `json:"fadeInStart"`
	PeakStart   string `json:"peakStart"`
	PeakEnd     string `json:"peakEnd"`
	FadeOutEnd  string `json:"fadeOutEnd"`
	Color       string `json:"color"`
}

// the view of the settings the timer engine works on
type TimerConfig struct {
	Enabled bool
	Windows []TimerWindow
}

// EffectiveBrightness is the stored brightness, or full brightness when never set.
func (s LightSettings) EffectiveBrightness() int {
	if s.Brightness == nil {
		return 255
	}
	return *s.Brightness
}

func (s LightSettings) TimerConfig() TimerConfig {
	return TimerConfig{Enabled: s.LightTimerEnabled, Windows: s.Timers}
}

type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// the authenticated caller of a request
type Identity struct {
	Email string
}
