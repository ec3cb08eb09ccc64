package schedule_test

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/schedule"
)

func Test_ParseClock(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{input: "00:00", expected: 0},
		{input: "06:30", expected: 390},
		{input: "23:59", expected: 1439},
		{input: "7:05", expected: 425},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "12:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := schedule.ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, m)
			assert.Equal(t, tt.expected, mustParse(t, schedule.FormatClock(m)))
		})
	}
}

func mustParse(t *testing.T, s string) int {
	t.Helper()
	m, err := schedule.ParseClock(s)
	assert.NoError(t, err)
	return m
}

func Test_MinuteOfDay(t *testing.T) {
	assert.Equal(t, 0, schedule.MinuteOfDay(time.Date(2023, 1, 1, 0, 0, 59, 0, time.Local)))
	assert.Equal(t, 19*60+30, schedule.MinuteOfDay(time.Date(2023, 1, 1, 19, 30, 0, 0, time.Local)))
}

func Test_CyclicDuration(t *testing.T) {
	assert.Equal(t, 60, schedule.CyclicDuration(360, 420))
	assert.Equal(t, 240, schedule.CyclicDuration(22*60, 2*60))
	assert.Equal(t, 0, schedule.CyclicDuration(480, 480))
	assert.Equal(t, 1439, schedule.CyclicDuration(1, 0))
}

func Test_InCyclicRange(t *testing.T) {
	assert.True(t, schedule.InCyclicRange(23*60, 22*60, 2*60))
	assert.True(t, schedule.InCyclicRange(60, 22*60, 2*60))
	assert.False(t, schedule.InCyclicRange(12*60, 22*60, 2*60))
	assert.False(t, schedule.InCyclicRange(2*60, 22*60, 2*60))
	assert.True(t, schedule.InCyclicRange(7*60, 7*60, 19*60))
	assert.False(t, schedule.InCyclicRange(19*60, 7*60, 19*60))
	assert.False(t, schedule.InCyclicRange(8*60, 8*60, 8*60))
}

func Test_ComputeTimerColour(t *testing.T) {

	srv := schedule.NewScheduleService(log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel}))

	morning := models.TimerWindow{FadeInStart: "06:00", PeakStart: "07:00", PeakEnd: "19:00", FadeOutEnd: "20:00", Color: "#FF9900"}
	overlapping := models.TimerWindow{FadeInStart: "11:00", PeakStart: "11:30", PeakEnd: "13:00", FadeOutEnd: "14:00", Color: "#0000FF"}
	night := models.TimerWindow{FadeInStart: "21:00", PeakStart: "22:00", PeakEnd: "02:00", FadeOutEnd: "03:00", Color: "#0000FF"}
	broken := models.TimerWindow{FadeInStart: "xx", PeakStart: "07:00", PeakEnd: "19:00", FadeOutEnd: "20:00", Color: "#FF0000"}

	orange := colour.RGB{R: 255, G: 153, B: 0}
	blue := colour.RGB{B: 255}

	tests := []struct {
		name       string
		cfg        models.TimerConfig
		now        string
		brightness int
		expected   *colour.RGB
	}{
		{
			name:       "disabled config",
			cfg:        models.TimerConfig{Enabled: false, Windows: []models.TimerWindow{morning}},
			now:        "12:00",
			brightness: 255,
			expected:   nil,
		},
		{
			name:       "no windows",
			cfg:        models.TimerConfig{Enabled: true},
			now:        "12:00",
			brightness: 255,
			expected:   nil,
		},
		{
			name:       "single window at peak",
			cfg:        models.TimerConfig{Enabled: true, Windows: []models.TimerWindow{morning}},
			now:        "12:00",
			brightness: 255,
			expected:   &orange,
		},
		{
			name:       "first match wins",
			cfg:        models.TimerConfig{Enabled: true, Windows: []models.TimerWindow{morning, overlapping}},
			now:        "12:00",
			brightness: 255,
			expected:   &orange,
		},
		{
			name:       "order decides, not specificity",
			cfg:        models.TimerConfig{Enabled: true, Windows: []models.TimerWindow{overlapping, morning}},
			now:        "12:00",
			brightness: 255,
			expected:   &blue,
		},
		{
			name:       "falls through to later window",
			cfg:        models.TimerConfig{Enabled: true, Windows: []models.TimerWindow{morning, night}},
			now:        "23:00",
			brightness: 255,
			expected:   &blue,
		},
		{
			name:       "malformed window is skipped",
			cfg:        models.TimerConfig{Enabled: true, Windows: []models.TimerWindow{broken, morning}},
			now:        "12:00",
			brightness: 255,
			expected:   &orange,
		},
		{
			name:       "no active window",
			cfg:        models.TimerConfig{Enabled: true, Windows: []models.TimerWindow{morning, night}},
			now:        "04:00",
			brightness: 255,
			expected:   nil,
		},
		{
			name:       "zero brightness",
			cfg:        models.TimerConfig{Enabled: true, Windows: []models.TimerWindow{morning}},
			now:        "12:00",
			brightness: 0,
			expected:   &colour.RGB{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := srv.ComputeTimerColour(mustParse(t, tt.now), tt.cfg, tt.brightness)
			assert.Equal(t, tt.expected, c)
		})
	}
}
