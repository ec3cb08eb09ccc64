package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/schedule"
)

func clock(t *testing.T, s string) int {
	t.Helper()
	m, err := schedule.ParseClock(s)
	require.NoError(t, err)
	return m
}

func Test_Classify(t *testing.T) {

	dayWindow, err := schedule.NewInterval(models.TimerWindow{
		FadeInStart: "06:00", PeakStart: "07:00", PeakEnd: "19:00", FadeOutEnd: "20:00", Color: "#FF9900",
	})
	require.NoError(t, err)

	// peak spans midnight
	nightWindow, err := schedule.NewInterval(models.TimerWindow{
		FadeInStart: "21:00", PeakStart: "22:00", PeakEnd: "02:00", FadeOutEnd: "03:00", Color: "#0000FF",
	})
	require.NoError(t, err)

	// no fade in at all
	instantOn, err := schedule.NewInterval(models.TimerWindow{
		FadeInStart: "08:00", PeakStart: "08:00", PeakEnd: "09:00", FadeOutEnd: "09:30", Color: "#FFFFFF",
	})
	require.NoError(t, err)

	tests := []struct {
		name           string
		interval       schedule.Interval
		now            string
		expectedPhase  schedule.Phase
		expectedFactor float64
	}{
		{name: "dayWindow: start of fade in", interval: dayWindow, now: "06:00", expectedPhase: schedule.PhaseFadeIn, expectedFactor: 0},
		{name: "dayWindow: half way through fade in", interval: dayWindow, now: "06:30", expectedPhase: schedule.PhaseFadeIn, expectedFactor: 0.5},
		{name: "dayWindow: start of peak", interval: dayWindow, now: "07:00", expectedPhase: schedule.PhasePeak, expectedFactor: 1},
		{name: "dayWindow: midday", interval: dayWindow, now: "12:00", expectedPhase: schedule.PhasePeak, expectedFactor: 1},
		{name: "dayWindow: start of fade out", interval: dayWindow, now: "19:00", expectedPhase: schedule.PhaseFadeOut, expectedFactor: 1},
		{name: "dayWindow: half way through fade out", interval: dayWindow, now: "19:30", expectedPhase: schedule.PhaseFadeOut, expectedFactor: 0.5},
		{name: "dayWindow: end of fade out", interval: dayWindow, now: "20:00", expectedPhase: schedule.PhaseNone},
		{name: "dayWindow: before fade in", interval: dayWindow, now: "05:59", expectedPhase: schedule.PhaseNone},
		{name: "nightWindow: before midnight", interval: nightWindow, now: "23:00", expectedPhase: schedule.PhasePeak, expectedFactor: 1},
		{name: "nightWindow: after midnight", interval: nightWindow, now: "01:00", expectedPhase: schedule.PhasePeak, expectedFactor: 1},
		{name: "nightWindow: fading out", interval: nightWindow, now: "02:15", expectedPhase: schedule.PhaseFadeOut, expectedFactor: 0.75},
		{name: "nightWindow: midday", interval: nightWindow, now: "12:00", expectedPhase: schedule.PhaseNone},
		{name: "instantOn: at start", interval: instantOn, now: "08:00", expectedPhase: schedule.PhasePeak, expectedFactor: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, factor := tt.interval.Classify(clock(t, tt.now))
			assert.Equal(t, tt.expectedPhase, phase)
			assert.InDelta(t, tt.expectedFactor, factor, 1e-9)
		})
	}
}

func Test_CalculateTargetColour(t *testing.T) {

	interval, err := schedule.NewInterval(models.TimerWindow{
		FadeInStart: "06:00", PeakStart: "07:00", PeakEnd: "19:00", FadeOutEnd: "20:00", Color: "#FF9900",
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		now        string
		brightness int
		expected   colour.RGB
		active     bool
	}{
		{name: "half faded in", now: "06:30", brightness: 255, expected: colour.RGB{R: 128, G: 77, B: 0}, active: true},
		{name: "peak", now: "12:00", brightness: 255, expected: colour.RGB{R: 255, G: 153, B: 0}, active: true},
		{name: "peak at half brightness", now: "12:00", brightness: 128, expected: colour.RGB{R: 128, G: 77, B: 0}, active: true},
		{name: "half faded out", now: "19:30", brightness: 255, expected: colour.RGB{R: 128, G: 77, B: 0}, active: true},
		{name: "outside window", now: "23:00", brightness: 255, active: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, active := interval.CalculateTargetColour(clock(t, tt.now), tt.brightness)
			assert.Equal(t, tt.active, active)
			if tt.active {
				assert.Equal(t, tt.expected, c)
			}
		})
	}
}

func Test_NewInterval_Invalid(t *testing.T) {
	valid := models.TimerWindow{FadeInStart: "06:00", PeakStart: "07:00", PeakEnd: "19:00", FadeOutEnd: "20:00", Color: "#FF9900"}

	badTime := valid
	badTime.PeakEnd = "25:00"
	_, err := schedule.NewInterval(badTime)
	assert.ErrorContains(t, err, "peakEnd")

	badColour := valid
	badColour.Color = "orange"
	_, err = schedule.NewInterval(badColour)
	assert.ErrorContains(t, err, "color")
}
