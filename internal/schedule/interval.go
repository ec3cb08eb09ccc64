package schedule

import (
	"fmt"

	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/models"
)

type Phase int

const (
	PhaseNone Phase = iota
	PhaseFadeIn
	PhasePeak
	PhaseFadeOut
)

func (p Phase) String() string {
	switch p {
	case PhaseFadeIn:
		return "fade-in"
	case PhasePeak:
		return "peak"
	case PhaseFadeOut:
		return "fade-out"
	default:
		return "none"
	}
}

// a timer window with its boundaries resolved to minutes of the day
type Interval struct {
	FadeInStart int
	PeakStart   int
	PeakEnd     int
	FadeOutEnd  int
	Color       colour.RGB
}

func NewInterval(w models.TimerWindow) (Interval, error) {
	var (
		i   Interval
		err error
	)
	if i.FadeInStart, err = ParseClock(w.FadeInStart); err != nil {
		return i, fmt.Errorf("fadeInStart: %w", err)
	}
	if i.PeakStart, err = ParseClock(w.PeakStart); err != nil {
		return i, fmt.Errorf("peakStart: %w", err)
	}
	if i.PeakEnd, err = ParseClock(w.PeakEnd); err != nil {
		return i, fmt.Errorf("peakEnd: %w", err)
	}
	if i.FadeOutEnd, err = ParseClock(w.FadeOutEnd); err != nil {
		return i, fmt.Errorf("fadeOutEnd: %w", err)
	}
	if i.Color, err = colour.ParseHex(w.Color); err != nil {
		return i, fmt.Errorf("color: %w", err)
	}
	return i, nil
}

// Classify returns the phase now falls in and the colour multiplier for it:
// progress through the fade in, 1 at peak, remaining share of the fade out.
// Zero length fades are never entered.
func (i Interval) Classify(now int) (Phase, float64) {
	fadeIn := CyclicDuration(i.FadeInStart, i.PeakStart)
	if elapsed := CyclicDuration(i.FadeInStart, now); fadeIn > 0 && elapsed < fadeIn {
		return PhaseFadeIn, float64(elapsed) / float64(fadeIn)
	}

	if InCyclicRange(now, i.PeakStart, i.PeakEnd) {
		return PhasePeak, 1
	}

	fadeOut := CyclicDuration(i.PeakEnd, i.FadeOutEnd)
	if elapsed := CyclicDuration(i.PeakEnd, now); fadeOut > 0 && elapsed < fadeOut {
		return PhaseFadeOut, 1 - float64(elapsed)/float64(fadeOut)
	}

	return PhaseNone, 0
}

// CalculateTargetColour is the window colour at now scaled by brightness, or
// false when now is outside the window.
func (i Interval) CalculateTargetColour(now int, brightness int) (colour.RGB, bool) {
	phase, factor := i.Classify(now)
	if phase == PhaseNone {
		return colour.RGB{}, false
	}
	return colour.Scale(i.Color, factor, brightness), true
}
