package daylight

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/constants"
)

var (
	NightColour   = colour.RGB{R: 20, G: 20, B: 60}
	SunriseColour = colour.RGB{R: 255, G: 150, B: 50}
	NoonColour    = colour.RGB{R: 255, G: 255, B: 255}
	SunsetColour  = colour.RGB{R: 255, G: 100, B: 100}
)

// Intensity is the 0 -> 1 -> 0 sine hump over the daylight window, peaking
// at noon. Outside the window it is 0.
func Intensity(hour float64) float64 {
	if hour < constants.DaylightStartHour || hour >= constants.DaylightEndHour {
		return 0
	}
	span := constants.DaylightEndHour - constants.DaylightStartHour
	angleDeg := (hour - constants.DaylightStartHour) / span * 180
	return math.Sin(angleDeg * math.Pi / 180)
}

// ComputeDaylightColour maps minutes since midnight onto the
// sunrise -> noon -> sunset gradient. Night colour applies outside 06:00-18:00
// and, like the rest of the curve, is scaled by brightness.
func ComputeDaylightColour(minuteOfDay int, brightness int) colour.RGB {
	hour := float64(minuteOfDay) / 60

	if hour < constants.DaylightStartHour || hour >= constants.DaylightEndHour {
		return colour.Scale(NightColour, 1, brightness)
	}

	intensity := Intensity(hour)

	var r, g, b float64
	if hour < constants.NoonHour {
		r, g, b = colour.Lerp(SunriseColour, NoonColour, intensity)
	} else {
		// distance past noon
		r, g, b = colour.Lerp(NoonColour, SunsetColour, 1-intensity)
	}

	return colour.Scale(colour.FromFloats(r, g, b), 1, brightness)
}

// SunTimes returns the local sunrise and sunset for the date at lat/lng.
// Informational only, the curve above always uses the fixed window.
func SunTimes(lat, lng float64, date time.Time) (time.Time, time.Time) {
	rise, set := sunrise.SunriseSunset(lat, lng, date.Year(), date.Month(), date.Day())
	return rise.In(date.Location()), set.In(date.Location())
}
