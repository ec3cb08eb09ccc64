package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wheelibin/glow/internal/constants"
)

// MinuteOfDay returns minutes since midnight for the wall clock time of t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// returns minutes since midnight for the supplied time string (e.g. "06:30" -> 390)
func ParseClock(timeString string) (int, error) {
	timeHM := strings.Split(strings.TrimSpace(timeString), ":")
	if len(timeHM) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", timeString)
	}
	hour, err := strconv.Atoi(timeHM[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in time %q", timeString)
	}
	mins, err := strconv.Atoi(timeHM[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid minutes in time %q", timeString)
	}
	return hour*60 + mins, nil
}

func FormatClock(minutes int) string {
	m := Wrap(minutes)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Wrap folds any minute value into [0, 1440).
func Wrap(minutes int) int {
	return ((minutes % constants.MinutesPerDay) + constants.MinutesPerDay) % constants.MinutesPerDay
}

// CyclicDuration is the forward distance from -> to around the clock face,
// 22:00 -> 02:00 is 240 minutes, equal boundaries are a zero length span.
func CyclicDuration(from, to int) int {
	return Wrap(to - from)
}

// InCyclicRange reports whether now is inside [start, end), allowing the range
// to wrap past midnight (e.g. 22:00-02:00).
func InCyclicRange(now, start, end int) bool {
	if start <= end {
		return now >= start && now < end
	}
	return now >= start || now < end
}
