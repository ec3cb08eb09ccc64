package constants

import "time"

const MinutesPerDay = 1440

const MaxBrightness = 255
const DefaultBrightness = MaxBrightness
const DefaultColour = "#FFFFFF"

const MinPasswordLength = 8

// daylight curve window, fractional hours
const DaylightStartHour = 6.0
const DaylightEndHour = 18.0
const NoonHour = 12.0

// colour sources reported by the light service
const SourceOff = "off"
const SourceDaylight = "daylight"
const SourceTimer = "timer"
const SourceManual = "manual"

const DefaultFeedInterval = time.Minute
const FeedPublishSpacing = 50 * time.Millisecond
const DefaultSessionTTL = 24 * time.Hour
const ShutdownTimeout = 5 * time.Second

const TimerDisabledNotice = "light timer disabled because auto daylight was enabled"
