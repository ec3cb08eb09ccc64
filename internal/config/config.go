package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/wheelibin/glow/internal/constants"
)

type Config struct {
	ListenAddress string
	DBPath        string
	LogLevel      string
	LogFile       string
	Timezone      string
	Latitude      float64
	Longitude     float64
	SessionTTL    time.Duration
	FeedInterval  time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listenAddress", ":8080")
	v.SetDefault("dbPath", "glow.db")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("timezone", "Local")
	v.SetDefault("geoLocation", "0,0")
	v.SetDefault("sessionTTL", constants.DefaultSessionTTL.String())
	v.SetDefault("feedInterval", constants.DefaultFeedInterval.String())
}

// InitialiseConfig reads the config file from the usual search paths. A missing
// file is fine, defaults and GLOW_ env vars apply.
func InitialiseConfig(v *viper.Viper) error {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath("/etc/glow/")
	v.AddConfigPath("$HOME/.config/glow/")
	v.AddConfigPath(".")

	v.SetEnvPrefix("glow")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("fatal error config file: %w", err)
		}
	}
	return nil
}

func FromViper(v *viper.Viper) (*Config, error) {
	lat, lng, err := parseGeoLocation(v.GetString("geoLocation"))
	if err != nil {
		return nil, err
	}

	if _, err := loadLocation(v.GetString("timezone")); err != nil {
		return nil, err
	}

	return &Config{
		ListenAddress: v.GetString("listenAddress"),
		DBPath:        v.GetString("dbPath"),
		LogLevel:      v.GetString("logLevel"),
		LogFile:       v.GetString("logFile"),
		Timezone:      v.GetString("timezone"),
		Latitude:      lat,
		Longitude:     lng,
		SessionTTL:    v.GetDuration("sessionTTL"),
		FeedInterval:  v.GetDuration("feedInterval"),
	}, nil
}

// ReadConfig is InitialiseConfig + FromViper against the global viper instance.
func ReadConfig() (*Config, error) {
	if err := InitialiseConfig(viper.GetViper()); err != nil {
		return nil, err
	}
	return FromViper(viper.GetViper())
}

func (c *Config) Location() *time.Location {
	loc, _ := loadLocation(c.Timezone)
	return loc
}

func (c *Config) Level() log.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// "51.5,-0.12" -> 51.5, -0.12
func parseGeoLocation(s string) (float64, float64, error) {
	latLng := strings.Split(s, ",")
	if len(latLng) != 2 {
		return 0, 0, fmt.Errorf("invalid geoLocation %q, expected \"lat,lng\"", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latLng[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid geoLocation latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(latLng[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid geoLocation longitude: %w", err)
	}
	return lat, lng, nil
}
