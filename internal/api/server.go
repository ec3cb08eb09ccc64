package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/lights"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/settings"
)

type authenticator interface {
	Register(ctx context.Context, email string, password string) error
	Login(ctx context.Context, email string, password string) (models.Session, error)
	Authenticate(ctx context.Context, token string) (models.Identity, error)
	Logout(ctx context.Context, token string) error
}

type settingsManager interface {
	Get(ctx context.Context, email string) (models.LightSettings, error)
	Update(ctx context.Context, email string, patch settings.Patch) (settings.UpdateResult, error)
}

type colourComputer interface {
	AutoLightColour(ctx context.Context, email string) (colour.RGB, error)
	TimerColour(ctx context.Context, email string) (*colour.RGB, error)
	CurrentColour(ctx context.Context, email string) (lights.Reading, error)
}

type feedSubscriber interface {
	Subscribe(email string)
}

type Deps struct {
	Auth     authenticator
	Settings settingsManager
	Lights   colourComputer
	Feed     feedSubscriber
	// serves the event streams, normally an *sse.Server
	Events http.Handler

	Latitude  float64
	Longitude float64
	Location  *time.Location
	Now       func() time.Time
}

type Server struct {
	responder
	auth     authenticator
	settings settingsManager
	lights   colourComputer
	feed     feedSubscriber
	events   http.Handler

	latitude  float64
	longitude float64
	location  *time.Location
	now       func() time.Time
}

func NewServer(logger *log.Logger, deps Deps) *Server {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	return &Server{
		responder: responder{logger: logger},
		auth:      deps.Auth,
		settings:  deps.Settings,
		lights:    deps.Lights,
		feed:      deps.Feed,
		events:    deps.Events,
		latitude:  deps.Latitude,
		longitude: deps.Longitude,
		location:  deps.Location,
		now:       deps.Now,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.requireSession(s.handleLogout))

	mux.HandleFunc("GET /api/settings", s.requireSession(s.handleGetSettings))
	mux.HandleFunc("PUT /api/settings", s.requireSession(s.handleUpdateSettings))

	mux.HandleFunc("GET /api/auto-light", s.requireSession(s.handleAutoLight))
	mux.HandleFunc("GET /api/light-timer-color", s.requireSession(s.handleLightTimerColour))
	mux.HandleFunc("GET /api/color", s.requireSession(s.handleCurrentColour))
	mux.HandleFunc("GET /api/sun", s.handleSun)
	mux.HandleFunc("GET /api/events", s.requireSession(s.handleEvents))

	return s.logRequests(mux)
}
