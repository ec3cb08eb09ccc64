package api

import (
	"net/http"
	"time"

	"github.com/wheelibin/glow/internal/auth"
	"github.com/wheelibin/glow/internal/colour"
	"github.com/wheelibin/glow/internal/constants"
	"github.com/wheelibin/glow/internal/daylight"
	"github.com/wheelibin/glow/internal/models"
	"github.com/wheelibin/glow/internal/settings"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type settingsResponse struct {
	models.LightSettings
	TimerDisabled bool   `json:"timerDisabled,omitempty"`
	Notice        string `json:"notice,omitempty"`
}

type nullColourResponse struct {
	Color *colour.RGB `json:"color"`
}

type sunResponse struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.auth.Register(r.Context(), req.Email, req.Password); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"email": auth.NormalizeEmail(req.Email)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	session, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, loginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context(), tokenFromRequest(r)); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusNoContent, nil)
}

// targetEmail is the ?email= of the request, which has to be the caller's own.
// Without it the caller's identity is used.
func (s *Server) targetEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, auth.ErrUnauthenticated)
		return "", false
	}
	email := r.URL.Query().Get("email")
	if email == "" {
		return identity.Email, true
	}
	if auth.NormalizeEmail(email) != identity.Email {
		s.writeError(w, http.StatusForbidden, errForbidden)
		return "", false
	}
	return identity.Email, true
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	email, ok := s.targetEmail(w, r)
	if !ok {
		return
	}
	current, err := s.settings.Get(r.Context(), email)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, settingsResponse{LightSettings: current})
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	email, ok := s.targetEmail(w, r)
	if !ok {
		return
	}
	var patch settings.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.settings.Update(r.Context(), email, patch)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	resp := settingsResponse{LightSettings: result.Settings, TimerDisabled: result.TimerDisabled}
	if result.TimerDisabled {
		resp.Notice = constants.TimerDisabledNotice
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAutoLight(w http.ResponseWriter, r *http.Request) {
	email, ok := s.targetEmail(w, r)
	if !ok {
		return
	}
	c, err := s.lights.AutoLightColour(r.Context(), email)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleLightTimerColour(w http.ResponseWriter, r *http.Request) {
	email, ok := s.targetEmail(w, r)
	if !ok {
		return
	}
	c, err := s.lights.TimerColour(r.Context(), email)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if c == nil {
		s.writeJSON(w, http.StatusOK, nullColourResponse{})
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCurrentColour(w http.ResponseWriter, r *http.Request) {
	email, ok := s.targetEmail(w, r)
	if !ok {
		return
	}
	reading, err := s.lights.CurrentColour(r.Context(), email)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, reading)
}

func (s *Server) handleSun(w http.ResponseWriter, _ *http.Request) {
	rise, set := daylight.SunTimes(s.latitude, s.longitude, s.now().In(s.location))
	s.writeJSON(w, http.StatusOK, sunResponse{Sunrise: rise, Sunset: set})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	email, ok := s.targetEmail(w, r)
	if !ok {
		return
	}
	if s.events == nil || s.feed == nil {
		s.writeError(w, http.StatusNotFound, http.ErrNotSupported)
		return
	}

	s.feed.Subscribe(email)

	// the event server picks the stream from the query
	q := r.URL.Query()
	q.Set("stream", email)
	q.Del("token")
	r2 := r.Clone(r.Context())
	r2.URL.RawQuery = q.Encode()

	s.events.ServeHTTP(w, r2)
}
