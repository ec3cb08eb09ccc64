package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/glow/internal/auth"
	"github.com/wheelibin/glow/internal/repos"
	"github.com/wheelibin/glow/internal/settings"
)

var (
	errBadRequestBody = errors.New("invalid request body")
	errForbidden      = errors.New("not allowed to access another user's light")
)

type errorResponse struct {
	Error string `json:"error"`
}

type responder struct {
	logger *log.Logger
}

func (r responder) writeJSON(w http.ResponseWriter, status int, payload any) {
	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.logger.Error("failed to encode response", "err", err)
	}
}

func (r responder) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		r.logger.Error("request failed", "status", status, "err", err)
		r.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}
	r.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeServiceError maps service errors onto status codes.
func (r responder) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repos.ErrNotFound):
		r.writeError(w, http.StatusNotFound, errors.New("user not found"))
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUnauthenticated):
		r.writeError(w, http.StatusUnauthorized, err)
	case errors.Is(err, auth.ErrEmailTaken):
		r.writeError(w, http.StatusConflict, err)
	case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrWeakPassword), errors.Is(err, settings.ErrInvalidSettings):
		r.writeError(w, http.StatusBadRequest, err)
	default:
		r.writeError(w, http.StatusInternalServerError, err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errBadRequestBody
	}
	return nil
}
