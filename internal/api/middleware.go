package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/wheelibin/glow/internal/auth"
	"github.com/wheelibin/glow/internal/models"
)

type contextKey int

const identityKey contextKey = iota

func identityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey).(models.Identity)
	return id, ok
}

// bearer header first, then ?token= for EventSource clients that cannot set headers
func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return r.URL.Query().Get("token")
}

func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			s.writeError(w, http.StatusUnauthorized, auth.ErrUnauthenticated)
			return
		}

		identity, err := s.auth.Authenticate(r.Context(), token)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// event streams need to flush through the recorder
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
