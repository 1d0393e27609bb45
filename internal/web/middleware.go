package web

import (
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/notes-craft/internal/logger"
)

const requestIDHeader = "X-Request-Id"

var reShortID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// withRequestID tags the request context with an id used by every log line
// the request produces.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !validRequestID(id) {
			id = logger.NewRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), id)
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		s.logger.Debug(ctx, "%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

// validRequestID accepts a UUID or a short token of letters, digits, '-' and '_'.
func validRequestID(id string) bool {
	if _, err := uuid.Parse(id); err == nil {
		return true
	}
	return reShortID.MatchString(id)
}
