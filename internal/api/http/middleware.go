package http

import (
	"net/http"
	"strings"
	"time"

	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/security"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with a correlation id and logs the
// request line with its outcome timing.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), requestID)))
		logger.Debug("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// AuthMiddleware validates the bearer token and stores the actor claims in
// the request context. Every ledger mutation reads its actor id from there.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			next.ServeHTTP(w, r.WithContext(withActor(r.Context(), claims)))
		})
	}
}
