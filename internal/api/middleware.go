package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"flight-management-system/internal/models"
)

type contextKey string

const actorKey contextKey = "actor"

// actorFrom returns the authenticated actor attached by RequireAuth, or
// nil on unauthenticated routes.
func actorFrom(r *http.Request) *models.Actor {
	actor, _ := r.Context().Value(actorKey).(*models.Actor)
	return actor
}

// JSONMiddleware sets the response content type for API routes.
func JSONMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs every request with a correlation ID.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()[:8]
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s from %s (%v)", requestID, r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	})
}

// RequireAuth resolves the session actor and rejects unauthenticated
// requests. Role checks happen later, inside each operation; this only
// establishes identity.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := h.Sessions.Current(r)
		if err != nil {
			respondError(w, err)
			return
		}
		if actor == nil {
			respondJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required"})
			return
		}
		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
