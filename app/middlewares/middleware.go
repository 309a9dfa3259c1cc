package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/crumbandco/bakeshop/app/utils/sessions"
	"go.uber.org/zap"
)

type contextKey string

const (
	// VisitorIDKey carries the cookie-backed visitor id through the
	// request context.
	VisitorIDKey contextKey = "visitor_id"
)

// VisitorID pulls the visitor id a VisitorMiddleware stored on the request.
func VisitorID(r *http.Request) string {
	id, _ := r.Context().Value(VisitorIDKey).(string)
	return id
}

// VisitorMiddleware guarantees every request carries a visitor id, minting
// a cookie for first-time visitors.
func VisitorMiddleware(store sessions.VisitorStore, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := store.EnsureVisitorID(w, r)
			if err != nil {
				log.Warnf("failed to establish visitor session on %s: %v", r.URL.Path, err)
			}
			ctx := context.WithValue(r.Context(), VisitorIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
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
