package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/lessonbell-backend/internal/transport/middleware"
)

// RouterDeps are the handlers and middleware the HTTP API is assembled from.
type RouterDeps struct {
	Lessons       *LessonHandler
	Notifications *NotificationHandler
	Health        *HealthHandler
	// Metrics is served at /metrics when set.
	Metrics http.Handler
	// Middleware wraps every route, outermost first. Nil entries are skipped.
	Middleware []middleware.Middleware
	// Auth resolves the bearer token on /api routes.
	Auth middleware.Middleware
}

// NewRouter builds the HTTP API. Probes and metrics are public; everything
// under /api requires a TEACHER token.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(d.Middleware...))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Chain(d.Auth, middleware.RequireTeacher))
		r.Mount("/lessons", d.Lessons.Routes())
		r.Mount("/notifications", d.Notifications.Routes())
	})

	return r
}
