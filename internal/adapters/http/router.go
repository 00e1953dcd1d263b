// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/conductorhq/conductor/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Global middleware is applied in the order given; sessionAuth guards every
// route except registration, login, the OAuth callback, and health probes.
func NewRouter(
	automationHandler *handlers.AutomationHandler,
	connectionHandler *handlers.ConnectionHandler,
	accountHandler *handlers.AccountHandler,
	healthHandler *handlers.HealthHandler,
	sessionAuth func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/healthz", healthHandler.Liveness)
	r.Get("/readyz", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Open routes: no session exists yet, or the caller is the OAuth
		// provider redirecting the user's browser back.
		r.Post("/auth/register", accountHandler.Register)
		r.Post("/auth/login", accountHandler.Login)
		r.Get("/connect/{service}/callback", connectionHandler.Callback)

		r.Group(func(r chi.Router) {
			r.Use(sessionAuth)

			r.Post("/auth/logout", accountHandler.Logout)

			// Credential lifecycle.
			r.Get("/connect/{service}", connectionHandler.BeginGrant)
			r.Delete("/connect/{service}", connectionHandler.Disconnect)
			r.Get("/connections", connectionHandler.ListConnections)

			// Command execution and rollback.
			r.Post("/commands", automationHandler.SubmitCommand)
			r.Get("/actions", automationHandler.ListActions)
			r.Get("/actions/{id}", automationHandler.GetAction)
			r.Post("/actions/{id}/rollback", automationHandler.RollbackAction)
		})
	})

	return r
}
