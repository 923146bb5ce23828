// Package http provides HTTP routing and middleware configuration
// for the child-health tracking service.
package http

import (
	"net/http"

	"github.com/avolkova/kidtrack/internal/middleware"
	"github.com/avolkova/kidtrack/internal/session"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns the HTTP handler serving the API.
//
// Routes:
//
//	GET  /health        → healthHandler.Check
//	POST /auth/signup   → authHandler.SignUp
//	POST /auth/login    → authHandler.Login
//	POST /children      → childrenHandler.Create  (session required)
//	GET  /children      → childrenHandler.List    (session required)
//	POST /medications   → medicationsHandler.Create (session required)
//	GET  /medications   → medicationsHandler.List   (session required)
//	POST /sleep         → sleepHandler.Create     (session required)
//	GET  /sleep         → sleepHandler.List       (session required)
//
// Middleware chain (applied in order):
//  1. AllowContentType("application/json") — rejects non-JSON request bodies
//  2. WithRequestLogging(logger)           — logs incoming requests
//  3. SessionAuth (resource group only)    — enforces bearer-token auth
func NewRouter(
	authHandler *AuthHandler,
	childrenHandler *ChildrenHandler,
	medicationsHandler *MedicationsHandler,
	sleepHandler *SleepHandler,
	healthHandler *HealthHandler,
	sessions *session.Manager,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json.
	// Bodyless requests (the GET listings) pass through.
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Public endpoints
	r.Get("/health", healthHandler.Check)
	r.Post("/auth/signup", authHandler.SignUp)
	r.Post("/auth/login", authHandler.Login)

	// Protected group: requires a valid session token
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(sessions))

		r.Post("/children", childrenHandler.Create)
		r.Get("/children", childrenHandler.List)

		r.Post("/medications", medicationsHandler.Create)
		r.Get("/medications", medicationsHandler.List)

		r.Post("/sleep", sleepHandler.Create)
		r.Get("/sleep", sleepHandler.List)
	})

	return r
}
