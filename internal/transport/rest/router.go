package rest

import (
	"database/sql"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterRoutes wires the liveness and readiness probes. The probe
// server has no other surface.
func RegisterRoutes(router *chi.Mux, db *sql.DB) {
	healthHandler := NewHealthHandler(db)

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)

	router.Get("/ping", healthHandler.pingHandler)
	router.Get("/health", healthHandler.healthCheckHandler)
}
