package router

import (
	"net/http"

	"resto-hub/internal/handler"
	"resto-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	orderHandler *handler.OrderHandler,
	salesHandler *handler.SalesHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: Recovery -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", menuHandler.List)
		r.Get("/search", menuHandler.Search)
		r.Post("/", menuHandler.Create)
		r.Get("/{id}", menuHandler.GetByID)
		r.Put("/{id}", menuHandler.Update)
		r.Delete("/{id}", menuHandler.Delete)
		r.Patch("/{id}/availability", menuHandler.ToggleAvailability)
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", orderHandler.List)
		r.Get("/analytics/top-sellers", salesHandler.TopSellers)
		r.Post("/", orderHandler.Create)
		r.Get("/{id}", orderHandler.GetByID)
		r.Patch("/{id}/status", orderHandler.UpdateStatus)
	})

	return r
}
