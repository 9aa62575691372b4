package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/api/handlers"
	custommiddleware "github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/api/middleware"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/config"
	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	advisoryService *service.AdvisoryService,
	refresher handlers.Refresher,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		advisoryHandler := handlers.NewAdvisoryHandler(advisoryService, refresher)

		r.Route("/advisory", func(r chi.Router) {
			r.Get("/trading", advisoryHandler.Trading)
			r.With(custommiddleware.APIKeyMiddleware).Post("/refresh", advisoryHandler.Refresh)
		})

		r.Route("/stocks", func(r chi.Router) {
			r.Get("/{symbol}/history", advisoryHandler.StockHistory)
		})
	})

	return r
}
