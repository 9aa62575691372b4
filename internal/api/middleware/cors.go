package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS builds the CORS policy for the advisory dashboard. The API is
// read-mostly; only GET, POST and preflight are allowed, and X-API-Key is
// accepted so the dashboard can reach the protected refresh endpoint.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"X-API-Key",
		},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
