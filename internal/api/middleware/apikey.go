package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/api/response"
)

// APIKeyMiddleware guards operational endpoints (cache refresh) with a shared
// key from the INTERNAL_API_KEY environment variable, supplied by the caller
// in the X-API-Key header. If no key is configured, all requests are
// rejected.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "API key not configured")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
