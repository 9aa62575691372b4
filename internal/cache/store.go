// Package cache persists one trading-state record per (user, stock, model)
// series behind a minimal key-value storage port, so the same synchronizer
// works against any durable backend. Unparseable stored data is always
// treated as absent, never as an error.
package cache

import (
	"context"
	"strings"
)

// Store is the storage port the engine persists through. Implementations must
// treat keys as opaque strings.
type Store interface {
	// Get returns the stored value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

// GuestUserID is used in cache keys when no user identity is available.
const GuestUserID = "guest"

// Key builds the cache key for a (user, stock, model) series. An empty userID
// maps to the guest identity. All components are sanitized so the composed
// key is safe for any backend.
func Key(userID, symbol, modelClass string) string {
	if strings.TrimSpace(userID) == "" {
		userID = GuestUserID
	}
	parts := []string{
		sanitize(userID),
		sanitize(strings.ToUpper(strings.TrimSpace(symbol))),
		sanitize(strings.ToLower(strings.TrimSpace(modelClass))),
	}
	return "trading:" + strings.Join(parts, ":")
}

// sanitize replaces any character outside [A-Za-z0-9._-] with an underscore.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
