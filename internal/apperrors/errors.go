package apperrors

import "errors"

// Gateway errors represent failures while reading from the remote signal or
// price provider. These are transient by definition and are recovered locally
// by degrading to cached or simulated data; they are never surfaced to the UI.
var (
	// ErrGatewayUnavailable indicates that a remote read failed at the network,
	// HTTP, or payload-parsing level.
	ErrGatewayUnavailable = errors.New("market data gateway unavailable")

	// ErrSignalHistoryEmpty indicates that the signal provider responded but
	// returned no usable signals for the requested range.
	ErrSignalHistoryEmpty = errors.New("signal history empty")

	// ErrPriceHistoryEmpty indicates that the price provider responded but
	// returned no bars for the requested symbol.
	ErrPriceHistoryEmpty = errors.New("price history empty")
)

// Cache errors represent problems with locally persisted trading state.
// Corruption is always treated as a cache miss, never as a fatal condition.
var (
	// ErrCacheCorrupt indicates that a stored payload could not be decoded.
	ErrCacheCorrupt = errors.New("cache payload corrupt")

	// ErrCacheUnavailable indicates that the backing key-value store itself
	// failed (connection, I/O).
	ErrCacheUnavailable = errors.New("cache store unavailable")
)

// Input errors are the one category surfaced to callers, since they signal a
// configuration bug upstream rather than a transient condition.
var (
	// ErrInvalidCapital indicates a non-positive initial capital.
	ErrInvalidCapital = errors.New("initial capital must be positive")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidModelClass indicates an unknown signal model class.
	ErrInvalidModelClass = errors.New("invalid model class")

	// ErrInvalidSymbol indicates an empty or malformed stock symbol.
	ErrInvalidSymbol = errors.New("invalid stock symbol")
)
