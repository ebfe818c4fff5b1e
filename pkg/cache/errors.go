package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key does not exist in the cache.
	// Loaders may also return it to signal that nothing exists to be cached.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrNilLoader is returned by GetOrLoad when no loader function is given.
	ErrNilLoader = errors.New("cache: loader cannot be nil")
)
