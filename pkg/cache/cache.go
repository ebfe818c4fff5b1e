package cache

import "context"

// Cache is a generic key-value store for values that stay valid for the
// lifetime of the process. Entries are never expired or evicted.
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value, replacing any previous value for the key.
	Set(ctx context.Context, key string, value V) error

	// Has checks whether a key exists.
	Has(ctx context.Context, key string) (bool, error)

	// GetOrLoad returns the cached value for key, or calls fn to produce it.
	// A successful result is stored; errors are returned and nothing is cached.
	GetOrLoad(ctx context.Context, key string, fn LoadFunc[V]) (V, error)
}

// LoadFunc produces the value for a cache miss.
type LoadFunc[V any] func(ctx context.Context) (V, error)
