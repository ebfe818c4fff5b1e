// Package cache provides a generic, process-lifetime Cache interface and an
// in-memory implementation with stampede protection.
//
// Values stored in the cache never expire. The package targets data that is
// expensive to build once and immutable afterwards, such as parsed reference
// datasets.
//
// # Interface
//
// The [Cache] interface is generic over value type V:
//
//   - Get(ctx, key) (V, error) — retrieve a value
//   - Set(ctx, key, value) error — store a value
//   - Has(ctx, key) (bool, error) — check existence
//   - GetOrLoad(ctx, key, fn) (V, error) — retrieve or build a value
//
// # In-Memory Cache
//
// Use [NewMemory] to create a cache owned by one consumer:
//
//	c := cache.NewMemory[*Dataset]()
//
//	ds, err := c.GetOrLoad(ctx, "de", func(ctx context.Context) (*Dataset, error) {
//	    return parse(ctx, "de.json")
//	})
//
// If several goroutines miss on the same key at once, the loader runs once
// and all of them receive its result. Loader errors are never cached, so a
// later call retries. Loaders can return [ErrNotFound] to report that there
// is nothing to cache for a key.
//
// # Error Handling
//
//	v, err := c.Get(ctx, "key")
//	if errors.Is(err, cache.ErrNotFound) {
//	    // key does not exist
//	}
package cache
