package cache

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memory is an in-memory cache owned by a single consumer.
//
// Each Memory carries its own singleflight group, so concurrent misses for
// the same key run the loader once per instance and two instances never
// share in-flight work or stored values.
type Memory[V any] struct {
	items map[string]V
	group singleflight.Group
	mu    sync.RWMutex
}

// NewMemory creates an empty in-memory cache.
//
// Example:
//
//	c := cache.NewMemory[*Dataset]()
//	ds, err := c.GetOrLoad(ctx, "en", func(ctx context.Context) (*Dataset, error) {
//	    return readDataset(ctx, "en")
//	})
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{
		items: make(map[string]V),
	}
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return v, nil
}

// Set stores a value under key.
func (m *Memory[V]) Set(_ context.Context, key string, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

// Has checks whether a key exists.
func (m *Memory[V]) Has(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.items[key]
	return ok, nil
}

// Len returns the number of stored entries.
func (m *Memory[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

// Keys returns the stored keys in ascending order.
func (m *Memory[V]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// GetOrLoad retrieves a value from the cache, or calls fn to compute it on a miss.
// Concurrent callers missing on the same key share a single fn call.
// If fn returns an error, the value is not cached and the error is returned
// to every waiting caller.
func (m *Memory[V]) GetOrLoad(ctx context.Context, key string, fn LoadFunc[V]) (V, error) {
	if fn == nil {
		var zero V
		return zero, ErrNilLoader
	}

	// Fast path: try cache first.
	if v, err := m.Get(ctx, key); err == nil {
		return v, nil
	}

	// Slow path: deduplicate concurrent misses.
	v, err, _ := m.group.Do(key, func() (any, error) {
		// Another caller may have stored the value between the fast path
		// and entering the group.
		if v, err := m.Get(ctx, key); err == nil {
			return v, nil
		}

		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.items[key] = val
		m.mu.Unlock()

		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return v.(V), nil
}

var _ Cache[any] = (*Memory[any])(nil)
