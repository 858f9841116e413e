package cache

import (
	"context"
	"sync"

	"shipment-route-service/internal/platform/obs"
	"shipment-route-service/internal/ports"
)

// Memo is an append-only, in-process memo table. It lives for the lifetime
// of the process: entries are never evicted or replaced, and a missing key
// always means "not computed yet". Failed computations are not recorded.
//
// Concurrent misses on the same key may each run compute; the first result
// stored wins and is returned to every later caller.
//
// An optional Store is consulted on a miss before computing and receives every
// freshly computed value. Store failures are logged and never fail a lookup.
type Memo[V any] struct {
	name  string
	store ports.Store[V]

	mu    sync.RWMutex
	items map[string]V
}

func NewMemo[V any](name string, store ports.Store[V]) *Memo[V] {
	return &Memo[V]{
		name:  name,
		store: store,
		items: make(map[string]V),
	}
}

// Get returns the in-process value for key without consulting the store.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	return v, ok
}

// Len returns the number of in-process entries.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Memoize returns the value stored under key, computing and storing it on a
// miss. Errors from compute are returned as-is and nothing is stored.
func (m *Memo[V]) Memoize(
	ctx context.Context,
	key string,
	compute func(ctx context.Context) (V, error),
) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}

	log := obs.Logger(ctx).WithField("cache", m.name).WithField("key", key)

	if m.store != nil {
		v, ok, err := m.store.Get(ctx, key)
		switch {
		case err != nil:
			log.WithError(err).Warn("cache store read failed")
		case ok:
			return m.insert(key, v), nil
		}
	}

	v, err := compute(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	stored := m.insert(key, v)

	if m.store != nil {
		if err := m.store.Put(ctx, key, stored); err != nil {
			log.WithError(err).Warn("cache store write failed")
		}
	}

	return stored, nil
}

// Warm loads every key missing from the in-process table in one batched
// store lookup when the store supports it. It is a no-op otherwise.
func (m *Memo[V]) Warm(ctx context.Context, keys []string) {
	bs, ok := m.store.(ports.BatchStore[V])
	if !ok {
		return
	}

	misses := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := m.Get(k); !ok {
			misses = append(misses, k)
		}
	}
	if len(misses) == 0 {
		return
	}

	found, err := bs.GetMany(ctx, misses)
	if err != nil {
		obs.Logger(ctx).WithField("cache", m.name).WithError(err).Warn("cache store batch read failed")
		return
	}

	for k, v := range found {
		m.insert(k, v)
	}
}

// insert stores v under key unless a value is already present, and returns
// the value that ends up stored.
func (m *Memo[V]) insert(key string, v V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.items[key]; ok {
		return existing
	}
	m.items[key] = v
	return v
}
