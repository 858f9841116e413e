package ports

import "context"

// Port: a persistent key/value tier behind an in-process memo.
// A missing key is reported as ok=false with a nil error.
type Store[V any] interface {
	Get(ctx context.Context, key string) (value V, ok bool, err error)
	Put(ctx context.Context, key string, value V) error
}

// Optional extension of Store that supports batched lookups.
type BatchStore[V any] interface {
	Store[V]
	// Return the stored values for the keys that are present.
	GetMany(ctx context.Context, keys []string) (map[string]V, error)
}

// Port: an in-process memo table, optionally backed by a Store.
type Memo[V any] interface {
	Memoize(ctx context.Context, key string, compute func(ctx context.Context) (V, error)) (V, error)
	Warm(ctx context.Context, keys []string)
}
