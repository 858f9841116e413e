package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps JSON-encoded values under "<prefix>:<key>" with no
// expiry, matching the memo's no-eviction contract.
type RedisStore[V any] struct {
	client *redis.Client
	prefix string
}

func NewRedisStore[V any](client *redis.Client, prefix string) *RedisStore[V] {
	return &RedisStore[V]{client: client, prefix: prefix}
}

func (s *RedisStore[V]) redisKey(key string) string {
	return s.prefix + ":" + key
}

func (s *RedisStore[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if s.client == nil {
		return zero, false, errors.New("redis store: client is nil")
	}

	raw, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("redis store get %q: %w", key, err)
	}

	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false, fmt.Errorf("redis store get %q: decode: %w", key, err)
	}

	return v, true, nil
}

// GetMany fetches all present keys with a single MGET.
func (s *RedisStore[V]) GetMany(ctx context.Context, keys []string) (map[string]V, error) {
	if s.client == nil {
		return nil, errors.New("redis store: client is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]V{}, nil
	}

	redisKeys := make([]string, 0, len(uniq))
	for _, k := range uniq {
		redisKeys = append(redisKeys, s.redisKey(k))
	}

	vals, err := s.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis store mget: %w", err)
	}

	out := make(map[string]V, len(uniq))
	for i, raw := range vals {
		str, ok := raw.(string)
		if !ok {
			continue
		}

		var v V
		if err := json.Unmarshal([]byte(str), &v); err != nil {
			return nil, fmt.Errorf("redis store mget %q: decode: %w", uniq[i], err)
		}
		out[uniq[i]] = v
	}

	return out, nil
}

// Put uses SETNX so an existing value is never replaced.
func (s *RedisStore[V]) Put(ctx context.Context, key string, v V) error {
	if s.client == nil {
		return errors.New("redis store: client is nil")
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("redis store put %q: encode: %w", key, err)
	}

	if err := s.client.SetNX(ctx, s.redisKey(key), payload, 0).Err(); err != nil {
		return fmt.Errorf("redis store put %q: %w", key, err)
	}

	return nil
}
