package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"placehub/internal/domain"
)

type Cache[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Set(ctx context.Context, key string, value *T) error
	Delete(ctx context.Context, key string) error
}

// JSONCache stores values as JSON under "<prefix>:<key>". A nil cache or a nil
// client turns every call into a no-op miss.
type JSONCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache[T any](client *redis.Client, prefix string, ttl time.Duration) *JSONCache[T] {
	return &JSONCache[T]{client: client, prefix: prefix, ttl: ttl}
}

func (c *JSONCache[T]) key(key string) string {
	return c.prefix + ":" + key
}

func (c *JSONCache[T]) Get(ctx context.Context, key string) (*T, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var out T
	if err := json.Unmarshal(value, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", c.prefix, err)
	}
	return &out, nil
}

func (c *JSONCache[T]) Set(ctx context.Context, key string, value *T) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.prefix, err)
	}
	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}

func (c *JSONCache[T]) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(key)).Err()
}

const AreasCacheKey = "all"

// AreasCache holds the full area list served by GET /api/areas.
func AreasCache(rdb *redis.Client) *JSONCache[[]domain.Area] {
	return NewJSONCache[[]domain.Area](rdb, "areas", time.Minute)
}
