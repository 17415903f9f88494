package blob

import (
	"context"
	"fmt"

	redisclient "github.com/pizzadelight/storefront/pkg/redis"
)

// RedisStore persists state blobs in Redis under the shared namespace.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore wraps an established redis client.
func NewRedisStore(client *redisclient.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.client.StateKey(key))
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.client.StateKey(key), value, 0)
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.client.StateKey(key))
}
