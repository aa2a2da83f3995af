package viewstate

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gomodule/redigo/redis"
	cache "github.com/mrz1836/go-cache"

	"github.com/mrz1836/opsdeck/internal/errors"
)

// Redis connection pool settings. View-state traffic is one key per
// toggle, so the pool stays small.
const (
	redisMaxActive   = 10
	redisMaxIdle     = 2
	redisIdleTimeout = 240 * time.Second
)

// RedisKV is a KV backed by Redis through go-cache, for deployments where
// the console runs on more than one host and view state should follow the
// user. Writes remain last-write-wins.
type RedisKV struct {
	client *cache.Client
}

// NewRedisKV connects to Redis at the given URL (redis://host:port).
func NewRedisKV(ctx context.Context, url string) (*RedisKV, error) {
	if url == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue, "redis url")
	}
	client, err := cache.Connect(ctx, url, redisMaxActive, redisMaxIdle, 0, redisIdleTimeout, false, false)
	if err != nil {
		return nil, errors.Wrap(errors.ErrViewStateUnavailable, err.Error())
	}
	return &RedisKV{client: client}, nil
}

// Get returns the value for key. A missing key is not an error.
func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := cache.Get(ctx, r.client, key)
	if err != nil {
		if stderrors.Is(err, redis.ErrNil) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "failed to read view state from redis")
	}
	return value, true, nil
}

// Set stores the value for key with no expiry; view state never ages out.
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := cache.Set(ctx, r.client, key, value); err != nil {
		return errors.Wrap(err, "failed to write view state to redis")
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *RedisKV) Close() error {
	r.client.Close()
	return nil
}

// Ensure RedisKV implements KV.
var _ KV = (*RedisKV)(nil)
