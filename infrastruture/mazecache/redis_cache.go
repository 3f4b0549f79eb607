package mazecache

import (
	"context"
	"errors"
	"time"

	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const fillLockTTL = 30 * time.Second

// RedisCache stores encoded mazes in Redis. Concurrent misses on the same
// key are serialized by a redsync lock so a maze is generated once.
type RedisCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisCache creates a cache whose entries expire after ttlSeconds.
func NewRedisCache(client *redis.Client, ttlSeconds int) i.MazeCache {
	pool := goredis.NewPool(client)
	return &RedisCache{
		client: client,
		locker: redsync.New(pool),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Fetch implements i.MazeCache.
func (rc *RedisCache) Fetch(ctx context.Context, key string, fill func() ([]byte, error)) ([]byte, error) {
	if b, err := rc.get(ctx, key); err == nil || !errors.Is(err, redis.Nil) {
		return b, err
	}

	mutex := rc.locker.NewMutex(key+":fill_lock", redsync.WithExpiry(fillLockTTL))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// Another holder may have filled the key while we waited.
	if b, err := rc.get(ctx, key); err == nil || !errors.Is(err, redis.Nil) {
		return b, err
	}

	b, err := fill()
	if err != nil {
		return nil, err
	}
	return b, rc.Store(ctx, key, b)
}

// Store implements i.MazeCache.
func (rc *RedisCache) Store(ctx context.Context, key string, b []byte) error {
	return rc.client.Set(ctx, key, b, rc.ttl).Err()
}

func (rc *RedisCache) get(ctx context.Context, key string) ([]byte, error) {
	return rc.client.Get(ctx, key).Bytes()
}
