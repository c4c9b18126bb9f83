package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"advocate-directory/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Timeout for individual Redis operations so a hung cache cannot stall
// a request past its budget.
const redisOpTimeout = 5 * time.Second

// Batch size for collecting keys during namespace invalidation.
const invalidateScanCount = 500

// RedisCache is the Redis-backed ResultCache. Entries are stored as JSON
// under KeyPrefix-scoped keys with a server-side TTL, so expiry needs no
// process-local bookkeeping and the cache is shared across instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *RedisCache) Get(ctx context.Context, filter *entity.AdvocateFilter) (*entity.SearchResult, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	key := Key(filter)
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Redis get failed for %s, treating as miss: %v", key, err)
		}
		return nil, false
	}

	var result entity.SearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		c.log.Warnf("Corrupt cache entry at %s, treating as miss: %v", key, err)
		return nil, false
	}

	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, filter *entity.AdvocateFilter, result *entity.SearchResult) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	payload, err := json.Marshal(result)
	if err != nil {
		c.log.Warnf("Failed to serialize cache entry: %v", err)
		return
	}

	if err := c.client.Set(ctx, Key(filter), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Redis set failed, skipping cache write: %v", err)
	}
}

// InvalidateAll scans the KeyPrefix namespace and deletes every entry.
// SCAN instead of FLUSHDB so unrelated data in a shared database
// survives. Failures leave stale entries behind until their TTL elapses.
func (c *RedisCache) InvalidateAll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	iter := c.client.Scan(ctx, 0, KeyPrefix+"*", invalidateScanCount).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= invalidateScanCount {
			c.deleteKeys(ctx, keys)
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warnf("Redis scan failed during cache invalidation: %v", err)
		return
	}
	if len(keys) > 0 {
		c.deleteKeys(ctx, keys)
	}
}

func (c *RedisCache) deleteKeys(ctx context.Context, keys []string) {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Redis del failed during cache invalidation: %v", err)
	}
}
