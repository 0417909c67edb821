package postinginfra

import (
	"context"
	"time"

	"github.com/careerbuddy/compass/pkg/logx"
	"github.com/redis/go-redis/v9"
)

// RedisPageCache implements posting.PageCache on Redis. Every failure is
// treated as a cache miss so a Redis outage never degrades search.
type RedisPageCache struct {
	client *redis.Client
	prefix string
}

// NewRedisPageCache creates a Redis-backed page cache
func NewRedisPageCache(client *redis.Client, prefix string) *RedisPageCache {
	return &RedisPageCache{
		client: client,
		prefix: prefix,
	}
}

func (c *RedisPageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.prefix+":"+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.Debugf("Page cache get failed: %v", err)
		}
		return nil, false
	}
	return data, true
}

func (c *RedisPageCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, c.prefix+":"+key, data, ttl).Err(); err != nil {
		logx.Debugf("Page cache set failed: %v", err)
	}
}
