package cachedresults

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DefaultExpiration = 90 * time.Minute

// Cache stores JSON encoded lookup results in Redis. A Cache without a
// backing store misses on every Get and ignores every Set.
type Cache struct {
	Cache *cache.Cache[string]
}

func (c *Cache) Setup(client *redis.Client, expiration time.Duration) {
	if client == nil {
		return
	}
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	c.Cache = cache.New[string](redisStore)
}

func (c *Cache) Enabled() bool {
	return c != nil && c.Cache != nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to encode cached result")
		return
	}

	if err := c.Cache.Set(ctx, key, string(encoded)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to store cached result")
	}
}

// Get decodes the cached value for key into a new T. The second return value
// is false on a miss or when the cached value cannot be decoded.
func Get[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var value T

	if !c.Enabled() {
		return value, false
	}

	encoded, err := c.Cache.Get(ctx, key)
	if err != nil {
		return value, false
	}

	if err := json.Unmarshal([]byte(encoded), &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cached result")
		return value, false
	}

	return value, true
}
