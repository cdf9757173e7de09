package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domain "geoshare/internal/domain/geocoding"
	"geoshare/internal/shared/logger"
)

const (
	// Key format: geocode:{lat4}:{lon4} — coordinates rounded to 4 decimals
	// (~11m), close enough that nearby requests share an entry.
	geocodeKeyPrefix = "geocode:"

	defaultCacheTTL = 60 * time.Minute
)

// CachedReverser wraps a Reverser with a Redis read-through cache. Cache
// failures are logged and ignored: a broken cache must never take the
// geocoding path down with it.
type CachedReverser struct {
	inner  domain.Reverser
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedReverser(inner domain.Reverser, client *redis.Client, ttlMinutes int, logger logger.Interface) *CachedReverser {
	ttl := defaultCacheTTL
	if ttlMinutes > 0 {
		ttl = time.Duration(ttlMinutes) * time.Minute
	}
	return &CachedReverser{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

var _ domain.Reverser = (*CachedReverser)(nil)

func (c *CachedReverser) Reverse(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	key := geocodeKey(lat, lon)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		var loc domain.Location
		if err := json.Unmarshal([]byte(cached), &loc); err == nil {
			return &loc, nil
		}
		c.logger.Warnw("dropping corrupt geocode cache entry", "key", key)
		c.client.Del(ctx, key)
	} else if err != redis.Nil {
		c.logger.Warnw("geocode cache read failed", "error", err, "key", key)
	}

	loc, err := c.inner.Reverse(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(loc); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warnw("geocode cache write failed", "error", err, "key", key)
		}
	}

	return loc, nil
}

func geocodeKey(lat, lon float64) string {
	return fmt.Sprintf("%s%.4f:%.4f", geocodeKeyPrefix, lat, lon)
}
