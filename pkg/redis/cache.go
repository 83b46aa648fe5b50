package redis

import (
	"context"
	"encoding/json"
	"time"
)

// Cache is a small JSON read-through cache on top of the shared Redis
// client. Values are marshaled by the caller's type; a miss is not an
// error.
type Cache struct {
	ttl time.Duration
}

var (
	setCacheValue = Set
	getCacheValue = Get
	delCacheValue = Del
)

// NewCache creates a cache whose entries expire after ttl
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// GetJSON loads the value under key into dest. The second return value
// reports whether the key was present.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := getCacheValue(ctx, "cache:"+key)
	if err != nil {
		if IsNil(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key with the cache TTL
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return setCacheValue(ctx, "cache:"+key, string(raw), c.ttl)
}

// Invalidate drops the entry under key
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return delCacheValue(ctx, "cache:"+key)
}
