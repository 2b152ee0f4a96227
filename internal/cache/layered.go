package cache

import (
	"errors"
	"time"
)

// LayeredCache reads through a fast cache in front of a slower one
type LayeredCache struct {
	fast Cache
	slow Cache
}

// NewLayeredCache layers fast (usually memory) over slow (usually disk)
func NewLayeredCache(fast, slow Cache) *LayeredCache {
	return &LayeredCache{fast: fast, slow: slow}
}

// Get checks the fast layer first and promotes slow-layer hits
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.fast.Get(key); found {
		return val, true
	}

	if val, found := c.slow.Get(key); found {
		_ = c.fast.Set(key, val, 0)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers. ttl applies to the fast layer only;
// the slow layer keeps entries for its own default TTL.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.fast.Set(key, value, ttl); err != nil {
		return err
	}
	return c.slow.Set(key, value, 0)
}

// Delete removes a value from both layers
func (c *LayeredCache) Delete(key string) error {
	return errors.Join(c.fast.Delete(key), c.slow.Delete(key))
}

// Clear empties both layers
func (c *LayeredCache) Clear() error {
	return errors.Join(c.fast.Clear(), c.slow.Clear())
}
