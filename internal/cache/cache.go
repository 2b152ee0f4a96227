// Package cache stores raw dictionary responses keyed by request URL.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/ppiankov/textlens/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a lookup URL.
// The URL is case-folded so "Hello" and "hello" share an entry.
func CacheKey(url string) string {
	hash := sha256.Sum256([]byte(strings.ToLower(url)))
	return "textlens:v1:" + hex.EncodeToString(hash[:])
}

// New builds the cache described by cfg, or nil when caching is disabled
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	memory := NewMemoryCache(cfg.TTL, 10*time.Minute)
	if cfg.Dir == "" {
		return memory
	}
	return NewLayeredCache(memory, NewDiskCache(cfg.Dir, cfg.DiskTTL))
}
