package cache

import (
	"unsafe"

	"github.com/coocood/freecache"
	"github.com/mahaatv/backend/internal/infrastructure/metrics"
	"github.com/mahaatv/backend/internal/pkg/config"
	"github.com/mahaatv/backend/internal/pkg/logger"
)

// ResponseCache stores rendered response bodies by key
type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// FreeCache is a ResponseCache with a fixed memory budget and per-entry TTL.
// Entries larger than 1/1024 of the budget are silently not stored.
type FreeCache struct {
	cache *freecache.Cache
	ttl   int
}

// NewResponseCache creates the cache described by conf, or a no-op cache
// when caching is disabled
func NewResponseCache(conf config.CacheConfig) ResponseCache {
	if !conf.Enabled || conf.SizeMB <= 0 {
		logger.Info().Msg("Response cache disabled")
		return &noopCache{}
	}

	logger.Info().
		Int("size_mb", conf.SizeMB).
		Int("ttl_seconds", conf.TTL).
		Msg("Response cache initialized")

	return &FreeCache{
		cache: freecache.NewCache(conf.SizeMB * 1024 * 1024),
		ttl:   max(conf.TTL, 1),
	}
}

// stringBytes views a key as bytes without copying; freecache copies keys
func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *FreeCache) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(stringBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *FreeCache) Set(key string, value []byte) {
	_ = c.cache.Set(stringBytes(key), value, c.ttl)
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}

// instrumentedCache counts hits and misses of an inner cache
type instrumentedCache struct {
	inner   ResponseCache
	metrics metrics.Recorder
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return val, ok
}

func (c *instrumentedCache) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

// NewInstrumentedResponseCache wraps the configured cache with hit/miss
// counters. A disabled cache is returned bare so it reports no misses.
func NewInstrumentedResponseCache(conf config.CacheConfig, rec metrics.Recorder) ResponseCache {
	inner := NewResponseCache(conf)
	if _, disabled := inner.(*noopCache); disabled {
		return inner
	}
	return &instrumentedCache{inner: inner, metrics: rec}
}
