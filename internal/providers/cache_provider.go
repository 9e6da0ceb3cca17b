package providers

import (
	"time"
	"unsafe"

	"github.com/coocood/freecache"

	"ard/internal/structures"
)

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

// NewCacheProvider keeps entries until the next scheduled run has had time to
// replace them: TTL defaults to two schedule intervals when cache.ttl is unset.
func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	ttl := conf.Cache.TTL
	if ttl <= 0 {
		ttl = 2 * conf.Schedule.Interval
	}
	ttlSeconds := max(int(ttl/time.Second), 1)

	logger.Infof(TypeApp, "Cache initialized: %dMB, TTL=%ds", conf.Cache.Size, ttlSeconds)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttlSeconds,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// freecache copies keys internally, so the result is never mutated.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set fails with freecache.ErrLargeEntry when the entry exceeds 1/1024 of the cache.
func (c *CacheProvider) Set(key string, value []byte) error {
	return c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool)  { return nil, false }
func (n *noopCache) Set(_ string, _ []byte) error { return nil }
