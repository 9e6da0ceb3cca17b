package providers

import "ard/internal/structures"

// ReportCache instruments the cache that serves GET /report. Reads are
// counted per key; writes publish the stored entry size, and writes refused
// by freecache are counted and handed back to the caller.
type ReportCache struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *ReportCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits(key)
	} else {
		c.metrics.IncCacheMisses(key)
	}
	return val, ok
}

func (c *ReportCache) Set(key string, value []byte) error {
	if err := c.inner.Set(key, value); err != nil {
		c.metrics.IncCacheRejected(key)
		return err
	}
	c.metrics.SetCacheEntryBytes(key, len(value))
	return nil
}

// NewInstrumentedCacheProvider leaves a disabled cache unwrapped so it does
// not report a miss on every /report request.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, ok := inner.(*noopCache); ok {
		return inner
	}
	return &ReportCache{
		inner:   inner,
		metrics: metrics,
	}
}
