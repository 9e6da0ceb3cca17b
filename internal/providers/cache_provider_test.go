package providers

import (
	"bytes"
	"testing"
	"time"

	"ard/internal/structures"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/assert"
)

func cacheConfig(enabled bool, size int, interval time.Duration) *structures.Config {
	return &structures.Config{
		Cache: structures.CacheConfig{
			Enabled: enabled,
			Size:    size,
		},
		Schedule: structures.ScheduleConfig{
			Interval: interval,
		},
	}
}

func TestCacheProvider_DisabledReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(false, 10, 5*time.Second), &testLogger{})
	_, ok := c.Get("any")
	assert.False(t, ok)
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_ZeroSizeReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 0, 5*time.Second), &testLogger{})
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_EnabledReturnsCacheProvider(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &testLogger{})
	assert.IsType(t, &CacheProvider{}, c)
}

func TestCacheProvider_DefaultTTLIsTwoIntervals(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, time.Hour), &testLogger{})
	assert.Equal(t, 7200, c.(*CacheProvider).ttl)
}

func TestCacheProvider_ExplicitTTL(t *testing.T) {
	conf := cacheConfig(true, 1, time.Hour)
	conf.Cache.TTL = 90 * time.Second
	c := NewCacheProvider(conf, &testLogger{})
	assert.Equal(t, 90, c.(*CacheProvider).ttl)
}

func TestCacheProvider_SetAndGet(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &testLogger{})

	c.Set("key1", []byte("value1"))
	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []byte("value1"), val)
}

func TestCacheProvider_Miss(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &testLogger{})

	val, ok := c.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCacheProvider_Overwrite(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &testLogger{})

	c.Set("key1", []byte("v1"))
	c.Set("key1", []byte("v2"))

	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), val)
}

func TestNoopCache_AlwaysMiss(t *testing.T) {
	c := &noopCache{}
	c.Set("key1", []byte("value1"))

	val, ok := c.Get("key1")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCacheProvider_TTLExpiry(t *testing.T) {
	conf := cacheConfig(true, 1, time.Hour)
	conf.Cache.TTL = time.Second
	c := NewCacheProvider(conf, &testLogger{})

	c.Set("key1", []byte("value1"))
	_, ok := c.Get("key1")
	assert.True(t, ok)

	time.Sleep(2100 * time.Millisecond)

	_, ok = c.Get("key1")
	assert.False(t, ok)
}

func TestCacheProvider_RejectsOversizedEntry(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &testLogger{})

	err := c.Set("report:last", bytes.Repeat([]byte("a"), 2048))
	assert.ErrorIs(t, err, freecache.ErrLargeEntry)
	_, ok := c.Get("report:last")
	assert.False(t, ok)
}

func TestNoopCache_SetNeverFails(t *testing.T) {
	c := NewCacheProvider(cacheConfig(false, 1, 5*time.Second), &testLogger{})
	assert.NoError(t, c.Set("report:last", []byte("{}")))
}
