package assess

import (
	"fmt"
	"testing"

	"github.com/fernwell/pulsecheck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	cache := NewCache(2)

	report := &Report{Unit: model.UnitSourcing, Fingerprint: "fp1"}
	cache.Put("fp1", report)

	got, ok := cache.Get("fp1")
	require.True(t, ok)
	assert.Same(t, report, got)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache(2)

	cache.Put("a", &Report{Fingerprint: "a"})
	cache.Put("b", &Report{Fingerprint: "b"})

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", &Report{Fingerprint: "c"})

	_, ok = cache.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_PutUpdatesExistingEntry(t *testing.T) {
	cache := NewCache(2)

	first := &Report{Fingerprint: "a"}
	second := &Report{Fingerprint: "a"}
	cache.Put("a", first)
	cache.Put("a", second)

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_Purge(t *testing.T) {
	cache := NewCache(4)
	for i := 0; i < 4; i++ {
		key := fmt.Sprintf("fp%d", i)
		cache.Put(key, &Report{Fingerprint: key})
	}
	require.Equal(t, 4, cache.Len())

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("fp0")
	assert.False(t, ok)
}

func TestNewCache_NonPositiveSizeFallsBack(t *testing.T) {
	cache := NewCache(0)
	for i := 0; i < DefaultCacheSize+5; i++ {
		key := fmt.Sprintf("fp%d", i)
		cache.Put(key, &Report{Fingerprint: key})
	}
	assert.Equal(t, DefaultCacheSize, cache.Len())
}
