package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkpassport/go-zkpassport/cache"
)

func TestSetAndGet(t *testing.T) {
	c := cache.NewInMemoryCache[string](16, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("root", "latest")
	got, ok := c.Get("root")
	require.True(t, ok)
	assert.Equal(t, "latest", got)
}

func TestPerEntryTTLOverride(t *testing.T) {
	c := cache.NewInMemoryCache[int](16, time.Minute)

	c.Set("short", 1, 10*time.Millisecond)
	c.Set("long", 2)

	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("short")
	assert.False(t, ok)
	got, ok := c.Get("long")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestDeleteAndClear(t *testing.T) {
	c := cache.NewInMemoryCache[string](16, time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)
}
