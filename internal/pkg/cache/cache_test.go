package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_GetSet(t *testing.T) {
	c := NewTTLCache(time.Minute)

	_, ok := c.Get("stats")
	assert.False(t, ok)

	c.Set("stats", 42)
	v, ok := c.Get("stats")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestTTLCache_Expiry(t *testing.T) {
	c := NewTTLCache(time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.Set("stats", "cached")

	c.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok := c.Get("stats")
	assert.True(t, ok)

	c.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok = c.Get("stats")
	assert.False(t, ok)
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := NewTTLCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.InvalidateAll()
	_, ok = c.Get("b")
	assert.False(t, ok)
}
