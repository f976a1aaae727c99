package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c := New(ttl)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSetGet(t *testing.T) {
	c := setupCache(t, time.Minute)

	c.Set("k", "v")
	got, found := c.Get("k")
	assert.True(t, found)
	assert.Equal(t, "v", got)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := setupCache(t, 10*time.Millisecond)

	c.Set("k", "v")
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("k")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := setupCache(t, time.Minute)

	c.Set("products:list:a", 1)
	c.Set("products:list:b", 2)
	c.Set("product:zk-001", 3)

	c.DeleteByPrefix("products:list:")

	_, found := c.Get("products:list:a")
	assert.False(t, found)
	_, found = c.Get("products:list:b")
	assert.False(t, found)
	_, found = c.Get("product:zk-001")
	assert.True(t, found)
}

func TestDelete(t *testing.T) {
	c := setupCache(t, time.Minute)

	c.Set("k", "v")
	c.Delete("k")

	_, found := c.Get("k")
	assert.False(t, found)
	assert.Equal(t, 0, c.Len())
}
