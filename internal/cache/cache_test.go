package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New[string]()

	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestCache_GetMissingKey(t *testing.T) {
	c := New[string]()

	got, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestCache_Expiry(t *testing.T) {
	c := New[int]()
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("key", 42, time.Minute)

	// Still valid just before expiry.
	current = current.Add(59 * time.Second)
	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, 42, got)

	// Past expiry the entry is gone and stays gone.
	current = current.Add(2 * time.Minute)
	_, ok = c.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	current = current.Add(-2 * time.Minute)
	_, ok = c.Get("key")
	assert.False(t, ok, "expired entry must not reappear when the clock moves back")
}

func TestCache_DefaultTTL(t *testing.T) {
	c := New[string]()
	current := time.Now()
	c.now = func() time.Time { return current }

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "zero TTL", ttl: 0},
		{name: "negative TTL", ttl: -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Set("key", "value", tt.ttl)

			current = current.Add(DefaultTTL - time.Second)
			_, ok := c.Get("key")
			assert.True(t, ok, "entry should survive until the default TTL")

			current = current.Add(2 * time.Second)
			_, ok = c.Get("key")
			assert.False(t, ok, "entry should expire after the default TTL")

			current = current.Add(-DefaultTTL - time.Second)
		})
	}
}

func TestCache_OverwriteResetsExpiry(t *testing.T) {
	c := New[string]()
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("key", "old", time.Minute)

	current = current.Add(50 * time.Second)
	c.Set("key", "new", time.Minute)

	// The original expiry has passed, but the overwrite reset it.
	current = current.Add(30 * time.Second)
	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestCache_Delete(t *testing.T) {
	c := New[string]()

	c.Set("key", "value", time.Minute)
	c.Delete("key")

	_, ok := c.Get("key")
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	c.Delete("missing")
}

func TestCache_Clear(t *testing.T) {
	c := New[int]()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	require.Equal(t, 2, c.Len())

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%10)
			c.Set(key, i, time.Minute)
			c.Get(key)
			if i%7 == 0 {
				c.Delete(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 10)
}
