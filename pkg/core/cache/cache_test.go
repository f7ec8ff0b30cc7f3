package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := New[int](DefaultConfig())

	_, ok := c.Get("H2O")
	assert.False(t, ok)

	c.Set("H2O", 3)
	v, ok := c.Get("H2O")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	c.Set("H2O", 4)
	v, _ = c.Get("H2O")
	assert.Equal(t, 4, v)
	assert.Equal(t, 1, c.Size())

	hits, misses, rate := c.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(1), misses)
	assert.InDelta(t, 66.67, rate, 0.01)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string](Config{MaxItems: 2})
	c.Set("a", "A")
	c.Set("b", "B")
	c.Get("a")
	c.Set("c", "C")

	_, ok := c.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestCache_TTL(t *testing.T) {
	c := New[int](Config{MaxItems: 4, TTL: time.Minute})
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("O2", 2)
	now = now.Add(30 * time.Second)
	_, ok := c.Get("O2")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.Get("O2")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 42, c.GetOrSet("k", compute))
	assert.Equal(t, 42, c.GetOrSet("k", compute))
	assert.Equal(t, 1, calls)
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[int](DefaultConfig())
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	c.Delete("missing")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int](Config{MaxItems: 16})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", (g+i)%32)
				c.GetOrSet(key, func() int { return i })
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Size(), 16)
}
