package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type payload struct {
	Letter string `json:"letter"`
}

func TestResponseCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour, newFakeClock())

	_, ok := Lookup[payload](ctx, c, "letter:a")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "letter:a", payload{Letter: "Dear team"}))

	got, ok := Lookup[payload](ctx, c, "letter:a")
	require.True(t, ok)
	assert.Equal(t, "Dear team", got.Letter)
}

func TestResponseCacheExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryStore(time.Hour, clock)
	c := New(store)

	require.NoError(t, c.Set(ctx, "k", "v"))

	clock.Advance(time.Hour - time.Millisecond)
	v, ok := Lookup[string](ctx, c, "k")
	require.True(t, ok, "entry must be visible just before the TTL")
	assert.Equal(t, "v", v)

	clock.Advance(time.Millisecond)
	_, ok = Lookup[string](ctx, c, "k")
	assert.True(t, ok, "entry is still visible exactly at the TTL")

	clock.Advance(time.Millisecond)
	_, ok = Lookup[string](ctx, c, "k")
	assert.False(t, ok, "entry must be gone just after the TTL")
	assert.Equal(t, 0, store.Len(), "expired entry is purged by the lookup")
}

func TestResponseCacheOverwriteResetsAge(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	c := NewMemory(time.Minute, clock)

	require.NoError(t, c.Set(ctx, "k", "first"))
	clock.Advance(50 * time.Second)
	require.NoError(t, c.Set(ctx, "k", "second"))
	clock.Advance(50 * time.Second)

	v, ok := Lookup[string](ctx, c, "k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestResponseCacheClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour, nil)

	require.NoError(t, c.Set(ctx, "a", 1))
	require.NoError(t, c.Set(ctx, "b", 2))
	require.NoError(t, c.Clear(ctx))

	_, ok := Lookup[int](ctx, c, "a")
	assert.False(t, ok)
	_, ok = Lookup[int](ctx, c, "b")
	assert.False(t, ok)
}

func TestResponseCacheUndecodableEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour, nil)
	require.NoError(t, store.Set(ctx, "k", []byte("{not json")))

	_, ok := Lookup[payload](ctx, New(store), "k")
	assert.False(t, ok)
}

func TestResponseCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour, nil)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Set(ctx, "shared", i)
			_, _ = Lookup[int](ctx, c, "shared")
		}(i)
	}
	wg.Wait()

	_, ok := Lookup[int](ctx, c, "shared")
	assert.True(t, ok)
}

func TestRedisStoreFailsSoftWhenUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := New(NewRedisStore(client, "test:", time.Hour))
	ctx := context.Background()

	_, ok := Lookup[string](ctx, c, "k")
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, "k", "v"))
	assert.Error(t, c.Ping(ctx))
}
