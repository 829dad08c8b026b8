package clientcache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateBuildsOncePerKey(t *testing.T) {
	cache := NewCache[*int]()
	var builds atomic.Int32

	var wg sync.WaitGroup
	results := make([]*int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := cache.GetOrCreate("k", func() (*int, error) {
				builds.Add(1)
				n := 42
				return &n, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestGetOrCreateDoesNotCacheErrors(t *testing.T) {
	cache := NewCache[string]()

	_, err := cache.GetOrCreate("k", func() (string, error) { return "", errors.New("boom") })
	require.Error(t, err)

	v, err := cache.GetOrCreate("k", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestConfigKey(t *testing.T) {
	a := ConfigKey("", "secret-a", nil)
	assert.Equal(t, a, ConfigKey("", "secret-a", nil))
	assert.NotEqual(t, a, ConfigKey("", "secret-b", nil))
	assert.NotEqual(t, a, ConfigKey("https://proxy.local", "secret-a", nil))
	assert.NotContains(t, a, "secret-a")
}
