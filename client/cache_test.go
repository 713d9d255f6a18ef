package client

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedFetchesOncePerKey(t *testing.T) {
	cache := NewCache()
	calls := 0

	fetch := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := cached(cache, "objectives:list:", fetch)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = cached(cache, "objectives:list:", fetch)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestCachedNeverCachesErrors(t *testing.T) {
	cache := NewCache()
	calls := 0

	_, err := cached(cache, "k", func() (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	require.Error(t, err)

	v, err := cached(cache, "k", func() (int, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 2, calls)
}

func TestCachedCollapsesConcurrentFetches(t *testing.T) {
	cache := NewCache()
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func() (string, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cached(cache, "shared", fetch)
			assert.NoError(t, err)
			assert.Equal(t, "value", v)
		}()
	}

	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestInvalidateByPrefix(t *testing.T) {
	cache := NewCache()
	cache.set("objectives:list:a", 1)
	cache.set("objectives:stats", 2)
	cache.set("profile:me", 3)

	cache.Invalidate("objectives:")

	_, ok := cache.get("objectives:list:a")
	assert.False(t, ok)
	_, ok = cache.get("objectives:stats")
	assert.False(t, ok)
	_, ok = cache.get("profile:me")
	assert.True(t, ok)
}

func TestClearDropsEverything(t *testing.T) {
	cache := NewCache()
	cache.set("a", 1)
	cache.set("b", 2)

	cache.Clear()

	_, ok := cache.get("a")
	assert.False(t, ok)
	_, ok = cache.get("b")
	assert.False(t, ok)
}
