package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoCachesWithinTTL(t *testing.T) {
	g := New(time.Minute)
	calls := 0

	for i := 0; i < 3; i++ {
		v, err := g.Do("farms", func() (any, error) {
			calls++
			return "payload", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "payload", v)
	}
	assert.Equal(t, 1, calls)
}

func TestDoRefetchesAfterExpiry(t *testing.T) {
	g := New(time.Minute)
	current := time.Unix(1000, 0)
	g.now = func() time.Time { return current }

	calls := 0
	fetch := func() (any, error) {
		calls++
		return calls, nil
	}

	_, err := g.Do("k", fetch)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	v, err := g.Do("k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}

func TestDoDoesNotCacheErrors(t *testing.T) {
	g := New(time.Minute)
	calls := 0

	boom := errors.New("boom")
	_, err := g.Do("k", func() (any, error) {
		calls++
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	v, err := g.Do("k", func() (any, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestInvalidatePrefix(t *testing.T) {
	g := New(time.Minute)
	seed := func(key string) {
		_, err := g.Do(key, func() (any, error) { return key, nil })
		require.NoError(t, err)
	}
	seed("farms:1:sectors")
	seed("farms:2:sectors")
	seed("equipment")

	g.Invalidate("farms:1")

	calls := 0
	fetch := func() (any, error) {
		calls++
		return "fresh", nil
	}
	_, _ = g.Do("farms:1:sectors", fetch)
	_, _ = g.Do("farms:2:sectors", fetch)
	_, _ = g.Do("equipment", fetch)
	assert.Equal(t, 1, calls)
}

func TestDoDeduplicatesConcurrentFetches(t *testing.T) {
	g := New(time.Minute)
	var calls int32

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := g.Do("k", func() (any, error) {
				atomic.AddInt32(&calls, 1)
				time.Sleep(20 * time.Millisecond)
				return "shared", nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "shared", v)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
