package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetOrLoad_CachesUntilExpiry tests TTL handling.
func TestGetOrLoad_CachesUntilExpiry(t *testing.T) {
	c := New[int](time.Minute)
	now := time.Unix(0, 0)
	c.now = func() time.Time { return now }

	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, err := c.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, _ = c.GetOrLoad(context.Background(), "k", load)
	assert.Equal(t, 1, v)

	now = now.Add(2 * time.Minute)
	v, _ = c.GetOrLoad(context.Background(), "k", load)
	assert.Equal(t, 2, v)
}

// TestGetOrLoad_ZeroTTLDisablesCaching tests that a zero TTL always reloads.
func TestGetOrLoad_ZeroTTLDisablesCaching(t *testing.T) {
	c := New[string](0)
	calls := 0
	load := func(context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, _ = c.GetOrLoad(context.Background(), "k", load)
	_, _ = c.GetOrLoad(context.Background(), "k", load)
	assert.Equal(t, 2, calls)
}

// TestGetOrLoad_ErrorsAreNotCached tests that failures are retried.
func TestGetOrLoad_ErrorsAreNotCached(t *testing.T) {
	c := New[int](time.Minute)
	boom := errors.New("boom")

	_, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	v, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

// TestGetOrLoad_CollapsesConcurrentLoads tests stampede protection.
func TestGetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	c := New[int](time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

// TestInvalidate tests forced reloads.
func TestInvalidate(t *testing.T) {
	c := New[int](time.Hour)
	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, _ = c.GetOrLoad(context.Background(), "k", load)
	c.Invalidate("k")
	v, _ := c.GetOrLoad(context.Background(), "k", load)
	assert.Equal(t, 2, v)
}
