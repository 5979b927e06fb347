package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRateLimiter(limit int, interval time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, interval)
	rl.now = clock.now
	rl.lastSweep = clock.t
	return rl, clock
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	rl, clock := newTestRateLimiter(2, time.Minute)
	ctx := context.Background()

	for i, want := range []bool{true, true, false, false} {
		ok, err := rl.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "request %d", i+1)
	}

	// 別キーは独立してカウントされる
	ok, err := rl.Allow(ctx, "client-b")
	require.NoError(t, err)
	assert.True(t, ok)

	// interval 経過後はリセット
	clock.advance(time.Minute)
	ok, err = rl.Allow(ctx, "client-a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_SweepsExpiredWindows(t *testing.T) {
	t.Parallel()

	rl, clock := newTestRateLimiter(1, time.Second)
	ctx := context.Background()

	_, _ = rl.Allow(ctx, "a")
	_, _ = rl.Allow(ctx, "b")
	require.Len(t, rl.windows, 2)

	clock.advance(2 * time.Second)
	_, _ = rl.Allow(ctx, "c")

	assert.Len(t, rl.windows, 1)
	assert.Contains(t, rl.windows, "c")
}

func TestRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(50, time.Hour)
	results := make(chan bool, 100)
	for range 100 {
		go func() {
			ok, _ := rl.Allow(context.Background(), "shared")
			results <- ok
		}()
	}

	allowed := 0
	for range 100 {
		if <-results {
			allowed++
		}
	}
	assert.Equal(t, 50, allowed)
}
