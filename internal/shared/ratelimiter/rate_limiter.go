package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter は、キー（クライアント）ごとにリクエストの頻度を制限するインターフェースです。
type Limiter interface {
	// Allow reports whether one more request for key fits in the current window.
	Allow(ctx context.Context, key string) (bool, error)
}

type window struct {
	count     int
	lastReset time.Time
}

// RateLimiterは、プロセス内の固定ウィンドウでリクエスト数を制限します。
type RateLimiter struct {
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		windows:   make(map[string]*window),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow はキーのカウントを進め、上限内であれば true を返します。
func (rl *RateLimiter) Allow(_ context.Context, key string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.windows[key]
	if !ok {
		w = &window{lastReset: now}
		rl.windows[key] = w
	}
	// interval を過ぎたらカウントリセット
	if now.Sub(w.lastReset) >= rl.interval {
		w.count = 0
		w.lastReset = now
	}

	w.count++
	return w.count <= rl.limit, nil
}

// sweep drops windows that expired, at most once per interval.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	for key, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, key)
		}
	}
	rl.lastSweep = now
}
