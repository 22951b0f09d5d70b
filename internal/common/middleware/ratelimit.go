package middleware

import (
	"context"
	"sync"
	"time"
)

// RateLimiter HTTP 入口限流接口，由 server.RateLimitMiddleware 消费。
type RateLimiter interface {
	Allow(ctx context.Context) bool
}

// TokenBucket 令牌桶；容量和每秒补充速率来自 Server.RateLimit 配置，
// Capacity <= 0 时服务端不会构造限流中间件。
type TokenBucket struct {
	capacity   int64
	tokens     int64
	refillRate int64 // 每秒补充令牌数
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity, refillRate int64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow 消耗一枚令牌；桶空表示限流，上层返回 429。
func (tb *TokenBucket) Allow(ctx context.Context) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	refill := int64(now.Sub(tb.lastRefill).Seconds() * float64(tb.refillRate))
	if refill > 0 {
		tb.tokens = min(tb.tokens+refill, tb.capacity)
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}
