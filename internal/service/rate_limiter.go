package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codingwithstephen/gp-surgery-mobile/config"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript counts a hit in the current window and returns the count
// together with the milliseconds left in the window. The expiry is only set on
// the first hit so the window never slides.
var fixedWindowScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	local ttl = redis.call('PTTL', KEYS[1])
	return {current, ttl}
`)

const RedisRateLimitKeyPrefix = "rate_limit:"

type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (*RateLimitResult, error)
}

type redisRateLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
}

func NewRateLimiter(redisClient *redis.Client, cfg config.RateLimitConfig) RateLimiter {
	return &redisRateLimiter{
		redisClient: redisClient,
		limit:       cfg.Requests,
		window:      cfg.Window,
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string) (*RateLimitResult, error) {
	res, err := fixedWindowScript.Run(ctx, l.redisClient, []string{RedisRateLimitKeyPrefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to run rate limit script: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected rate limit script result %v", res)
	}

	count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
	result := &RateLimitResult{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: max(l.limit-count, 0),
	}
	if !result.Allowed {
		result.RetryAfter = max(ttl, 0)
	}

	return result, nil
}
