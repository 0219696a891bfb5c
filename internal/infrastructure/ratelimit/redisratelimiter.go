package ratelimit

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/travelease/callcenter/internal/shared/biztime"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter is a sliding window limiter shared by every instance that
// points at the same Redis.
type RedisLimiter struct {
	client *redis.Client
	config Config
	clock  biztime.Clock
}

func NewRedisLimiter(client *redis.Client, config Config, clock biztime.Clock) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		config: config,
		clock:  clock,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.clock.Now()
	redisKey := redisKeyPrefix + key
	windowStart := now.Add(-l.config.Window).UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()),
	})
	pipe.PExpire(ctx, redisKey, l.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val() < int64(l.config.Requests), nil
}
