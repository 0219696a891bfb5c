package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travelease/callcenter/internal/shared/logger"
)

const (
	visaApplicationsKeyPrefix = "visa:applications:"
	defaultVisaApplicationTTL = 30 * time.Second
)

// RedisVisaApplicationCache keeps the visa service's application listing per
// user for a short TTL, matching how often the dashboard polls.
type RedisVisaApplicationCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisVisaApplicationCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisVisaApplicationCache {
	if ttl <= 0 {
		ttl = defaultVisaApplicationTTL
	}
	return &RedisVisaApplicationCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisVisaApplicationCache) key(userID string) string {
	return visaApplicationsKeyPrefix + userID
}

// Get returns ok=false on a cache miss.
func (c *RedisVisaApplicationCache) Get(ctx context.Context, userID string) (json.RawMessage, bool, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get visa applications from cache: %w", err)
	}
	return json.RawMessage(data), true, nil
}

func (c *RedisVisaApplicationCache) Set(ctx context.Context, userID string, apps json.RawMessage) error {
	if err := c.client.Set(ctx, c.key(userID), []byte(apps), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache visa applications: %w", err)
	}
	c.logger.Debugw("visa applications cached", "user_id", userID, "ttl", c.ttl)
	return nil
}

func (c *RedisVisaApplicationCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate visa applications: %w", err)
	}
	return nil
}

// NopVisaApplicationCache never hits. It stands in when Redis is disabled.
type NopVisaApplicationCache struct{}

func (NopVisaApplicationCache) Get(context.Context, string) (json.RawMessage, bool, error) {
	return nil, false, nil
}

func (NopVisaApplicationCache) Set(context.Context, string, json.RawMessage) error {
	return nil
}

func (NopVisaApplicationCache) Invalidate(context.Context, string) error {
	return nil
}
