package ratelimit

import (
	"context"
	"strconv"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/travelease/callcenter/internal/shared/biztime"
)

const defaultMemoryKeys = 10000

// MemoryLimiter counts requests per fixed window inside one process. It is
// used when Redis is not configured.
type MemoryLimiter struct {
	mu       sync.Mutex
	counters *expirable.LRU[string, int]
	config   Config
	clock    biztime.Clock
}

func NewMemoryLimiter(config Config, clock biztime.Clock) *MemoryLimiter {
	return &MemoryLimiter{
		counters: expirable.NewLRU[string, int](defaultMemoryKeys, nil, config.Window),
		config:   config,
		clock:    clock,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	bucket := l.clock.Now().UnixNano() / int64(l.config.Window)
	bucketKey := key + ":" + strconv.FormatInt(bucket, 10)

	l.mu.Lock()
	defer l.mu.Unlock()

	count, _ := l.counters.Get(bucketKey)
	count++
	l.counters.Add(bucketKey, count)

	return count <= l.config.Requests, nil
}
