package visa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/callcenter/internal/infrastructure/cache"
	"github.com/travelease/callcenter/internal/shared/logger"
)

func newCountingServer(t *testing.T, delay time.Duration) (*httptest.Server, *atomic.Int32) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(delay)
		_, _ = io.WriteString(w, `[{"id":"a1"}]`)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func newRedisCache(t *testing.T) (*miniredis.Miniredis, *cache.RedisVisaApplicationCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, cache.NewRedisVisaApplicationCache(client, 30*time.Second, logger.NewNopLogger())
}

func TestCachedGateway_ServesFromCache(t *testing.T) {
	server, hits := newCountingServer(t, 0)
	_, redisCache := newRedisCache(t)
	gateway := NewCachedGateway(NewClient(server.URL, time.Second, logger.NewNopLogger()), redisCache, logger.NewNopLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		apps, err := gateway.ListApplications(ctx, "user7")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a1"}]`, string(apps))
	}
	assert.Equal(t, int32(1), hits.Load())

	require.NoError(t, gateway.Invalidate(ctx, "user7"))
	_, err := gateway.ListApplications(ctx, "user7")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedGateway_CoalescesConcurrentMisses(t *testing.T) {
	server, hits := newCountingServer(t, 100*time.Millisecond)
	gateway := NewCachedGateway(NewClient(server.URL, time.Second, logger.NewNopLogger()), cache.NopVisaApplicationCache{}, logger.NewNopLogger())

	var wg sync.WaitGroup
	results := make([]json.RawMessage, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			apps, err := gateway.ListApplications(context.Background(), "user7")
			assert.NoError(t, err)
			results[i] = apps
		}(i)
	}
	wg.Wait()

	assert.Less(t, hits.Load(), int32(len(results)))
	for _, apps := range results {
		assert.JSONEq(t, `[{"id":"a1"}]`, string(apps))
	}
}

func TestCachedGateway_CacheFailureFallsThrough(t *testing.T) {
	server, hits := newCountingServer(t, 0)
	mr, redisCache := newRedisCache(t)
	mr.Close()

	gateway := NewCachedGateway(NewClient(server.URL, time.Second, logger.NewNopLogger()), redisCache, logger.NewNopLogger())

	apps, err := gateway.ListApplications(context.Background(), "user7")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a1"}]`, string(apps))
	assert.Equal(t, int32(1), hits.Load())
}

func TestCachedGateway_ErrorsAreNotCached(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	_, redisCache := newRedisCache(t)

	gateway := NewCachedGateway(NewClient(server.URL, time.Second, logger.NewNopLogger()), redisCache, logger.NewNopLogger())

	_, err := gateway.ListApplications(context.Background(), "user7")
	assert.Error(t, err)
	_, err = gateway.ListApplications(context.Background(), "user7")
	assert.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedGateway_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	server, hits := newCountingServer(t, 150*time.Millisecond)
	gateway := NewCachedGateway(NewClient(server.URL, time.Second, logger.NewNopLogger()), cache.NopVisaApplicationCache{}, logger.NewNopLogger())

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := gateway.ListApplications(leaderCtx, "user7")
		leaderErr <- err
	}()

	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)

	waiterResult := make(chan json.RawMessage, 1)
	waiterErr := make(chan error, 1)
	go func() {
		apps, err := gateway.ListApplications(context.Background(), "user7")
		waiterResult <- apps
		waiterErr <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancelLeader()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	require.NoError(t, <-waiterErr)
	assert.JSONEq(t, `[{"id":"a1"}]`, string(<-waiterResult))
	assert.LessOrEqual(t, hits.Load(), int32(2))
}
