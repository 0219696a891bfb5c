package visa

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/singleflight"

	appvisa "github.com/travelease/callcenter/internal/application/visa"
	"github.com/travelease/callcenter/internal/shared/logger"
)

// ApplicationCache stores application listings per visa user id.
type ApplicationCache interface {
	Get(ctx context.Context, userID string) (json.RawMessage, bool, error)
	Set(ctx context.Context, userID string, apps json.RawMessage) error
	Invalidate(ctx context.Context, userID string) error
}

// CachedGateway serves application listings from a cache. Concurrent misses
// for the same user share one upstream request.
type CachedGateway struct {
	next       appvisa.Gateway
	cache      ApplicationCache
	fetchGroup singleflight.Group
	logger     logger.Interface
}

func NewCachedGateway(next appvisa.Gateway, cache ApplicationCache, log logger.Interface) *CachedGateway {
	return &CachedGateway{
		next:   next,
		cache:  cache,
		logger: log,
	}
}

// SubmitApplication is not cached.
func (g *CachedGateway) SubmitApplication(ctx context.Context, app appvisa.Application) (*appvisa.Decision, error) {
	return g.next.SubmitApplication(ctx, app)
}

func (g *CachedGateway) ListApplications(ctx context.Context, userID string) (json.RawMessage, error) {
	if apps, ok := g.lookup(ctx, userID); ok {
		return apps, nil
	}

	// The shared fetch must outlive whichever caller started it; each caller
	// still stops waiting when its own context ends.
	fetchCtx := context.WithoutCancel(ctx)
	ch := g.fetchGroup.DoChan(userID, func() (any, error) {
		if apps, ok := g.lookup(fetchCtx, userID); ok {
			return apps, nil
		}

		apps, err := g.next.ListApplications(fetchCtx, userID)
		if err != nil {
			return nil, err
		}
		if err := g.cache.Set(fetchCtx, userID, apps); err != nil {
			g.logger.Warnw("failed to cache visa applications", "user_id", userID, "error", err)
		}
		return apps, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(json.RawMessage), nil
	}
}

// Invalidate drops the cached listing of a user whose applications changed.
func (g *CachedGateway) Invalidate(ctx context.Context, userID string) error {
	return g.cache.Invalidate(ctx, userID)
}

func (g *CachedGateway) lookup(ctx context.Context, userID string) (json.RawMessage, bool) {
	apps, ok, err := g.cache.Get(ctx, userID)
	if err != nil {
		g.logger.Warnw("visa application cache read failed", "user_id", userID, "error", err)
		return nil, false
	}
	return apps, ok
}
