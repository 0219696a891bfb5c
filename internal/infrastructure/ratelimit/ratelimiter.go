package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether one more request for key fits in the current
// window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Requests int
	Window   time.Duration
}

// Enabled reports whether the config describes an actual limit.
func (c Config) Enabled() bool {
	return c.Requests > 0 && c.Window > 0
}
