package call

import (
	"context"
	"time"

	vo "github.com/travelease/callcenter/internal/domain/call/valueobjects"
)

// Repository persists calls. Every state change is a single conditional or
// unconditional write so that concurrent requests cannot lose updates; each
// mutator returns the call as stored after the write.
type Repository interface {
	Create(ctx context.Context, c *Call) error
	GetByID(ctx context.Context, id uint) (*View, error)
	ListWaiting(ctx context.Context) ([]*View, error)
	// StatsForAgentSince aggregates the agent's calls created after since.
	StatsForAgentSince(ctx context.Context, agentID uint, since time.Time) (AgentStats, error)

	// AssignIfWaiting returns ErrCallNotAssignable unless the call exists and
	// is still waiting.
	AssignIfWaiting(ctx context.Context, id, agentID uint, at time.Time) (*Call, error)
	UpdateStatus(ctx context.Context, id uint, status vo.CallStatus, at time.Time) (*Call, error)
	Transfer(ctx context.Context, id, agentID uint, reason string, at time.Time) (*Call, error)
	Complete(ctx context.Context, id uint, resolution vo.Resolution, note string, at time.Time) (*Call, error)
}
