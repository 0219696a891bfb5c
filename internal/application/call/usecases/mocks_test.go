package usecases

import (
	"context"
	"time"

	"github.com/travelease/callcenter/internal/domain/call"
	vo "github.com/travelease/callcenter/internal/domain/call/valueobjects"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type mockCallRepository struct {
	CreateFunc             func(ctx context.Context, c *call.Call) error
	GetByIDFunc            func(ctx context.Context, id uint) (*call.View, error)
	ListWaitingFunc        func(ctx context.Context) ([]*call.View, error)
	StatsForAgentSinceFunc func(ctx context.Context, agentID uint, since time.Time) (call.AgentStats, error)
	AssignIfWaitingFunc    func(ctx context.Context, id, agentID uint, at time.Time) (*call.Call, error)
	UpdateStatusFunc       func(ctx context.Context, id uint, status vo.CallStatus, at time.Time) (*call.Call, error)
	TransferFunc           func(ctx context.Context, id, agentID uint, reason string, at time.Time) (*call.Call, error)
	CompleteFunc           func(ctx context.Context, id uint, resolution vo.Resolution, note string, at time.Time) (*call.Call, error)
}

func (m *mockCallRepository) Create(ctx context.Context, c *call.Call) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCallRepository) GetByID(ctx context.Context, id uint) (*call.View, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, call.ErrCallNotFound
}

func (m *mockCallRepository) ListWaiting(ctx context.Context) ([]*call.View, error) {
	if m.ListWaitingFunc != nil {
		return m.ListWaitingFunc(ctx)
	}
	return nil, nil
}

func (m *mockCallRepository) StatsForAgentSince(ctx context.Context, agentID uint, since time.Time) (call.AgentStats, error) {
	if m.StatsForAgentSinceFunc != nil {
		return m.StatsForAgentSinceFunc(ctx, agentID, since)
	}
	return call.AgentStats{}, nil
}

func (m *mockCallRepository) AssignIfWaiting(ctx context.Context, id, agentID uint, at time.Time) (*call.Call, error) {
	if m.AssignIfWaitingFunc != nil {
		return m.AssignIfWaitingFunc(ctx, id, agentID, at)
	}
	return nil, call.ErrCallNotAssignable
}

func (m *mockCallRepository) UpdateStatus(ctx context.Context, id uint, status vo.CallStatus, at time.Time) (*call.Call, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, at)
	}
	return nil, call.ErrCallNotFound
}

func (m *mockCallRepository) Transfer(ctx context.Context, id, agentID uint, reason string, at time.Time) (*call.Call, error) {
	if m.TransferFunc != nil {
		return m.TransferFunc(ctx, id, agentID, reason, at)
	}
	return nil, call.ErrCallNotFound
}

func (m *mockCallRepository) Complete(ctx context.Context, id uint, resolution vo.Resolution, note string, at time.Time) (*call.Call, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, id, resolution, note, at)
	}
	return nil, call.ErrCallNotFound
}

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

func buildCall(id uint, priority vo.Priority, status vo.CallStatus, createdAt time.Time) *call.Call {
	c, err := call.ReconstructCall(id, 7, "refund", "", priority, status, nil, nil, nil, "", 0, nil, "", createdAt, createdAt)
	if err != nil {
		panic(err)
	}
	return c
}
