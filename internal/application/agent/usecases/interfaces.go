package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/agent/dto"
)

type ListAgentsExecutor interface {
	Execute(ctx context.Context) ([]*dto.AgentDTO, error)
}

type GetAgentExecutor interface {
	Execute(ctx context.Context, query GetAgentQuery) (*dto.AgentDTO, error)
}

type SetAgentStatusExecutor interface {
	Execute(ctx context.Context, cmd SetAgentStatusCommand) (*dto.AgentDTO, error)
}

type GetAgentStatsExecutor interface {
	Execute(ctx context.Context, query GetAgentStatsQuery) (*dto.AgentStatsDTO, error)
}
