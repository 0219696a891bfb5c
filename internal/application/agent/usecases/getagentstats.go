package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/agent/dto"
	"github.com/travelease/callcenter/internal/domain/agent"
	"github.com/travelease/callcenter/internal/domain/call"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type GetAgentStatsQuery struct {
	AgentID uint
	Period  string
}

type GetAgentStatsUseCase struct {
	agentRepo agent.Repository
	callRepo  call.Repository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewGetAgentStatsUseCase(
	agentRepo agent.Repository,
	callRepo call.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *GetAgentStatsUseCase {
	return &GetAgentStatsUseCase{
		agentRepo: agentRepo,
		callRepo:  callRepo,
		clock:     clock,
		logger:    logger,
	}
}

// Execute summarizes the agent's calls created within the trailing period.
func (uc *GetAgentStatsUseCase) Execute(ctx context.Context, query GetAgentStatsQuery) (*dto.AgentStatsDTO, error) {
	period, err := biztime.ParsePeriod(query.Period)
	if err != nil {
		return nil, errors.NewValidationError("Invalid period")
	}

	if _, err := uc.agentRepo.GetByID(ctx, query.AgentID); err != nil {
		return nil, translateAgentError(uc.logger, err, query.AgentID)
	}

	stats, err := uc.callRepo.StatsForAgentSince(ctx, query.AgentID, period.Since(uc.clock.Now()))
	if err != nil {
		uc.logger.Errorw("failed to aggregate agent calls", "agent_id", query.AgentID, "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}

	return dto.ToAgentStatsDTO(query.AgentID, string(period), stats), nil
}
