package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/agent/dto"
	"github.com/travelease/callcenter/internal/domain/agent"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

type SetAgentStatusCommand struct {
	AgentID uint
	Status  string
}

type SetAgentStatusUseCase struct {
	agentRepo agent.Repository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewSetAgentStatusUseCase(agentRepo agent.Repository, clock biztime.Clock, logger logger.Interface) *SetAgentStatusUseCase {
	return &SetAgentStatusUseCase{
		agentRepo: agentRepo,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *SetAgentStatusUseCase) Execute(ctx context.Context, cmd SetAgentStatusCommand) (*dto.AgentDTO, error) {
	status, err := agent.NewStatus(cmd.Status)
	if err != nil {
		uc.logger.Warnw("rejected agent status", "agent_id", cmd.AgentID, "status", cmd.Status)
		return nil, errors.NewValidationError("Invalid status")
	}

	a, err := uc.agentRepo.UpdateStatus(ctx, cmd.AgentID, status, uc.clock.Now())
	if err != nil {
		return nil, translateAgentError(uc.logger, err, cmd.AgentID)
	}

	uc.logger.Infow("agent status updated", "agent_id", a.ID(), "email", utils.MaskEmail(a.Email()), "status", string(status))
	return dto.ToAgentDTO(a), nil
}
