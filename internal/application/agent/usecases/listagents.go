package usecases

import (
	"context"
	stderrors "errors"

	"github.com/travelease/callcenter/internal/application/agent/dto"
	"github.com/travelease/callcenter/internal/domain/agent"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

const msgAgentNotFound = "Agent not found"

type ListAgentsUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewListAgentsUseCase(agentRepo agent.Repository, logger logger.Interface) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		agentRepo: agentRepo,
		logger:    logger,
	}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context) ([]*dto.AgentDTO, error) {
	agents, err := uc.agentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}
	return dto.ToAgentDTOs(agents), nil
}

type GetAgentQuery struct {
	AgentID uint
}

type GetAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewGetAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *GetAgentUseCase {
	return &GetAgentUseCase{
		agentRepo: agentRepo,
		logger:    logger,
	}
}

func (uc *GetAgentUseCase) Execute(ctx context.Context, query GetAgentQuery) (*dto.AgentDTO, error) {
	a, err := uc.agentRepo.GetByID(ctx, query.AgentID)
	if err != nil {
		return nil, translateAgentError(uc.logger, err, query.AgentID)
	}
	return dto.ToAgentDTO(a), nil
}

func translateAgentError(log logger.Interface, err error, agentID uint) error {
	if stderrors.Is(err, agent.ErrAgentNotFound) {
		log.Infow("agent not found", "agent_id", agentID)
		return errors.NewNotFoundError(msgAgentNotFound)
	}
	log.Errorw("agent repository failure", "agent_id", agentID, "error", err)
	return errors.NewInternalError(errors.GenericServerMessage)
}
