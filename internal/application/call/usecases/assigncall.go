package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/call/dto"
	"github.com/travelease/callcenter/internal/domain/call"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type AssignCallCommand struct {
	CallID  uint
	AgentID uint
}

type AssignCallUseCase struct {
	callRepo call.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewAssignCallUseCase(callRepo call.Repository, clock biztime.Clock, logger logger.Interface) *AssignCallUseCase {
	return &AssignCallUseCase{
		callRepo: callRepo,
		clock:    clock,
		logger:   logger,
	}
}

// Execute moves a waiting call to active under the given agent. The store
// applies the change only while the call is still waiting, so of several
// concurrent assignments exactly one wins.
func (uc *AssignCallUseCase) Execute(ctx context.Context, cmd AssignCallCommand) (*dto.CallDTO, error) {
	if cmd.AgentID == 0 {
		return nil, errors.NewValidationError("agent_id is required")
	}

	c, err := uc.callRepo.AssignIfWaiting(ctx, cmd.CallID, cmd.AgentID, uc.clock.Now())
	if err != nil {
		return nil, translateRepoError(uc.logger, err, "assign", cmd.CallID)
	}

	uc.logger.Infow("call assigned", "call_id", c.ID(), "agent_id", cmd.AgentID)
	return dto.ToCallDTO(c), nil
}
