package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/call/dto"
	"github.com/travelease/callcenter/internal/domain/call"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type TransferCallCommand struct {
	CallID     uint
	NewAgentID uint
	Reason     string
}

type TransferCallUseCase struct {
	callRepo call.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewTransferCallUseCase(callRepo call.Repository, clock biztime.Clock, logger logger.Interface) *TransferCallUseCase {
	return &TransferCallUseCase{
		callRepo: callRepo,
		clock:    clock,
		logger:   logger,
	}
}

// Execute hands the call to another agent and bumps its transfer count.
// The call status is left as it was.
func (uc *TransferCallUseCase) Execute(ctx context.Context, cmd TransferCallCommand) (*dto.CallDTO, error) {
	if cmd.NewAgentID == 0 {
		return nil, errors.NewValidationError("new_agent_id is required")
	}

	c, err := uc.callRepo.Transfer(ctx, cmd.CallID, cmd.NewAgentID, cmd.Reason, uc.clock.Now())
	if err != nil {
		return nil, translateRepoError(uc.logger, err, "transfer", cmd.CallID)
	}

	uc.logger.Infow("call transferred",
		"call_id", c.ID(),
		"agent_id", cmd.NewAgentID,
		"transfer_count", c.TransferCount())
	return dto.ToCallDTO(c), nil
}
