package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/call/dto"
	"github.com/travelease/callcenter/internal/domain/call"
	vo "github.com/travelease/callcenter/internal/domain/call/valueobjects"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type SetCallStatusCommand struct {
	CallID uint
	Status string
}

type SetCallStatusUseCase struct {
	callRepo call.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewSetCallStatusUseCase(callRepo call.Repository, clock biztime.Clock, logger logger.Interface) *SetCallStatusUseCase {
	return &SetCallStatusUseCase{
		callRepo: callRepo,
		clock:    clock,
		logger:   logger,
	}
}

// Execute overwrites the call status. Any settable status is accepted from
// any current status; waiting can only be entered through Enqueue.
func (uc *SetCallStatusUseCase) Execute(ctx context.Context, cmd SetCallStatusCommand) (*dto.CallDTO, error) {
	status, err := vo.NewCallStatus(cmd.Status)
	if err != nil || !status.IsSettable() {
		uc.logger.Warnw("rejected call status", "call_id", cmd.CallID, "status", cmd.Status)
		return nil, errors.NewValidationError(msgInvalidStatus)
	}

	c, err := uc.callRepo.UpdateStatus(ctx, cmd.CallID, status, uc.clock.Now())
	if err != nil {
		return nil, translateRepoError(uc.logger, err, "set_status", cmd.CallID)
	}

	uc.logger.Infow("call status updated", "call_id", c.ID(), "status", status.String())
	return dto.ToCallDTO(c), nil
}
