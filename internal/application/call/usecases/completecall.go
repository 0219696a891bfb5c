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

type CompleteCallCommand struct {
	CallID           uint
	ResolutionStatus string
	ResolutionNote   string
}

type CompleteCallUseCase struct {
	callRepo call.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewCompleteCallUseCase(callRepo call.Repository, clock biztime.Clock, logger logger.Interface) *CompleteCallUseCase {
	return &CompleteCallUseCase{
		callRepo: callRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *CompleteCallUseCase) Execute(ctx context.Context, cmd CompleteCallCommand) (*dto.CallDTO, error) {
	resolution, err := vo.NewResolution(cmd.ResolutionStatus)
	if err != nil {
		uc.logger.Warnw("rejected resolution status", "call_id", cmd.CallID, "resolution", cmd.ResolutionStatus)
		return nil, errors.NewValidationError(msgInvalidResolution)
	}

	c, err := uc.callRepo.Complete(ctx, cmd.CallID, resolution, cmd.ResolutionNote, uc.clock.Now())
	if err != nil {
		return nil, translateRepoError(uc.logger, err, "complete", cmd.CallID)
	}

	uc.logger.Infow("call completed", "call_id", c.ID(), "resolution", resolution.String())
	return dto.ToCallDTO(c), nil
}
