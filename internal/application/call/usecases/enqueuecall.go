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

type EnqueueCallCommand struct {
	CustomerID  uint
	IssueType   string
	Description string
	Priority    string
}

type EnqueueCallUseCase struct {
	callRepo call.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewEnqueueCallUseCase(callRepo call.Repository, clock biztime.Clock, logger logger.Interface) *EnqueueCallUseCase {
	return &EnqueueCallUseCase{
		callRepo: callRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *EnqueueCallUseCase) Execute(ctx context.Context, cmd EnqueueCallCommand) (*dto.CallDTO, error) {
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		uc.logger.Warnw("rejected call priority", "priority", cmd.Priority)
		return nil, errors.NewValidationError("Invalid priority")
	}

	c, err := call.NewCall(cmd.CustomerID, cmd.IssueType, cmd.Description, priority, uc.clock.Now())
	if err != nil {
		uc.logger.Warnw("invalid enqueue call command", "error", err)
		return nil, errors.NewValidationError("Missing required fields", err.Error())
	}

	if err := uc.callRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create call", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}

	uc.logger.Infow("call enqueued",
		"call_id", c.ID(),
		"customer_id", c.CustomerID(),
		"priority", c.Priority().String())

	return dto.ToCallDTO(c), nil
}
