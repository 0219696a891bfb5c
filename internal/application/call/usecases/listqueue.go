package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/call/dto"
	"github.com/travelease/callcenter/internal/domain/call"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type ListQueueUseCase struct {
	callRepo call.Repository
	logger   logger.Interface
}

func NewListQueueUseCase(callRepo call.Repository, logger logger.Interface) *ListQueueUseCase {
	return &ListQueueUseCase{
		callRepo: callRepo,
		logger:   logger,
	}
}

// Execute returns every waiting call in service order.
func (uc *ListQueueUseCase) Execute(ctx context.Context) ([]dto.QueueEntryDTO, error) {
	views, err := uc.callRepo.ListWaiting(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list waiting calls", "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}

	call.OrderQueue(views)
	return dto.ToQueueDTOs(views), nil
}
