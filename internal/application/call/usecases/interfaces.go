package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/call/dto"
)

type EnqueueCallExecutor interface {
	Execute(ctx context.Context, cmd EnqueueCallCommand) (*dto.CallDTO, error)
}

type ListQueueExecutor interface {
	Execute(ctx context.Context) ([]dto.QueueEntryDTO, error)
}

type GetCallExecutor interface {
	Execute(ctx context.Context, query GetCallQuery) (*dto.CallDetailDTO, error)
}

type AssignCallExecutor interface {
	Execute(ctx context.Context, cmd AssignCallCommand) (*dto.CallDTO, error)
}

type SetCallStatusExecutor interface {
	Execute(ctx context.Context, cmd SetCallStatusCommand) (*dto.CallDTO, error)
}

type TransferCallExecutor interface {
	Execute(ctx context.Context, cmd TransferCallCommand) (*dto.CallDTO, error)
}

type CompleteCallExecutor interface {
	Execute(ctx context.Context, cmd CompleteCallCommand) (*dto.CallDTO, error)
}
