package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/call/dto"
	"github.com/travelease/callcenter/internal/domain/call"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type GetCallQuery struct {
	CallID uint
}

type GetCallUseCase struct {
	callRepo call.Repository
	logger   logger.Interface
}

func NewGetCallUseCase(callRepo call.Repository, logger logger.Interface) *GetCallUseCase {
	return &GetCallUseCase{
		callRepo: callRepo,
		logger:   logger,
	}
}

func (uc *GetCallUseCase) Execute(ctx context.Context, query GetCallQuery) (*dto.CallDetailDTO, error) {
	view, err := uc.callRepo.GetByID(ctx, query.CallID)
	if err != nil {
		return nil, translateRepoError(uc.logger, err, "get", query.CallID)
	}
	return dto.ToCallDetailDTO(view), nil
}
