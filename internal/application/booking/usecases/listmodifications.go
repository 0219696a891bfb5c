package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type ListModificationsQuery struct {
	BookingID uint
}

type ListModificationsUseCase struct {
	modificationRepo booking.ModificationRepository
	logger           logger.Interface
}

func NewListModificationsUseCase(modificationRepo booking.ModificationRepository, logger logger.Interface) *ListModificationsUseCase {
	return &ListModificationsUseCase{
		modificationRepo: modificationRepo,
		logger:           logger,
	}
}

// Execute lists change requests newest first. An unknown booking simply has
// none.
func (uc *ListModificationsUseCase) Execute(ctx context.Context, query ListModificationsQuery) ([]*dto.ModificationDTO, error) {
	views, err := uc.modificationRepo.ListByBooking(ctx, query.BookingID)
	if err != nil {
		uc.logger.Errorw("failed to list modifications", "booking_id", query.BookingID, "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}
	return dto.ToModificationDTOs(views), nil
}
