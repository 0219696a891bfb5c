package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/domain/booking"
	vo "github.com/travelease/callcenter/internal/domain/booking/valueobjects"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type SetBookingStatusCommand struct {
	BookingID uint
	Status    string
}

type SetBookingStatusUseCase struct {
	bookingRepo booking.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewSetBookingStatusUseCase(bookingRepo booking.Repository, clock biztime.Clock, logger logger.Interface) *SetBookingStatusUseCase {
	return &SetBookingStatusUseCase{
		bookingRepo: bookingRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Execute overwrites the booking status without consulting the current one.
func (uc *SetBookingStatusUseCase) Execute(ctx context.Context, cmd SetBookingStatusCommand) (*dto.BookingDTO, error) {
	status, err := vo.NewBookingStatus(cmd.Status)
	if err != nil {
		uc.logger.Warnw("rejected booking status", "booking_id", cmd.BookingID, "status", cmd.Status)
		return nil, errors.NewValidationError(msgInvalidStatus)
	}

	b, err := uc.bookingRepo.UpdateStatus(ctx, cmd.BookingID, status, uc.clock.Now())
	if err != nil {
		return nil, translateRepoError(uc.logger, err, "set_status", cmd.BookingID)
	}

	uc.logger.Infow("booking status updated", "booking_id", b.ID(), "status", status.String())
	return dto.ToBookingDTO(b), nil
}
