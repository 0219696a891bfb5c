package usecases

import (
	"context"
	stderrors "errors"

	"github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/shared/biztime"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type RequestModificationCommand struct {
	BookingID        uint
	RequestedChanges string
	Reason           string
	AgentID          *uint
}

type RequestModificationUseCase struct {
	bookingRepo      booking.Repository
	modificationRepo booking.ModificationRepository
	txManager        Transactor
	clock            biztime.Clock
	logger           logger.Interface
}

func NewRequestModificationUseCase(
	bookingRepo booking.Repository,
	modificationRepo booking.ModificationRepository,
	txManager Transactor,
	clock biztime.Clock,
	logger logger.Interface,
) *RequestModificationUseCase {
	return &RequestModificationUseCase{
		bookingRepo:      bookingRepo,
		modificationRepo: modificationRepo,
		txManager:        txManager,
		clock:            clock,
		logger:           logger,
	}
}

// Execute records a pending change request. The booking existence check and
// the insert share one transaction.
func (uc *RequestModificationUseCase) Execute(ctx context.Context, cmd RequestModificationCommand) (*dto.ModificationDTO, error) {
	m, err := booking.NewModification(cmd.BookingID, cmd.RequestedChanges, cmd.Reason, cmd.AgentID, uc.clock.Now())
	if err != nil {
		uc.logger.Warnw("invalid modification request", "booking_id", cmd.BookingID, "error", err)
		return nil, errors.NewValidationError(msgMissingFields, err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.bookingRepo.Exists(txCtx, cmd.BookingID)
		if err != nil {
			return err
		}
		if !exists {
			return booking.ErrBookingNotFound
		}
		return uc.modificationRepo.Create(txCtx, m)
	})
	if err != nil {
		if stderrors.Is(err, booking.ErrBookingNotFound) {
			uc.logger.Infow("modification for unknown booking", "booking_id", cmd.BookingID)
			return nil, errors.NewNotFoundError(msgBookingNotFound)
		}
		return nil, translateRepoError(uc.logger, err, "request_modification", cmd.BookingID)
	}

	uc.logger.Infow("modification requested", "booking_id", cmd.BookingID, "modification_id", m.ID())
	return dto.ToModificationDTO(m), nil
}
