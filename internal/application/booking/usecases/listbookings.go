package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/shared/constants"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

// ListBookingsQuery selects the bookings of one customer, or the most recent
// bookings overall when CustomerID is zero.
type ListBookingsQuery struct {
	CustomerID uint
}

type ListBookingsUseCase struct {
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewListBookingsUseCase(bookingRepo booking.Repository, logger logger.Interface) *ListBookingsUseCase {
	return &ListBookingsUseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (uc *ListBookingsUseCase) Execute(ctx context.Context, query ListBookingsQuery) ([]*dto.BookingDTO, error) {
	var (
		bookings []*booking.Booking
		err      error
	)
	if query.CustomerID != 0 {
		bookings, err = uc.bookingRepo.ListByCustomer(ctx, query.CustomerID)
	} else {
		bookings, err = uc.bookingRepo.ListRecent(ctx, constants.RecentBookingsLimit)
	}
	if err != nil {
		uc.logger.Errorw("failed to list bookings", "customer_id", query.CustomerID, "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}
	return dto.ToBookingDTOs(bookings), nil
}
