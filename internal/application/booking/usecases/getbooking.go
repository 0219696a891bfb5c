package usecases

import (
	"context"
	"strings"

	"github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

// GetBookingQuery looks a booking up by id, or by reference number when
// Reference is set.
type GetBookingQuery struct {
	BookingID uint
	Reference string
}

type GetBookingUseCase struct {
	bookingRepo booking.Repository
	logger      logger.Interface
}

func NewGetBookingUseCase(bookingRepo booking.Repository, logger logger.Interface) *GetBookingUseCase {
	return &GetBookingUseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (uc *GetBookingUseCase) Execute(ctx context.Context, query GetBookingQuery) (*dto.BookingDTO, error) {
	var (
		b   *booking.Booking
		err error
	)
	if query.Reference != "" {
		ref := strings.TrimSpace(query.Reference)
		if ref == "" {
			return nil, errors.NewValidationError("Invalid reference number")
		}
		b, err = uc.bookingRepo.GetByReference(ctx, ref)
	} else {
		b, err = uc.bookingRepo.GetByID(ctx, query.BookingID)
	}
	if err != nil {
		return nil, translateRepoError(uc.logger, err, "get", query.BookingID)
	}
	return dto.ToBookingDTO(b), nil
}
