package usecases

import (
	"context"
	"errors"

	"github.com/travelease/callcenter/internal/domain/booking"
	apperrors "github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

const (
	msgBookingNotFound = "Booking not found"
	msgMissingFields   = "Missing required fields"
	msgInvalidStatus   = "Invalid status"
)

// Transactor runs fn inside one database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

func translateRepoError(log logger.Interface, err error, op string, bookingID uint) error {
	if errors.Is(err, booking.ErrBookingNotFound) {
		log.Infow("booking not found", "op", op, "booking_id", bookingID)
		return apperrors.NewNotFoundError(msgBookingNotFound)
	}
	log.Errorw("booking repository failure", "op", op, "booking_id", bookingID, "error", err)
	return apperrors.NewInternalError(apperrors.GenericServerMessage)
}
