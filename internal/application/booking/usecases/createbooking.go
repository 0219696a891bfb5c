package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/shared/biztime"
	apperrors "github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type CreateBookingCommand struct {
	CustomerID      uint
	ReferenceNumber string
	BookingType     string
	Price           float64
	Currency        string
	StartDate       string
	EndDate         *string
	Details         json.RawMessage
}

type CreateBookingUseCase struct {
	bookingRepo booking.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewCreateBookingUseCase(bookingRepo booking.Repository, clock biztime.Clock, logger logger.Interface) *CreateBookingUseCase {
	return &CreateBookingUseCase{
		bookingRepo: bookingRepo,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, cmd CreateBookingCommand) (*dto.BookingDTO, error) {
	if cmd.CustomerID == 0 ||
		strings.TrimSpace(cmd.ReferenceNumber) == "" ||
		strings.TrimSpace(cmd.BookingType) == "" ||
		cmd.Price == 0 ||
		strings.TrimSpace(cmd.StartDate) == "" {
		uc.logger.Warnw("create booking rejected: missing fields", "reference_number", cmd.ReferenceNumber)
		return nil, apperrors.NewValidationError(msgMissingFields)
	}

	details, err := booking.ParseDetails(cmd.BookingType, cmd.Details)
	if err != nil {
		uc.logger.Warnw("create booking rejected: details", "error", err)
		if errors.Is(err, booking.ErrDetailsRequired) {
			return nil, apperrors.NewValidationError(msgMissingFields)
		}
		return nil, apperrors.NewValidationError("Invalid details")
	}

	if cmd.EndDate != nil && strings.TrimSpace(*cmd.EndDate) == "" {
		cmd.EndDate = nil
	}

	b, err := booking.NewBooking(
		cmd.CustomerID,
		cmd.ReferenceNumber,
		cmd.BookingType,
		cmd.Price,
		cmd.Currency,
		cmd.StartDate,
		cmd.EndDate,
		details,
		uc.clock.Now(),
	)
	if err != nil {
		uc.logger.Warnw("create booking rejected", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.bookingRepo.Create(ctx, b); err != nil {
		if errors.Is(err, booking.ErrDuplicateReference) {
			uc.logger.Warnw("duplicate booking reference", "reference_number", b.ReferenceNumber())
			return nil, apperrors.NewValidationError("Reference number already exists")
		}
		uc.logger.Errorw("failed to create booking", "reference_number", b.ReferenceNumber(), "error", err)
		return nil, apperrors.NewInternalError(apperrors.GenericServerMessage)
	}

	uc.logger.Infow("booking created",
		"booking_id", b.ID(),
		"reference_number", b.ReferenceNumber(),
		"booking_type", b.BookingType())

	return dto.ToBookingDTO(b), nil
}
