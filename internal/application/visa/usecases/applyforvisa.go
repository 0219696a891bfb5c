package usecases

import (
	"context"
	"encoding/json"
	stderrors "errors"

	bookingdto "github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/application/visa"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/domain/customer"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

const (
	msgBookingNotFound  = "Booking not found"
	msgCustomerNotFound = "Customer not found"
	msgFlightOnly       = "Visa only applicable for flight bookings"
	msgApplyFailed      = "Failed to apply for visa"
	msgListFailed       = "Failed to fetch visa applications"
)

type ApplyForVisaCommand struct {
	BookingID uint
}

type ApplyForVisaResult struct {
	Booking     *bookingdto.BookingDTO `json:"booking"`
	VisaStatus  json.RawMessage        `json:"visaStatus"`
	VisaMessage json.RawMessage        `json:"visaMessage"`
}

// ApplicationInvalidator drops cached application listings for a user.
type ApplicationInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

type ApplyForVisaUseCase struct {
	bookingRepo  booking.Repository
	customerRepo customer.Repository
	gateway      visa.Gateway
	invalidator  ApplicationInvalidator
	logger       logger.Interface
}

func NewApplyForVisaUseCase(
	bookingRepo booking.Repository,
	customerRepo customer.Repository,
	gateway visa.Gateway,
	invalidator ApplicationInvalidator,
	logger logger.Interface,
) *ApplyForVisaUseCase {
	return &ApplyForVisaUseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		gateway:      gateway,
		invalidator:  invalidator,
		logger:       logger,
	}
}

// Execute submits a visa application built from a flight booking. Nothing is
// stored locally.
func (uc *ApplyForVisaUseCase) Execute(ctx context.Context, cmd ApplyForVisaCommand) (*ApplyForVisaResult, error) {
	b, c, err := loadTraveller(ctx, uc.bookingRepo, uc.customerRepo, uc.logger, cmd.BookingID, msgApplyFailed)
	if err != nil {
		return nil, err
	}

	profile := booking.VisaProfileOf(b.Details())
	app := visa.Application{
		UserID:          visa.UserIDForCustomer(c.ID()),
		Name:            c.Name(),
		Passport:        profile.Passport,
		Country:         profile.Country,
		BankBalance:     profile.BankBalance,
		CriminalHistory: profile.CriminalHistory,
	}

	decision, err := uc.gateway.SubmitApplication(ctx, app)
	if err != nil {
		uc.logger.Errorw("visa application failed", "booking_id", b.ID(), "user_id", app.UserID, "error", err)
		return nil, errors.NewInternalError(msgApplyFailed)
	}

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx, app.UserID); err != nil {
			uc.logger.Warnw("failed to invalidate visa application cache", "user_id", app.UserID, "error", err)
		}
	}

	uc.logger.Infow("visa application submitted", "booking_id", b.ID(), "user_id", app.UserID)

	return &ApplyForVisaResult{
		Booking:     bookingdto.ToBookingDTO(b),
		VisaStatus:  decision.Status,
		VisaMessage: decision.Message,
	}, nil
}

// loadTraveller resolves a flight booking and its customer. failMessage is
// the client message for unexpected storage failures.
func loadTraveller(
	ctx context.Context,
	bookingRepo booking.Repository,
	customerRepo customer.Repository,
	log logger.Interface,
	bookingID uint,
	failMessage string,
) (*booking.Booking, *customer.Customer, error) {
	b, err := bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if stderrors.Is(err, booking.ErrBookingNotFound) {
			return nil, nil, errors.NewNotFoundError(msgBookingNotFound)
		}
		log.Errorw("failed to load booking", "booking_id", bookingID, "error", err)
		return nil, nil, errors.NewInternalError(failMessage)
	}

	if !b.IsFlight() {
		log.Infow("visa requested for non-flight booking", "booking_id", bookingID, "booking_type", b.BookingType())
		return nil, nil, errors.NewValidationError(msgFlightOnly)
	}

	c, err := customerRepo.GetByID(ctx, b.CustomerID())
	if err != nil {
		if stderrors.Is(err, customer.ErrCustomerNotFound) {
			return nil, nil, errors.NewNotFoundError(msgCustomerNotFound)
		}
		log.Errorw("failed to load customer", "customer_id", b.CustomerID(), "error", err)
		return nil, nil, errors.NewInternalError(failMessage)
	}

	return b, c, nil
}
