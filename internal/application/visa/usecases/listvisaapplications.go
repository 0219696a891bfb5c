package usecases

import (
	"context"
	"encoding/json"

	bookingdto "github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/application/visa"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/domain/customer"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type ListVisaApplicationsQuery struct {
	BookingID uint
}

type ListVisaApplicationsResult struct {
	Booking          *bookingdto.BookingDTO `json:"booking"`
	VisaApplications json.RawMessage        `json:"visaApplications"`
}

type ListVisaApplicationsUseCase struct {
	bookingRepo  booking.Repository
	customerRepo customer.Repository
	gateway      visa.Gateway
	logger       logger.Interface
}

func NewListVisaApplicationsUseCase(
	bookingRepo booking.Repository,
	customerRepo customer.Repository,
	gateway visa.Gateway,
	logger logger.Interface,
) *ListVisaApplicationsUseCase {
	return &ListVisaApplicationsUseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *ListVisaApplicationsUseCase) Execute(ctx context.Context, query ListVisaApplicationsQuery) (*ListVisaApplicationsResult, error) {
	b, c, err := loadTraveller(ctx, uc.bookingRepo, uc.customerRepo, uc.logger, query.BookingID, msgListFailed)
	if err != nil {
		return nil, err
	}

	userID := visa.UserIDForCustomer(c.ID())
	apps, err := uc.gateway.ListApplications(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to fetch visa applications", "booking_id", b.ID(), "user_id", userID, "error", err)
		return nil, errors.NewInternalError(msgListFailed)
	}

	return &ListVisaApplicationsResult{
		Booking:          bookingdto.ToBookingDTO(b),
		VisaApplications: apps,
	}, nil
}
