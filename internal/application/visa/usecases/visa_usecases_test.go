package usecases

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/travelease/callcenter/internal/application/visa"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/domain/customer"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

func requireAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func fixtures() (*stubBookingRepository, *stubCustomerRepository) {
	bookings := &stubBookingRepository{bookings: map[uint]*booking.Booking{
		1: buildBooking(1, 7, "Flight", `{"passport":"P-77","nationality":"FR","bankBalance":1500.5,"criminalHistory":true}`),
		2: buildBooking(2, 7, "flight", `{"origin":"CDG"}`),
		3: buildBooking(3, 7, "HOTEL", `{"hotel_name":"Ritz"}`),
		4: buildBooking(4, 404, "flight", `{}`),
	}}
	customers := &stubCustomerRepository{customers: map[uint]*customer.Customer{
		7: customer.ReconstructCustomer(7, "Ada Lovelace", "ada@example.com", "555", "gold", testNow, testNow),
	}}
	return bookings, customers
}

func TestApplyForVisaUseCase_Execute_Success(t *testing.T) {
	bookings, customers := fixtures()
	gateway := &mockGateway{}
	invalidator := &mockInvalidator{}

	expected := visa.Application{
		UserID:          "user7",
		Name:            "Ada Lovelace",
		Passport:        "P-77",
		Country:         "FR",
		BankBalance:     1500.5,
		CriminalHistory: true,
	}
	gateway.On("SubmitApplication", mock.Anything, expected).
		Return(&visa.Decision{Status: json.RawMessage(`"approved"`), Message: json.RawMessage(`"ok"`)}, nil)
	invalidator.On("Invalidate", mock.Anything, "user7").Return(nil)

	uc := NewApplyForVisaUseCase(bookings, customers, gateway, invalidator, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), ApplyForVisaCommand{BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.Booking.ID)
	assert.JSONEq(t, `"approved"`, string(result.VisaStatus))
	assert.JSONEq(t, `"ok"`, string(result.VisaMessage))

	gateway.AssertExpectations(t)
	invalidator.AssertExpectations(t)
}

func TestApplyForVisaUseCase_Execute_DefaultsMissingProfile(t *testing.T) {
	bookings, customers := fixtures()
	gateway := &mockGateway{}
	gateway.On("SubmitApplication", mock.Anything, visa.Application{
		UserID:   "user7",
		Name:     "Ada Lovelace",
		Passport: "UNKNOWN",
		Country:  "UNKNOWN",
	}).Return(&visa.Decision{}, nil)
	invalidator := &mockInvalidator{}
	invalidator.On("Invalidate", mock.Anything, "user7").Return(stderrors.New("redis down"))

	uc := NewApplyForVisaUseCase(bookings, customers, gateway, invalidator, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ApplyForVisaCommand{BookingID: 2})
	require.NoError(t, err)
	gateway.AssertExpectations(t)
}

func TestApplyForVisaUseCase_Execute_Guards(t *testing.T) {
	bookings, customers := fixtures()
	gateway := &mockGateway{}
	uc := NewApplyForVisaUseCase(bookings, customers, gateway, &mockInvalidator{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ApplyForVisaCommand{BookingID: 99})
	requireAppError(t, err, http.StatusNotFound, "Booking not found")

	_, err = uc.Execute(context.Background(), ApplyForVisaCommand{BookingID: 3})
	requireAppError(t, err, http.StatusBadRequest, "Visa only applicable for flight bookings")

	_, err = uc.Execute(context.Background(), ApplyForVisaCommand{BookingID: 4})
	requireAppError(t, err, http.StatusNotFound, "Customer not found")

	gateway.AssertNotCalled(t, "SubmitApplication", mock.Anything, mock.Anything)
}

func TestApplyForVisaUseCase_Execute_GatewayFailure(t *testing.T) {
	bookings, customers := fixtures()
	gateway := &mockGateway{}
	gateway.On("SubmitApplication", mock.Anything, mock.Anything).Return(nil, visa.ErrGatewayUnavailable)
	invalidator := &mockInvalidator{}

	uc := NewApplyForVisaUseCase(bookings, customers, gateway, invalidator, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ApplyForVisaCommand{BookingID: 1})
	requireAppError(t, err, http.StatusInternalServerError, "Failed to apply for visa")
	invalidator.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestListVisaApplicationsUseCase_Execute(t *testing.T) {
	bookings, customers := fixtures()
	gateway := &mockGateway{}
	gateway.On("ListApplications", mock.Anything, "user7").
		Return(json.RawMessage(`[{"id":1,"status":"pending"}]`), nil)

	uc := NewListVisaApplicationsUseCase(bookings, customers, gateway, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), ListVisaApplicationsQuery{BookingID: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"status":"pending"}]`, string(result.VisaApplications))

	_, err = uc.Execute(context.Background(), ListVisaApplicationsQuery{BookingID: 3})
	requireAppError(t, err, http.StatusBadRequest, "Visa only applicable for flight bookings")
}

func TestListVisaApplicationsUseCase_Execute_GatewayFailure(t *testing.T) {
	bookings, customers := fixtures()
	gateway := &mockGateway{}
	gateway.On("ListApplications", mock.Anything, "user7").Return(nil, visa.ErrGatewayUnavailable)

	uc := NewListVisaApplicationsUseCase(bookings, customers, gateway, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ListVisaApplicationsQuery{BookingID: 2})
	requireAppError(t, err, http.StatusInternalServerError, "Failed to fetch visa applications")
}
